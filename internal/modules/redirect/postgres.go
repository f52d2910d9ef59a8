package redirect

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository returns the postgres-backed redirect repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, rd *Redirect) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO qr_redirects (id, slug, target_url, hits, is_active)
		VALUES ($1,$2,$3,$4,$5)`,
		rd.ID, rd.Slug, rd.TargetURL, rd.Hits, rd.IsActive)
	return err
}

func scanRedirect(scan func(...interface{}) error) (*Redirect, error) {
	rd := &Redirect{}
	err := scan(&rd.ID, &rd.Slug, &rd.TargetURL, &rd.Hits, &rd.IsActive,
		&rd.CreatedAt, &rd.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rd, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Redirect, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id,slug,target_url,hits,is_active,created_at,updated_at
		FROM qr_redirects WHERE id=$1`, uid)
	return scanRedirect(row.Scan)
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*Redirect, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id,slug,target_url,hits,is_active,created_at,updated_at
		FROM qr_redirects WHERE slug=$1`, slug)
	return scanRedirect(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context) ([]*Redirect, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,slug,target_url,hits,is_active,created_at,updated_at
		FROM qr_redirects ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var redirects []*Redirect
	for rows.Next() {
		rd, err := scanRedirect(rows.Scan)
		if err != nil {
			return nil, err
		}
		redirects = append(redirects, rd)
	}
	return redirects, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, rd *Redirect) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE qr_redirects
		SET slug=$1, target_url=$2, is_active=$3, updated_at=NOW()
		WHERE id=$4`,
		rd.Slug, rd.TargetURL, rd.IsActive, rd.ID)
	return err
}

func (r *postgresRepo) IncrementHits(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `UPDATE qr_redirects SET hits=hits+1 WHERE id=$1`, uid)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM qr_redirects WHERE id=$1`, uid)
	return err
}
