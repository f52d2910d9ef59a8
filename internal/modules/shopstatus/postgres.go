package shopstatus

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository returns the postgres-backed shop-status repository.
// The table holds exactly one row.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Get(ctx context.Context) (*Status, error) {
	s := &Status{}
	err := r.db.QueryRowContext(ctx, `
		SELECT is_open, message, updated_at FROM shop_status LIMIT 1`).
		Scan(&s.IsOpen, &s.Message, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		// No row yet means the shop has never been toggled; treat as open.
		return &Status{IsOpen: true}, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) Set(ctx context.Context, s *Status) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO shop_status (singleton, is_open, message, updated_at)
		VALUES (true, $1, $2, NOW())
		ON CONFLICT (singleton)
		DO UPDATE SET is_open=$1, message=$2, updated_at=NOW()`,
		s.IsOpen, s.Message)
	return err
}
