package variant

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository returns the postgres-backed variant repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, v *Variant) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO product_variants
		  (id, product_id, variant_name, variant_value, price_adjustment, stock_quantity, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		v.ID, v.ProductID, v.VariantName, v.VariantValue,
		v.PriceAdjustment, v.StockQuantity, v.IsActive)
	return err
}

func scanVariant(scan func(...interface{}) error) (*Variant, error) {
	v := &Variant{}
	err := scan(&v.ID, &v.ProductID, &v.VariantName, &v.VariantValue,
		&v.PriceAdjustment, &v.StockQuantity, &v.IsActive,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*Variant, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRowContext(ctx, `
		SELECT id,product_id,variant_name,variant_value,price_adjustment,stock_quantity,is_active,created_at,updated_at
		FROM product_variants WHERE id=$1`, uid)
	return scanVariant(row.Scan)
}

func (r *postgresRepo) ListByProduct(ctx context.Context, productID string) ([]*Variant, error) {
	uid, err := uuid.Parse(productID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id,product_id,variant_name,variant_value,price_adjustment,stock_quantity,is_active,created_at,updated_at
		FROM product_variants WHERE product_id=$1 ORDER BY created_at, id`, uid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []*Variant
	for rows.Next() {
		v, err := scanVariant(rows.Scan)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, v *Variant) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE product_variants
		SET variant_name=$1, variant_value=$2, price_adjustment=$3,
		    stock_quantity=$4, is_active=$5, updated_at=NOW()
		WHERE id=$6`,
		v.VariantName, v.VariantValue, v.PriceAdjustment,
		v.StockQuantity, v.IsActive, v.ID)
	return err
}

func (r *postgresRepo) SetActive(ctx context.Context, id string, active bool) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE product_variants SET is_active=$1, updated_at=NOW() WHERE id=$2`,
		active, uid)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `DELETE FROM product_variants WHERE id=$1`, uid)
	return err
}
