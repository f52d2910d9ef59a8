package variant

import "context"

// Repository defines the interface for variant data storage.
type Repository interface {
	Create(ctx context.Context, v *Variant) error
	GetByID(ctx context.Context, id string) (*Variant, error)
	ListByProduct(ctx context.Context, productID string) ([]*Variant, error)
	Update(ctx context.Context, v *Variant) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
