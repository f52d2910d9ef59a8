package product

import "context"

// Repository defines the interface for product data storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, categoryID string, availableOnly bool) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	ListCategories(ctx context.Context) ([]*Category, error)
}
