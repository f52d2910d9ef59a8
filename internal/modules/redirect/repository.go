package redirect

import "context"

// Repository defines the interface for QR redirect storage.
type Repository interface {
	Create(ctx context.Context, rd *Redirect) error
	GetByID(ctx context.Context, id string) (*Redirect, error)
	GetBySlug(ctx context.Context, slug string) (*Redirect, error)
	List(ctx context.Context) ([]*Redirect, error)
	Update(ctx context.Context, rd *Redirect) error
	IncrementHits(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
