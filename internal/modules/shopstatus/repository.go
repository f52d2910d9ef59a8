package shopstatus

import "context"

// Repository defines the interface for the shop-status singleton row.
type Repository interface {
	Get(ctx context.Context) (*Status, error)
	Set(ctx context.Context, s *Status) error
}
