package shopstatus

import (
	"context"
	"fmt"
)

// Service defines shop-status business logic.
type Service interface {
	Get(ctx context.Context) (*Status, error)
	Update(ctx context.Context, req UpdateStatusRequest) (*Status, error)
}

type service struct{ repo Repository }

// NewService creates a new shop-status service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Get(ctx context.Context) (*Status, error) {
	return s.repo.Get(ctx)
}

func (s *service) Update(ctx context.Context, req UpdateStatusRequest) (*Status, error) {
	status := &Status{IsOpen: req.IsOpen, Message: req.Message}
	if err := s.repo.Set(ctx, status); err != nil {
		return nil, fmt.Errorf("failed to persist shop status: %w", err)
	}
	return s.repo.Get(ctx)
}
