package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/minhtran-dev/shop-admin-backend/internal/slug"
)

// Service defines product business logic.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, categoryID string, availableOnly bool) ([]*Product, error)
	UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error)
	ListCategories(ctx context.Context) ([]*Category, error)
}

type service struct{ repo Repository }

// NewService creates a new product service.
func NewService(repo Repository) Service { return &service{repo: repo} }

// urlSlug derives the product's URL slug. Unlike variant value codes, URL
// slugs trim the underscore runs at either end.
func urlSlug(name string) string {
	return strings.Trim(slug.Make(name), "_")
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category_id: %w", err)
	}
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	p := &Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        urlSlug(req.Name),
		Description: req.Description,
		CategoryID:  categoryID,
		BasePrice:   req.BasePrice,
		ImageURL:    req.ImageURL,
		IsAvailable: available,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to persist product: %w", err)
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, categoryID string, availableOnly bool) ([]*Product, error) {
	return s.repo.List(ctx, categoryID, availableOnly)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category_id: %w", err)
		}
		p.CategoryID = categoryID
	}

	p.Name = req.Name
	p.Slug = urlSlug(req.Name)
	p.Description = req.Description
	p.BasePrice = req.BasePrice
	p.ImageURL = req.ImageURL
	if req.IsAvailable != nil {
		p.IsAvailable = *req.IsAvailable
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}
