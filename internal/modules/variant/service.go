package variant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines variant business logic.
type Service interface {
	// CreateVariant persists one variant record. IsActive is taken from the
	// request so wizard projections stay intact; the HTTP layer defaults it
	// to true for hand-created records.
	CreateVariant(ctx context.Context, req CreateVariantRequest) (*Variant, error)

	// GetVariant retrieves a variant by UUID.
	GetVariant(ctx context.Context, id string) (*Variant, error)

	// ListProductVariants returns every variant of a product in creation order.
	ListProductVariants(ctx context.Context, productID string) ([]*Variant, error)

	// ListGrouped returns the product's variants bundled by group name, in
	// first-seen order, the way the admin variants page renders them.
	ListGrouped(ctx context.Context, productID string) ([]VariantGroup, error)

	// UpdateVariant rewrites an existing variant.
	UpdateVariant(ctx context.Context, id string, req UpdateVariantRequest) (*Variant, error)

	// SetActive toggles a variant without touching the rest of the record.
	SetActive(ctx context.Context, id string, active bool) (*Variant, error)

	// DeleteVariant removes a variant permanently.
	DeleteVariant(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new variant service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateVariant(ctx context.Context, req CreateVariantRequest) (*Variant, error) {
	if req.ProductID == uuid.Nil {
		return nil, fmt.Errorf("product_id is required")
	}
	if strings.TrimSpace(req.VariantName) == "" {
		return nil, fmt.Errorf("variant_name is required")
	}
	if strings.TrimSpace(req.VariantValue) == "" {
		return nil, fmt.Errorf("variant_value is required")
	}
	if req.StockQuantity < 0 {
		return nil, fmt.Errorf("stock_quantity must not be negative")
	}

	v := &Variant{
		ID:              uuid.New(),
		ProductID:       req.ProductID,
		VariantName:     req.VariantName,
		VariantValue:    req.VariantValue,
		PriceAdjustment: req.PriceAdjustment,
		StockQuantity:   req.StockQuantity,
		IsActive:        req.IsActive,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("failed to persist variant: %w", err)
	}
	return v, nil
}

func (s *service) GetVariant(ctx context.Context, id string) (*Variant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProductVariants(ctx context.Context, productID string) ([]*Variant, error) {
	return s.repo.ListByProduct(ctx, productID)
}

func (s *service) ListGrouped(ctx context.Context, productID string) ([]VariantGroup, error) {
	variants, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	index := map[string]int{}
	var groups []VariantGroup
	for _, v := range variants {
		i, ok := index[v.VariantName]
		if !ok {
			i = len(groups)
			index[v.VariantName] = i
			groups = append(groups, VariantGroup{Name: v.VariantName})
		}
		groups[i].Variants = append(groups[i].Variants, v)
	}
	return groups, nil
}

func (s *service) UpdateVariant(ctx context.Context, id string, req UpdateVariantRequest) (*Variant, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("variant not found: %w", err)
	}
	if strings.TrimSpace(req.VariantName) == "" {
		return nil, fmt.Errorf("variant_name is required")
	}
	if strings.TrimSpace(req.VariantValue) == "" {
		return nil, fmt.Errorf("variant_value is required")
	}
	if req.StockQuantity < 0 {
		return nil, fmt.Errorf("stock_quantity must not be negative")
	}

	v.VariantName = req.VariantName
	v.VariantValue = req.VariantValue
	v.PriceAdjustment = req.PriceAdjustment
	v.StockQuantity = req.StockQuantity
	v.IsActive = req.IsActive
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) SetActive(ctx context.Context, id string, active bool) (*Variant, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("variant not found: %w", err)
	}
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	v.IsActive = active
	return v, nil
}

func (s *service) DeleteVariant(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
