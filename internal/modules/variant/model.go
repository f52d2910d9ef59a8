package variant

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Variant is one persisted option of a product's variant axis, e.g. the
// "Size L" row of the "Kích cỡ" group.
type Variant struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"product_id"`
	VariantName     string          `json:"variant_name"`
	VariantValue    string          `json:"variant_value"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
	StockQuantity   int             `json:"stock_quantity"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CreateVariantRequest is the persistable record shape handed to the
// service, one per variant value.
type CreateVariantRequest struct {
	ProductID       uuid.UUID       `json:"product_id"`
	VariantName     string          `json:"variant_name"`
	VariantValue    string          `json:"variant_value"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
	StockQuantity   int             `json:"stock_quantity"`
	IsActive        bool            `json:"is_active"`
}

// UpdateVariantRequest is the payload for editing an existing variant.
type UpdateVariantRequest struct {
	VariantName     string          `json:"variant_name"`
	VariantValue    string          `json:"variant_value"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
	StockQuantity   int             `json:"stock_quantity"`
	IsActive        bool            `json:"is_active"`
}

// VariantGroup bundles the variants sharing one group name, in the order
// the group first appears among the product's variants.
type VariantGroup struct {
	Name     string     `json:"name"`
	Variants []*Variant `json:"variants"`
}
