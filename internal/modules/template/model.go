package template

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Category classifies a variant template by the kind of axis it describes.
type Category string

const (
	CategorySize        Category = "size"
	CategoryColor       Category = "color"
	CategoryTopping     Category = "topping"
	CategoryTemperature Category = "temperature"
	CategoryCustom      Category = "custom"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategorySize, CategoryColor, CategoryTopping, CategoryTemperature, CategoryCustom:
		return true
	}
	return false
}

// VariantTemplate is a reusable definition of one variant axis (e.g. Size)
// with a default set of options.
type VariantTemplate struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      Category        `json:"category"`
	Icon          string          `json:"icon"`
	DefaultValues []TemplateValue `json:"default_values"`
}

// TemplateValue is one option within a template: a display label, its
// normalized value code, and the price/stock defaults it carries.
type TemplateValue struct {
	Label           string          `json:"label"`
	Value           string          `json:"value"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
	StockQuantity   int             `json:"stock_quantity"`
	Order           int             `json:"order"`
}

// ValueDraft is the form-level counterpart of TemplateValue: the numeric
// fields are raw strings exactly as typed, so validation can reject
// non-numeric input before anything is coerced.
type ValueDraft struct {
	Label           string `json:"label"`
	Value           string `json:"value"`
	PriceAdjustment string `json:"price_adjustment"`
	StockQuantity   string `json:"stock_quantity"`
	Order           int    `json:"order"`
}

// TemplateDraft is a template-shaped object under construction, prior to
// validation.
type TemplateDraft struct {
	Name   string       `json:"name"`
	Values []ValueDraft `json:"values"`
}

// ParseAmount coerces a raw price-adjustment string. A blank string counts
// as zero; anything else must parse as a finite decimal.
func ParseAmount(s string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseQuantity coerces a raw stock-quantity string. A blank string counts
// as zero. The value must parse as a finite number; negativity is reported
// to the caller rather than treated as a parse failure, because validation
// messages distinguish the two.
func ParseQuantity(s string) (int, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
