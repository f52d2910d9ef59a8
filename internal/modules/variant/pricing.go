package variant

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/minhtran-dev/shop-admin-backend/internal/modules/template"
)

// PricingStrategy recomputes one value's price adjustment given its
// zero-based position and current adjustment.
type PricingStrategy interface {
	Apply(index int, current decimal.Decimal) decimal.Decimal
}

type flatStrategy struct{ increment decimal.Decimal }

// Flat returns a strategy that sets position i to increment × i, replacing
// whatever adjustment was there before. Flat(0) therefore resets every
// adjustment to zero, which the wizard uses as its reset action.
func Flat(increment decimal.Decimal) PricingStrategy {
	return flatStrategy{increment: increment}
}

func (s flatStrategy) Apply(index int, _ decimal.Decimal) decimal.Decimal {
	return s.increment.Mul(decimal.NewFromInt(int64(index)))
}

type percentageStrategy struct{ pct decimal.Decimal }

// Percentage returns a strategy that scales each current adjustment by
// (1 + pct/100), rounded to the nearest integer with ties away from zero.
// A zero adjustment stays zero; that is the multiplicative no-op, not a
// case to special-case away.
func Percentage(pct decimal.Decimal) PricingStrategy {
	return percentageStrategy{pct: pct}
}

func (s percentageStrategy) Apply(_ int, current decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(s.pct.Div(decimal.NewFromInt(100)))
	return current.Mul(factor).Round(0)
}

// ParseStrategy builds a strategy from its wire form.
func ParseStrategy(kind string, amount decimal.Decimal) (PricingStrategy, error) {
	switch kind {
	case "flat":
		return Flat(amount), nil
	case "percentage":
		return Percentage(amount), nil
	default:
		return nil, fmt.Errorf("unknown pricing strategy %q", kind)
	}
}

// ApplyBulk recomputes every value's price adjustment with the given
// strategy. The input slice is left untouched.
func ApplyBulk(values []template.TemplateValue, s PricingStrategy) []template.TemplateValue {
	out := make([]template.TemplateValue, len(values))
	for i, v := range values {
		v.PriceAdjustment = s.Apply(i, v.PriceAdjustment)
		out[i] = v
	}
	return out
}

// ApplyBulkDrafts is ApplyBulk over form-level drafts: each raw price is
// coerced (blank or unparsable reads as zero), transformed, and written
// back as a plain decimal string. Stock and labels pass through untouched.
func ApplyBulkDrafts(values []template.ValueDraft, s PricingStrategy) []template.ValueDraft {
	out := make([]template.ValueDraft, len(values))
	for i, v := range values {
		current, ok := template.ParseAmount(v.PriceAdjustment)
		if !ok {
			current = decimal.Zero
		}
		v.PriceAdjustment = s.Apply(i, current).String()
		out[i] = v
	}
	return out
}
