package template

import (
	"fmt"
	"strings"
)

// ValidationResult carries every violation found in a draft. Violations are
// collected, not short-circuited, so the form can show all of them at once.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// Validate checks a template draft structurally: name present, at least one
// value, and each value well-formed. Positions in messages are 1-based.
func Validate(draft TemplateDraft) ValidationResult {
	var errs []string

	if strings.TrimSpace(draft.Name) == "" {
		errs = append(errs, "template name is required")
	}
	if len(draft.Values) == 0 {
		errs = append(errs, "at least one variant value is required")
	}

	for i, v := range draft.Values {
		pos := i + 1
		if strings.TrimSpace(v.Label) == "" {
			errs = append(errs, fmt.Sprintf("value %d: label is required", pos))
		}
		if strings.TrimSpace(v.Value) == "" {
			errs = append(errs, fmt.Sprintf("value %d: value code is required", pos))
		}
		if _, ok := ParseAmount(v.PriceAdjustment); !ok {
			errs = append(errs, fmt.Sprintf("value %d: price adjustment must be a number", pos))
		}
		if qty, ok := ParseQuantity(v.StockQuantity); !ok || qty < 0 {
			errs = append(errs, fmt.Sprintf("value %d: stock quantity must be a non-negative number", pos))
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
