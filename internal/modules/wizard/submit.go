package wizard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/minhtran-dev/shop-admin-backend/internal/modules/template"
	"github.com/minhtran-dev/shop-admin-backend/internal/modules/variant"
)

// VariantCreator is the persistence collaborator the wizard drives during
// submission. variant.Service satisfies it.
type VariantCreator interface {
	CreateVariant(ctx context.Context, req variant.CreateVariantRequest) (*variant.Variant, error)
}

// StepOutcome records the fate of one pending create in the submission
// step list.
type StepOutcome struct {
	Label     string `json:"label"`
	Persisted bool   `json:"persisted"`
	Error     string `json:"error,omitempty"`
}

// SubmissionResult is the aggregate outcome of one submission attempt.
// FailedAt is the 1-based position of the value whose create failed, zero
// when everything persisted.
type SubmissionResult struct {
	Succeeded    bool          `json:"succeeded"`
	CreatedCount int           `json:"created_count"`
	FailedAt     int           `json:"failed_at,omitempty"`
	Message      string        `json:"message"`
	Steps        []StepOutcome `json:"steps"`
}

const fallbackFailureMessage = "failed to save variant values"

// Submit turns the session's value rows into persisted variant records, one
// create call per row, issued sequentially in row order. The first failure
// aborts the remaining calls; records persisted before it stay persisted —
// there is no compensating rollback. On full success the session closes.
func (s *Session) Submit(ctx context.Context, creator VariantCreator) (*SubmissionResult, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, fmt.Errorf("wizard session is closed")
	}
	if s.CurrentStep != StepConfirm {
		s.mu.Unlock()
		return nil, fmt.Errorf("submission is only available from step %d", StepConfirm)
	}
	if s.submitting {
		s.mu.Unlock()
		return nil, fmt.Errorf("submission already in progress")
	}
	s.submitting = true

	// Build the ordered step list up front so the outcome of every pending
	// create is tracked even when an early failure aborts the loop.
	steps := make([]StepOutcome, len(s.Values))
	records := make([]variant.CreateVariantRequest, len(s.Values))
	for i, v := range s.Values {
		price, ok := template.ParseAmount(v.PriceAdjustment)
		if !ok {
			price = decimal.Zero
		}
		qty, ok := template.ParseQuantity(v.StockQuantity)
		if !ok || qty < 0 {
			qty = 0
		}
		steps[i] = StepOutcome{Label: v.Label}
		records[i] = variant.CreateVariantRequest{
			ProductID:       s.ProductID,
			VariantName:     s.VariantName,
			VariantValue:    v.Label,
			PriceAdjustment: price,
			StockQuantity:   qty,
			IsActive:        true,
		}
	}
	s.mu.Unlock()

	result := &SubmissionResult{Steps: steps}
	for i, rec := range records {
		if _, err := creator.CreateVariant(ctx, rec); err != nil {
			msg := err.Error()
			if msg == "" {
				msg = fallbackFailureMessage
			}
			steps[i].Error = msg
			result.FailedAt = i + 1
			result.Message = msg

			s.mu.Lock()
			s.submitting = false
			s.mu.Unlock()
			return result, nil
		}
		steps[i].Persisted = true
		result.CreatedCount++
	}

	result.Succeeded = true
	result.Message = fmt.Sprintf("created %d variant values", result.CreatedCount)

	s.mu.Lock()
	s.submitting = false
	s.closed = true
	s.mu.Unlock()
	return result, nil
}
