package wizard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtran-dev/shop-admin-backend/internal/modules/variant"
)

// mockCreator records create calls and can be told to fail at a given
// 1-based call position.
type mockCreator struct {
	created []variant.CreateVariantRequest
	failAt  int
	failErr error
}

func (m *mockCreator) CreateVariant(_ context.Context, req variant.CreateVariantRequest) (*variant.Variant, error) {
	if m.failAt > 0 && len(m.created)+1 == m.failAt {
		return nil, m.failErr
	}
	m.created = append(m.created, req)
	return &variant.Variant{
		ID:           uuid.New(),
		ProductID:    req.ProductID,
		VariantName:  req.VariantName,
		VariantValue: req.VariantValue,
		IsActive:     req.IsActive,
	}, nil
}

func sessionAtConfirm(t *testing.T, productID uuid.UUID) *Session {
	t.Helper()
	s := NewSession(productID)
	s.SelectTemplate(sizeTemplate(t))
	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	require.Equal(t, StepConfirm, s.CurrentStep)
	return s
}

func TestSubmitFullFlow(t *testing.T) {
	productID := uuid.New()
	s := sessionAtConfirm(t, productID)
	creator := &mockCreator{}

	result, err := s.Submit(context.Background(), creator)

	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.Equal(t, 4, result.CreatedCount)
	assert.Zero(t, result.FailedAt)

	require.Len(t, creator.created, 4)
	wantLabels := []string{"Size S", "Size M", "Size L", "Size XL"}
	wantPrices := []int64{0, 5000, 10000, 15000}
	for i, rec := range creator.created {
		assert.Equal(t, productID, rec.ProductID)
		assert.Equal(t, "Kích cỡ tiêu chuẩn", rec.VariantName)
		assert.Equal(t, wantLabels[i], rec.VariantValue, "the label is persisted, not the value code")
		assert.Equal(t, wantPrices[i], rec.PriceAdjustment.IntPart())
		assert.Equal(t, 100, rec.StockQuantity)
		assert.True(t, rec.IsActive)
	}

	assert.True(t, s.Closed())
	_, err = s.Submit(context.Background(), creator)
	assert.Error(t, err, "a finished session cannot submit again")
}

func TestSubmitAbortsOnFirstFailureWithoutRollback(t *testing.T) {
	s := sessionAtConfirm(t, uuid.New())
	require.NoError(t, s.RemoveValue(3))
	creator := &mockCreator{failAt: 3, failErr: errors.New("insert failed: connection reset")}

	result, err := s.Submit(context.Background(), creator)

	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.Equal(t, 2, result.CreatedCount)
	assert.Equal(t, 3, result.FailedAt)
	assert.Equal(t, "insert failed: connection reset", result.Message,
		"the collaborator's message is surfaced verbatim")

	require.Len(t, result.Steps, 3)
	assert.True(t, result.Steps[0].Persisted)
	assert.True(t, result.Steps[1].Persisted)
	assert.False(t, result.Steps[2].Persisted)
	assert.Equal(t, "insert failed: connection reset", result.Steps[2].Error)

	// The two records that made it in stay in: no compensating deletes.
	assert.Len(t, creator.created, 2)
	assert.False(t, s.Closed(), "a failed submission leaves the session open for retry")

	// Retry from the same session is allowed once the guard clears.
	creator.failAt = 0
	retry, err := s.Submit(context.Background(), creator)
	require.NoError(t, err)
	assert.True(t, retry.Succeeded)
}

func TestSubmitBlankErrorMessageFallsBack(t *testing.T) {
	s := sessionAtConfirm(t, uuid.New())
	creator := &mockCreator{failAt: 1, failErr: errors.New("")}

	result, err := s.Submit(context.Background(), creator)

	require.NoError(t, err)
	assert.Equal(t, fallbackFailureMessage, result.Message)
}

func TestSubmitOnlyFromConfirmStep(t *testing.T) {
	s := NewSession(uuid.New())
	s.SelectTemplate(sizeTemplate(t))

	_, err := s.Submit(context.Background(), &mockCreator{})

	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("submission is only available from step %d", StepConfirm), err.Error())
}

func TestSubmitCoercesUnparsedNumericsToZero(t *testing.T) {
	// Step gating normally keeps non-numeric input out; the submission loop
	// itself does not re-validate and quietly coerces to zero.
	s := sessionAtConfirm(t, uuid.New())
	s.Values[0].PriceAdjustment = "oops"
	s.Values[1].StockQuantity = "-9"
	creator := &mockCreator{}

	result, err := s.Submit(context.Background(), creator)

	require.NoError(t, err)
	assert.True(t, result.Succeeded)
	assert.True(t, creator.created[0].PriceAdjustment.IsZero())
	assert.Zero(t, creator.created[1].StockQuantity)
}
