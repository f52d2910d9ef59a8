package variant

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepo is an in-memory Repository for service tests.
type memoryRepo struct {
	variants []*Variant
	err      error
}

func (m *memoryRepo) Create(_ context.Context, v *Variant) error {
	if m.err != nil {
		return m.err
	}
	clone := *v
	m.variants = append(m.variants, &clone)
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id string) (*Variant, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, v := range m.variants {
		if v.ID.String() == id {
			return v, nil
		}
	}
	return nil, errors.New("no rows")
}

func (m *memoryRepo) ListByProduct(_ context.Context, productID string) ([]*Variant, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*Variant
	for _, v := range m.variants {
		if v.ProductID.String() == productID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memoryRepo) Update(_ context.Context, v *Variant) error { return m.err }

func (m *memoryRepo) SetActive(_ context.Context, id string, active bool) error { return m.err }

func (m *memoryRepo) Delete(_ context.Context, id string) error { return m.err }

func TestCreateVariantValidation(t *testing.T) {
	svc := NewService(&memoryRepo{})
	productID := uuid.New()

	testCases := []struct {
		name string
		req  CreateVariantRequest
	}{
		{"missing product id", CreateVariantRequest{VariantName: "Size", VariantValue: "Size S"}},
		{"blank name", CreateVariantRequest{ProductID: productID, VariantName: "  ", VariantValue: "Size S"}},
		{"blank value", CreateVariantRequest{ProductID: productID, VariantName: "Size", VariantValue: ""}},
		{"negative stock", CreateVariantRequest{ProductID: productID, VariantName: "Size", VariantValue: "Size S", StockQuantity: -1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateVariant(context.Background(), tc.req)
			assert.Error(t, err)
		})
	}
}

func TestCreateVariantPersists(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo)
	productID := uuid.New()

	v, err := svc.CreateVariant(context.Background(), CreateVariantRequest{
		ProductID:       productID,
		VariantName:     "Kích cỡ",
		VariantValue:    "Size M",
		PriceAdjustment: decimal.NewFromInt(5000),
		StockQuantity:   100,
		IsActive:        true,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, v.ID)
	require.Len(t, repo.variants, 1)
	assert.Equal(t, "Size M", repo.variants[0].VariantValue)
	assert.True(t, repo.variants[0].IsActive)
}

func TestListGroupedFirstSeenOrder(t *testing.T) {
	productID := uuid.New()
	repo := &memoryRepo{}
	for _, row := range []struct{ name, value string }{
		{"Kích cỡ", "Size S"},
		{"Topping", "Trân châu đen"},
		{"Kích cỡ", "Size M"},
		{"Topping", "Thạch dừa"},
		{"Nhiệt độ", "Nóng"},
	} {
		repo.variants = append(repo.variants, &Variant{
			ID: uuid.New(), ProductID: productID,
			VariantName: row.name, VariantValue: row.value,
		})
	}

	groups, err := NewService(repo).ListGrouped(context.Background(), productID.String())

	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Kích cỡ", groups[0].Name)
	assert.Equal(t, "Topping", groups[1].Name)
	assert.Equal(t, "Nhiệt độ", groups[2].Name)
	require.Len(t, groups[0].Variants, 2)
	assert.Equal(t, "Size S", groups[0].Variants[0].VariantValue)
	assert.Equal(t, "Size M", groups[0].Variants[1].VariantValue)
}

func TestListGroupedRepositoryError(t *testing.T) {
	svc := NewService(&memoryRepo{err: errors.New("db down")})
	_, err := svc.ListGrouped(context.Background(), uuid.NewString())
	assert.Error(t, err)
}
