package wizard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhtran-dev/shop-admin-backend/internal/modules/template"
	"github.com/minhtran-dev/shop-admin-backend/internal/modules/variant"
)

func sizeTemplate(t *testing.T) template.VariantTemplate {
	t.Helper()
	tpl, ok := template.DefaultRegistry().ByID("size-standard")
	require.True(t, ok)
	return tpl
}

func TestFreshSessionGating(t *testing.T) {
	s := NewSession(uuid.New())

	assert.Equal(t, StepSelectTemplate, s.CurrentStep)
	assert.False(t, s.CanProceed(StepSelectTemplate), "no template chosen yet")
	assert.Error(t, s.Next())
}

func TestSelectTemplateSeedsSession(t *testing.T) {
	s := NewSession(uuid.New())
	tpl := sizeTemplate(t)

	s.SelectTemplate(tpl)

	assert.True(t, s.CanProceed(StepSelectTemplate))
	assert.Equal(t, "Kích cỡ tiêu chuẩn", s.VariantName)
	require.Len(t, s.Values, 4)
	assert.Equal(t, "Size S", s.Values[0].Label)
	assert.Equal(t, "size_s", s.Values[0].Value)
	assert.Equal(t, "15000", s.Values[3].PriceAdjustment)
	assert.Equal(t, "100", s.Values[0].StockQuantity)

	// The drafts are a deep copy: editing them must not touch the catalog.
	require.NoError(t, s.RenameValue(0, "Khác"))
	fresh := sizeTemplate(t)
	assert.Equal(t, "Size S", fresh.DefaultValues[0].Label)
}

func TestCustomModeSeedsOneBlankRow(t *testing.T) {
	s := NewSession(uuid.New())

	s.UseCustomTemplate()

	assert.True(t, s.CanProceed(StepSelectTemplate))
	assert.Nil(t, s.SelectedTemplate)
	assert.Empty(t, s.VariantName)
	require.Len(t, s.Values, 1)
	assert.Empty(t, s.Values[0].Label)
	assert.Equal(t, 1, s.Values[0].Order)
}

func TestStepTwoGating(t *testing.T) {
	s := NewSession(uuid.New())
	s.UseCustomTemplate()
	require.NoError(t, s.Next())

	assert.False(t, s.CanProceed(StepCustomizeValues), "blank row blocks step 2")

	s.SetVariantName("Độ ngọt")
	assert.False(t, s.CanProceed(StepCustomizeValues), "label still blank")

	require.NoError(t, s.RenameValue(0, "Ngọt bình thường"))
	assert.True(t, s.CanProceed(StepCustomizeValues))

	// Clearing the value code directly re-blocks the step.
	require.NoError(t, s.SetValueCode(0, "  "))
	assert.False(t, s.CanProceed(StepCustomizeValues))
}

func TestStepThreeGating(t *testing.T) {
	s := NewSession(uuid.New())
	s.SelectTemplate(sizeTemplate(t))
	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	require.Equal(t, StepPricingStock, s.CurrentStep)

	assert.True(t, s.CanProceed(StepPricingStock))

	require.NoError(t, s.SetValueStock(1, "-1"))
	assert.False(t, s.CanProceed(StepPricingStock), "negative stock blocks step 3")

	require.NoError(t, s.SetValueStock(1, "20"))
	require.NoError(t, s.SetValuePrice(2, "abc"))
	assert.False(t, s.CanProceed(StepPricingStock), "non-numeric price blocks step 3")

	require.NoError(t, s.SetValuePrice(2, ""))
	assert.True(t, s.CanProceed(StepPricingStock), "blank numerics coerce to zero")
}

func TestRenameRegeneratesCodeOverManualEdit(t *testing.T) {
	s := NewSession(uuid.New())
	s.UseCustomTemplate()

	require.NoError(t, s.RenameValue(0, "Trà đào"))
	assert.Equal(t, "tra_dao", s.Values[0].Value)

	// Manual code edit survives price/stock edits...
	require.NoError(t, s.SetValueCode(0, "peach_tea"))
	require.NoError(t, s.SetValuePrice(0, "5000"))
	assert.Equal(t, "peach_tea", s.Values[0].Value)
	assert.Equal(t, "Trà đào", s.Values[0].Label, "code edits never touch the label")

	// ...but the next label edit overwrites it. Last writer on the label wins.
	require.NoError(t, s.RenameValue(0, "Trà vải"))
	assert.Equal(t, "tra_vai", s.Values[0].Value)
}

func TestBackIsAlwaysAllowed(t *testing.T) {
	s := NewSession(uuid.New())
	s.SelectTemplate(sizeTemplate(t))
	require.NoError(t, s.Next())

	// Break step 2's own gate, then go back anyway.
	s.SetVariantName("")
	s.Back()
	assert.Equal(t, StepSelectTemplate, s.CurrentStep)

	s.Back()
	assert.Equal(t, StepSelectTemplate, s.CurrentStep, "cannot go below step 1")
}

func TestAddAndRemoveValues(t *testing.T) {
	s := NewSession(uuid.New())
	s.UseCustomTemplate()

	i := s.AddValue()
	assert.Equal(t, 1, i)
	require.Len(t, s.Values, 2)
	assert.Equal(t, 2, s.Values[1].Order)

	require.NoError(t, s.RemoveValue(0))
	require.Len(t, s.Values, 1)
	assert.Error(t, s.RemoveValue(5))
}

func TestApplyBulkPricingOnSession(t *testing.T) {
	s := NewSession(uuid.New())
	s.SelectTemplate(sizeTemplate(t))

	s.ApplyBulkPricing(variant.Flat(decimal.NewFromInt(2000)))

	assert.Equal(t, "0", s.Values[0].PriceAdjustment)
	assert.Equal(t, "2000", s.Values[1].PriceAdjustment)
	assert.Equal(t, "4000", s.Values[2].PriceAdjustment)
	assert.Equal(t, "6000", s.Values[3].PriceAdjustment)
}

func TestManagerOpenIsAlwaysFresh(t *testing.T) {
	m := NewManager()
	productID := uuid.New()

	first := m.Open(productID)
	first.SetVariantName("left over")
	second := m.Open(productID)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Empty(t, second.VariantName)

	got, ok := m.Get(second.ID)
	require.True(t, ok)
	assert.Same(t, second, got)

	m.Close(second.ID)
	_, ok = m.Get(second.ID)
	assert.False(t, ok)
}
