package variant

import (
	"github.com/google/uuid"

	"github.com/minhtran-dev/shop-admin-backend/internal/modules/template"
)

// Project maps a template onto the flat list of persistable records for one
// product, one record per default value, preserving the template's order.
//
// VariantValue carries the display label, not the normalized value code:
// the admin screens match persisted rows on the label, so the code is only
// used while editing. Pure function; the template is not modified.
func Project(t template.VariantTemplate, productID uuid.UUID, variantName string) []CreateVariantRequest {
	records := make([]CreateVariantRequest, len(t.DefaultValues))
	for i, v := range t.DefaultValues {
		records[i] = CreateVariantRequest{
			ProductID:       productID,
			VariantName:     variantName,
			VariantValue:    v.Label,
			PriceAdjustment: v.PriceAdjustment,
			StockQuantity:   v.StockQuantity,
			IsActive:        true,
		}
	}
	return records
}
