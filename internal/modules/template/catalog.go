package template

import "github.com/shopspring/decimal"

func vnd(amount int64) decimal.Decimal { return decimal.NewFromInt(amount) }

// DefaultRegistry returns the built-in template catalog the admin UI offers
// out of the box. Value codes are the slug form of their labels.
func DefaultRegistry() *Registry {
	return NewRegistry(
		VariantTemplate{
			ID:          "size-standard",
			Name:        "Kích cỡ tiêu chuẩn",
			Description: "Các kích cỡ S, M, L, XL cho sản phẩm may mặc",
			Category:    CategorySize,
			Icon:        "📏",
			DefaultValues: []TemplateValue{
				{Label: "Size S", Value: "size_s", PriceAdjustment: vnd(0), StockQuantity: 100, Order: 1},
				{Label: "Size M", Value: "size_m", PriceAdjustment: vnd(5000), StockQuantity: 100, Order: 2},
				{Label: "Size L", Value: "size_l", PriceAdjustment: vnd(10000), StockQuantity: 100, Order: 3},
				{Label: "Size XL", Value: "size_xl", PriceAdjustment: vnd(15000), StockQuantity: 100, Order: 4},
			},
		},
		VariantTemplate{
			ID:          "size-drink",
			Name:        "Kích cỡ đồ uống",
			Description: "Ly nhỏ, vừa, lớn cho đồ uống",
			Category:    CategorySize,
			Icon:        "🥤",
			DefaultValues: []TemplateValue{
				{Label: "Ly nhỏ", Value: "ly_nho", PriceAdjustment: vnd(0), StockQuantity: 50, Order: 1},
				{Label: "Ly vừa", Value: "ly_vua", PriceAdjustment: vnd(4000), StockQuantity: 50, Order: 2},
				{Label: "Ly lớn", Value: "ly_lon", PriceAdjustment: vnd(8000), StockQuantity: 50, Order: 3},
			},
		},
		VariantTemplate{
			ID:          "color-basic",
			Name:        "Màu sắc cơ bản",
			Description: "Bảng màu cơ bản cho sản phẩm",
			Category:    CategoryColor,
			Icon:        "🎨",
			DefaultValues: []TemplateValue{
				{Label: "Đen", Value: "den", PriceAdjustment: vnd(0), StockQuantity: 20, Order: 1},
				{Label: "Trắng", Value: "trang", PriceAdjustment: vnd(0), StockQuantity: 20, Order: 2},
				{Label: "Đỏ", Value: "do", PriceAdjustment: vnd(0), StockQuantity: 20, Order: 3},
				{Label: "Xanh dương", Value: "xanh_duong", PriceAdjustment: vnd(0), StockQuantity: 20, Order: 4},
				{Label: "Xanh lá", Value: "xanh_la", PriceAdjustment: vnd(0), StockQuantity: 20, Order: 5},
			},
		},
		VariantTemplate{
			ID:          "topping-milktea",
			Name:        "Topping trà sữa",
			Description: "Các loại topping thêm cho trà sữa",
			Category:    CategoryTopping,
			Icon:        "🧋",
			DefaultValues: []TemplateValue{
				{Label: "Trân châu đen", Value: "tran_chau_den", PriceAdjustment: vnd(5000), StockQuantity: 100, Order: 1},
				{Label: "Trân châu trắng", Value: "tran_chau_trang", PriceAdjustment: vnd(7000), StockQuantity: 80, Order: 2},
				{Label: "Thạch dừa", Value: "thach_dua", PriceAdjustment: vnd(5000), StockQuantity: 60, Order: 3},
				{Label: "Pudding trứng", Value: "pudding_trung", PriceAdjustment: vnd(8000), StockQuantity: 40, Order: 4},
				{Label: "Kem cheese", Value: "kem_cheese", PriceAdjustment: vnd(10000), StockQuantity: 50, Order: 5},
			},
		},
		VariantTemplate{
			ID:          "temperature",
			Name:        "Nhiệt độ",
			Description: "Tùy chọn nóng lạnh cho đồ uống",
			Category:    CategoryTemperature,
			Icon:        "🌡️",
			DefaultValues: []TemplateValue{
				{Label: "Nóng", Value: "nong", PriceAdjustment: vnd(0), StockQuantity: 999, Order: 1},
				{Label: "Lạnh", Value: "lanh", PriceAdjustment: vnd(0), StockQuantity: 999, Order: 2},
				{Label: "Ít đá", Value: "it_da", PriceAdjustment: vnd(0), StockQuantity: 999, Order: 3},
				{Label: "Không đá", Value: "khong_da", PriceAdjustment: vnd(0), StockQuantity: 999, Order: 4},
			},
		},
	)
}
