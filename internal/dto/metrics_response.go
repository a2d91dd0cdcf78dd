package dto

type OverviewResponse struct {
	TotalProducts int64   `json:"totalProducts"`
	LowStock      int64   `json:"lowStock"`
	OutOfStock    int64   `json:"outOfStock"`
	Revenue       float64 `json:"revenue"`
	Units         int64   `json:"units"`
}

type SalesDailyBucket struct {
	Year    int32   `json:"year"`
	Month   int32   `json:"month"`
	Day     int32   `json:"day"`
	Revenue float64 `json:"revenue"`
	Units   int64   `json:"units"`
}

type TopProduct struct {
	ProductID string  `json:"productId"`
	Units     int64   `json:"units"`
	Revenue   float64 `json:"revenue"`
}

type SalesResponse struct {
	Daily       []SalesDailyBucket `json:"daily"`
	TopProducts []TopProduct       `json:"topProducts"`
}
