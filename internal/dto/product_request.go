package dto

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 50

	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortStockAsc  = "stock_asc"
	SortStockDesc = "stock_desc"
)

type ProductFilter struct {
	Page     int    `query:"page" validate:"omitempty,gte=1"`
	Limit    int    `query:"limit" validate:"omitempty,gte=1,lte=50"`
	Search   string `query:"search"`
	Category string `query:"category"`
	IsActive *bool  `query:"isActive"`
	Sort     string `query:"sort" validate:"omitempty,oneof=newest price_asc price_desc stock_asc stock_desc"`
}

// Normalize fills in the documented defaults for unset pagination fields.
func (f *ProductFilter) Normalize() {
	if f.Page == 0 {
		f.Page = DefaultPage
	}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	if f.Sort == "" {
		f.Sort = SortNewest
	}
}

type ProductImagePayload struct {
	URL string `json:"url" validate:"required,url"`
	Key string `json:"key" validate:"required,min=1"`
}

type CreateProductRequest struct {
	Name        string                `json:"name" validate:"required,min=2,max=120"`
	Description string                `json:"description" validate:"required,min=10,max=5000"`
	Category    string                `json:"category" validate:"required,min=2,max=60"`
	Price       *float64              `json:"price" validate:"required,gte=0"`
	Stock       *int64                `json:"stock" validate:"required,gte=0"`
	SKU         string                `json:"sku" validate:"required,min=3,max=40"`
	Images      []ProductImagePayload `json:"images" validate:"required,min=1,max=8,dive"`
	IsActive    *bool                 `json:"isActive"`
}

type UpdateProductRequest struct {
	Name        *string                `json:"name" validate:"omitempty,min=2,max=120"`
	Description *string                `json:"description" validate:"omitempty,min=10,max=5000"`
	Category    *string                `json:"category" validate:"omitempty,min=2,max=60"`
	Price       *float64               `json:"price" validate:"omitempty,gte=0"`
	Stock       *int64                 `json:"stock" validate:"omitempty,gte=0"`
	SKU         *string                `json:"sku" validate:"omitempty,min=3,max=40"`
	Images      *[]ProductImagePayload `json:"images" validate:"omitempty,min=1,max=8,dive"`
	IsActive    *bool                  `json:"isActive"`
}

// IsEmpty reports whether no field at all was provided; such payloads are
// rejected before touching storage.
func (r UpdateProductRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Category == nil &&
		r.Price == nil && r.Stock == nil && r.SKU == nil &&
		r.Images == nil && r.IsActive == nil
}
