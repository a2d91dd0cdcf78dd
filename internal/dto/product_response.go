package dto

import "github.com/aryaduta/ecommerce-admin-service/internal/domain"

type ProductListResponse struct {
	Items      []domain.Product `json:"items"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Total      int64            `json:"total"`
	TotalPages int64            `json:"totalPages"`
}
