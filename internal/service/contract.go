package service

import (
	"context"

	"github.com/aryaduta/ecommerce-admin-service/internal/domain"
	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context, filter dto.ProductFilter) (resp dto.ProductListResponse, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	AddProduct(ctx context.Context, data dto.CreateProductRequest) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, id string, data dto.UpdateProductRequest) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type MetricsService interface {
	GetOverview(ctx context.Context) (resp dto.OverviewResponse, err error)
	GetSales(ctx context.Context, days int) (resp dto.SalesResponse, err error)
}

type UserService interface {
	Register(ctx context.Context, data dto.RegisterRequest) (resp dto.UserResponse, err error)
	Login(ctx context.Context, data dto.LoginRequest) (resp dto.LoginResponse, err error)
	GetUsers(ctx context.Context) (resp []dto.UserResponse, err error)
	AddUser(ctx context.Context, data dto.CreateUserRequest) (resp dto.UserResponse, err error)
	UpdateUser(ctx context.Context, id string, data dto.UpdateUserRequest) (resp dto.UserResponse, err error)
	DeleteUser(ctx context.Context, id string) (err error)
}

type UploadService interface {
	PresignUpload(ctx context.Context, data dto.PresignRequest) (resp dto.PresignResponse, err error)
}

type GenerationService interface {
	GenerateDescription(ctx context.Context, data dto.GenerateRequest) (resp dto.GenerateResponse, err error)
}
