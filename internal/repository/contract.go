package repository

import (
	"context"
	"time"

	"github.com/aryaduta/ecommerce-admin-service/internal/domain"
	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	GetProducts(ctx context.Context, filter dto.ProductFilter) (data []domain.Product, err error)
	CountProducts(ctx context.Context, filter dto.ProductFilter) (count int64, err error)
	GetProductByID(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error)
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, data dto.UpdateProductRequest) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error)
	CountAllProducts(ctx context.Context) (count int64, err error)
	CountLowStockProducts(ctx context.Context) (count int64, err error)
	CountOutOfStockProducts(ctx context.Context) (count int64, err error)
}

type OrderRepository interface {
	GetPaidTotals(ctx context.Context) (revenue float64, units int64, err error)
	GetSalesSince(ctx context.Context, from time.Time) (data dto.SalesResponse, err error)
	ReplaceOrders(ctx context.Context, orders []domain.Order) (err error)
}

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (user domain.User, err error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (user domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUsers(ctx context.Context) (data []domain.User, err error)
	CountUsers(ctx context.Context) (count int64, err error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, data dto.UpdateUserRequest) (user domain.User, err error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (err error)
}
