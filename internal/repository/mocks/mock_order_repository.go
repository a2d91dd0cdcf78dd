package mocks

import (
	"context"
	"time"

	"github.com/aryaduta/ecommerce-admin-service/internal/domain"
	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetPaidTotals(ctx context.Context) (float64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) GetSalesSince(ctx context.Context, from time.Time) (dto.SalesResponse, error) {
	args := m.Called(ctx, from)
	return args.Get(0).(dto.SalesResponse), args.Error(1)
}

func (m *MockOrderRepository) ReplaceOrders(ctx context.Context, orders []domain.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}
