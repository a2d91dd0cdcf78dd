package service

import (
	"context"
	"testing"
	"time"

	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
	repomocks "github.com/aryaduta/ecommerce-admin-service/internal/repository/mocks"
	"github.com/aryaduta/ecommerce-admin-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMetricsService_GetOverview(t *testing.T) {
	ctx := context.TODO()

	t.Run("joins product counts and paid totals", func(t *testing.T) {
		mockProductRepo := new(repomocks.MockProductRepository)
		mockOrderRepo := new(repomocks.MockOrderRepository)
		svc := CreateMetricsService(mockProductRepo, mockOrderRepo)

		mockProductRepo.On("CountAllProducts", mock.Anything).Return(int64(25), nil).Once()
		mockProductRepo.On("CountLowStockProducts", mock.Anything).Return(int64(3), nil).Once()
		mockProductRepo.On("CountOutOfStockProducts", mock.Anything).Return(int64(2), nil).Once()
		mockOrderRepo.On("GetPaidTotals", mock.Anything).Return(1499.50, int64(87), nil).Once()

		resp, err := svc.GetOverview(ctx)
		require.NoError(t, err)

		assert.Equal(t, int64(25), resp.TotalProducts)
		assert.Equal(t, int64(3), resp.LowStock)
		assert.Equal(t, int64(2), resp.OutOfStock)
		assert.Equal(t, 1499.50, resp.Revenue)
		assert.Equal(t, int64(87), resp.Units)
		mockProductRepo.AssertExpectations(t)
		mockOrderRepo.AssertExpectations(t)
	})

	t.Run("no paid orders yields zero revenue and units", func(t *testing.T) {
		mockProductRepo := new(repomocks.MockProductRepository)
		mockOrderRepo := new(repomocks.MockOrderRepository)
		svc := CreateMetricsService(mockProductRepo, mockOrderRepo)

		mockProductRepo.On("CountAllProducts", mock.Anything).Return(int64(10), nil).Once()
		mockProductRepo.On("CountLowStockProducts", mock.Anything).Return(int64(0), nil).Once()
		mockProductRepo.On("CountOutOfStockProducts", mock.Anything).Return(int64(0), nil).Once()
		mockOrderRepo.On("GetPaidTotals", mock.Anything).Return(0.0, int64(0), nil).Once()

		resp, err := svc.GetOverview(ctx)
		require.NoError(t, err)

		assert.Zero(t, resp.Revenue)
		assert.Zero(t, resp.Units)
	})

	t.Run("a failing branch fails the whole overview", func(t *testing.T) {
		mockProductRepo := new(repomocks.MockProductRepository)
		mockOrderRepo := new(repomocks.MockOrderRepository)
		svc := CreateMetricsService(mockProductRepo, mockOrderRepo)

		mockProductRepo.On("CountAllProducts", mock.Anything).Return(int64(0), errs.ErrInternalServer).Maybe()
		mockProductRepo.On("CountLowStockProducts", mock.Anything).Return(int64(0), nil).Maybe()
		mockProductRepo.On("CountOutOfStockProducts", mock.Anything).Return(int64(0), nil).Maybe()
		mockOrderRepo.On("GetPaidTotals", mock.Anything).Return(0.0, int64(0), nil).Maybe()

		resp, err := svc.GetOverview(ctx)
		assert.Equal(t, errs.ErrInternalServer, err)
		assert.Equal(t, dto.OverviewResponse{}, resp)
	})
}

func TestSalesWindowStart(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		days     int
		expected time.Time
	}{
		{name: "explicit window", days: 7, expected: now.Add(-7 * 24 * time.Hour)},
		{name: "zero falls back to default", days: 0, expected: now.Add(-DefaultSalesWindowDays * 24 * time.Hour)},
		{name: "negative falls back to default", days: -3, expected: now.Add(-DefaultSalesWindowDays * 24 * time.Hour)},
		{name: "above max falls back to default", days: 366, expected: now.Add(-DefaultSalesWindowDays * 24 * time.Hour)},
		{name: "max is allowed", days: 365, expected: now.Add(-365 * 24 * time.Hour)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SalesWindowStart(now, tc.days))
		})
	}
}

func TestMetricsService_GetSales(t *testing.T) {
	ctx := context.TODO()

	mockOrderRepo := new(repomocks.MockOrderRepository)
	svc := CreateMetricsService(new(repomocks.MockProductRepository), mockOrderRepo)

	expected := dto.SalesResponse{
		Daily: []dto.SalesDailyBucket{{Year: 2025, Month: 3, Day: 14, Revenue: 120, Units: 4}},
		TopProducts: []dto.TopProduct{
			{ProductID: "p1", Units: 4, Revenue: 120},
		},
	}

	mockOrderRepo.On("GetSalesSince", ctx, mock.MatchedBy(func(from time.Time) bool {
		// The window start is derived from time.Now, so only assert the shape:
		// roughly 7 days back and expressed in UTC.
		expectedFrom := time.Now().UTC().Add(-7 * 24 * time.Hour)
		return from.Sub(expectedFrom).Abs() < time.Minute && from.Location() == time.UTC
	})).Return(expected, nil).Once()

	resp, err := svc.GetSales(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, expected, resp)
	mockOrderRepo.AssertExpectations(t)
}
