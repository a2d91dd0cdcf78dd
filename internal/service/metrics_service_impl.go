package service

import (
	"context"
	"time"

	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
	"github.com/aryaduta/ecommerce-admin-service/internal/repository"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultSalesWindowDays = 30
	maxSalesWindowDays     = 365
)

type MetricsServiceImpl struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func CreateMetricsService(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) MetricsService {
	return &MetricsServiceImpl{productRepo: productRepo, orderRepo: orderRepo}
}

func (s *MetricsServiceImpl) GetOverview(ctx context.Context) (resp dto.OverviewResponse, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.productRepo.CountAllProducts(gctx)
		resp.TotalProducts = count
		return err
	})
	g.Go(func() error {
		count, err := s.productRepo.CountLowStockProducts(gctx)
		resp.LowStock = count
		return err
	})
	g.Go(func() error {
		count, err := s.productRepo.CountOutOfStockProducts(gctx)
		resp.OutOfStock = count
		return err
	})
	g.Go(func() error {
		revenue, units, err := s.orderRepo.GetPaidTotals(gctx)
		resp.Revenue = revenue
		resp.Units = units
		return err
	})

	if err = g.Wait(); err != nil {
		return dto.OverviewResponse{}, err
	}

	return resp, nil
}

// SalesWindowStart returns the inclusive lower bound of a trailing window of
// the given number of days ending at now. Days outside 1..365 fall back to
// the 30-day default.
func SalesWindowStart(now time.Time, days int) time.Time {
	if days < 1 || days > maxSalesWindowDays {
		days = DefaultSalesWindowDays
	}
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}

func (s *MetricsServiceImpl) GetSales(ctx context.Context, days int) (resp dto.SalesResponse, err error) {
	from := SalesWindowStart(time.Now().UTC(), days)
	return s.orderRepo.GetSalesSince(ctx, from)
}
