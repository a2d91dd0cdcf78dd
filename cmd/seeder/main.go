package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/aryaduta/ecommerce-admin-service/config"
	"github.com/aryaduta/ecommerce-admin-service/internal/domain"
	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
	"github.com/aryaduta/ecommerce-admin-service/internal/infrastructure/database/mongodb"
	"github.com/aryaduta/ecommerce-admin-service/internal/repository"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const orderWindowDays = 90

var categories = []string{"Shoes", "T-Shirts", "Hoodies", "Bags", "Watches", "Electronics"}

var categoryImages = map[string][]domain.ProductImage{
	"Shoes": {
		{Key: "seed/unsplash/shoes-1", URL: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=1200&q=80"},
		{Key: "seed/unsplash/shoes-2", URL: "https://images.unsplash.com/photo-1460353581641-37baddab0fa2?auto=format&fit=crop&w=1200&q=80"},
	},
	"T-Shirts": {
		{Key: "seed/unsplash/tshirt-1", URL: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=1200&q=80"},
	},
	"Hoodies": {
		{Key: "seed/unsplash/hoodie-1", URL: "https://images.unsplash.com/photo-1556821840-3a63f95609a7?auto=format&fit=crop&w=1200&q=80"},
	},
	"Bags": {
		{Key: "seed/unsplash/bag-1", URL: "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&w=1200&q=80"},
	},
	"Watches": {
		{Key: "seed/unsplash/watch-1", URL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?auto=format&fit=crop&w=1200&q=80"},
	},
	"Electronics": {
		{Key: "seed/unsplash/electronics-1", URL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=1200&q=80"},
	},
}

func main() {
	logger := log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	log.Logger = logger

	conf := config.CreateNewConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := mongodb.ConnectToMongoDB(ctx, conf.MongoDBConfig.URI, conf.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	productRepo := repository.CreateNewProductRepository(db)
	orderRepo := repository.CreateNewOrderRepository(db)

	products, err := seedProductsIfEmpty(ctx, productRepo)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed products")
	}

	inserted, err := seedOrders(ctx, orderRepo, products, orderWindowDays)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed orders")
	}

	log.Info().Int("orders", inserted).Int("products", len(products)).Msg("Seed complete")
}

func seedProductsIfEmpty(ctx context.Context, repo repository.ProductRepository) ([]domain.Product, error) {
	count, err := repo.CountAllProducts(ctx)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		return repo.GetProducts(ctx, dto.ProductFilter{Page: 1, Limit: int(count)})
	}

	now := time.Now().UTC()
	products := make([]domain.Product, 0, 25)

	for i := 0; i < 25; i++ {
		category := categories[rand.Intn(len(categories))]

		images := categoryImages[category]
		image := images[rand.Intn(len(images))]

		product := domain.Product{
			Name:        fmt.Sprintf("%s Product %d", category, i+1),
			Description: fmt.Sprintf("Seeded product %d for dashboard testing.", i+1),
			Category:    category,
			Price:       float64(randInt(299, 7999)),
			Stock:       int64(randInt(0, 120)),
			SKU:         fmt.Sprintf("SKU-%s-%04d", strings.ToUpper(category[:3]), i+1),
			Images:      []domain.ProductImage{image},
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		id, err := repo.AddProduct(ctx, product)
		if err != nil {
			return nil, err
		}

		product.ID = id
		products = append(products, product)
	}

	return products, nil
}

func seedOrders(ctx context.Context, repo repository.OrderRepository, products []domain.Product, days int) (int, error) {
	now := time.Now().UTC()
	from := now.Add(-time.Duration(days) * 24 * time.Hour)

	var orders []domain.Order

	for d := 0; d < days; d++ {
		day := from.Add(time.Duration(d) * 24 * time.Hour)

		for o := 0; o < randInt(0, 8); o++ {
			chosen := pickProducts(products, randInt(1, 4))

			items := make([]domain.OrderItem, 0, len(chosen))
			for _, p := range chosen {
				items = append(items, domain.OrderItem{
					ProductID: p.ID,
					Quantity:  int64(randInt(1, 3)),
					Price:     p.Price,
				})
			}

			createdAt := time.Date(day.Year(), day.Month(), day.Day(),
				randInt(0, 23), randInt(0, 59), randInt(0, 59), 0, time.UTC)

			orders = append(orders, domain.Order{
				Status:    pickStatus(),
				Items:     items,
				CreatedAt: createdAt,
				UpdatedAt: createdAt,
			})
		}
	}

	if err := repo.ReplaceOrders(ctx, orders); err != nil {
		return 0, err
	}

	return len(orders), nil
}

func pickStatus() string {
	r := rand.Float64()
	switch {
	case r < 0.9:
		return domain.OrderStatusPaid
	case r < 0.95:
		return domain.OrderStatusCancelled
	default:
		return domain.OrderStatusRefunded
	}
}

func pickProducts(products []domain.Product, n int) []domain.Product {
	if n > len(products) {
		n = len(products)
	}

	shuffled := make([]domain.Product, len(products))
	copy(shuffled, products)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:n]
}

func randInt(min, max int) int {
	return min + rand.Intn(max-min+1)
}
