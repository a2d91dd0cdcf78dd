package repository

import (
	"testing"
	"time"

	"github.com/aryaduta/ecommerce-admin-service/internal/domain"
	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func boolPtr(v bool) *bool { return &v }

func TestBuildProductFilter(t *testing.T) {
	t.Run("empty filter matches everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, BuildProductFilter(dto.ProductFilter{}))
	})

	t.Run("search becomes a case-insensitive name regex", func(t *testing.T) {
		query := BuildProductFilter(dto.ProductFilter{Search: "shoe"})

		assert.Equal(t, bson.M{"name": bson.M{"$regex": "shoe", "$options": "i"}}, query)
	})

	t.Run("all conditions are conjunctive", func(t *testing.T) {
		query := BuildProductFilter(dto.ProductFilter{
			Search:   "shoe",
			Category: "Shoes",
			IsActive: boolPtr(false),
		})

		assert.Len(t, query, 3)
		assert.Equal(t, "Shoes", query["category"])
		assert.Equal(t, false, query["isActive"])
	})
}

func TestBuildProductSort(t *testing.T) {
	testCases := []struct {
		sort     string
		expected bson.D
	}{
		{sort: dto.SortPriceAsc, expected: bson.D{{Key: "price", Value: 1}}},
		{sort: dto.SortPriceDesc, expected: bson.D{{Key: "price", Value: -1}}},
		{sort: dto.SortStockAsc, expected: bson.D{{Key: "stock", Value: 1}}},
		{sort: dto.SortStockDesc, expected: bson.D{{Key: "stock", Value: -1}}},
		{sort: dto.SortNewest, expected: bson.D{{Key: "createdAt", Value: -1}}},
		{sort: "", expected: bson.D{{Key: "createdAt", Value: -1}}},
		{sort: "name_desc", expected: bson.D{{Key: "createdAt", Value: -1}}},
	}

	for _, tc := range testCases {
		t.Run("sort "+tc.sort, func(t *testing.T) {
			assert.Equal(t, tc.expected, BuildProductSort(tc.sort))
		})
	}
}

func TestBuildProductUpdate(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("empty payload still refreshes updatedAt", func(t *testing.T) {
		set := BuildProductUpdate(dto.UpdateProductRequest{}, now)

		assert.Equal(t, bson.M{"updatedAt": now}, set)
	})

	t.Run("only provided fields enter the set document", func(t *testing.T) {
		name := "Renamed"
		price := 49.90
		set := BuildProductUpdate(dto.UpdateProductRequest{Name: &name, Price: &price}, now)

		assert.Equal(t, "Renamed", set["name"])
		assert.Equal(t, 49.90, set["price"])
		assert.NotContains(t, set, "stock")
		assert.NotContains(t, set, "sku")
		assert.NotContains(t, set, "images")
		assert.NotContains(t, set, "isActive")
	})

	t.Run("images payload is converted to domain images", func(t *testing.T) {
		images := []dto.ProductImagePayload{{URL: "https://cdn.example.com/a.jpg", Key: "products/a"}}
		set := BuildProductUpdate(dto.UpdateProductRequest{Images: &images}, now)

		assert.Equal(t, []domain.ProductImage{{URL: "https://cdn.example.com/a.jpg", Key: "products/a"}}, set["images"])
	})

	t.Run("explicit empty image list clears images", func(t *testing.T) {
		images := []dto.ProductImagePayload{}
		set := BuildProductUpdate(dto.UpdateProductRequest{Images: &images}, now)

		assert.Equal(t, []domain.ProductImage{}, set["images"])
	})

	t.Run("false and zero values survive through pointers", func(t *testing.T) {
		var stock int64
		set := BuildProductUpdate(dto.UpdateProductRequest{Stock: &stock, IsActive: boolPtr(false)}, now)

		assert.Equal(t, int64(0), set["stock"])
		assert.Equal(t, false, set["isActive"])
	})
}
