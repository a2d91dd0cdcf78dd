package service

import (
	"context"
	"time"

	"github.com/aryaduta/ecommerce-admin-service/internal/domain"
	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
	"github.com/aryaduta/ecommerce-admin-service/internal/infrastructure/objectstorage"
	"github.com/aryaduta/ecommerce-admin-service/internal/repository"
	"github.com/aryaduta/ecommerce-admin-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductServiceImpl struct {
	repo    repository.ProductRepository
	storage objectstorage.ObjectStorage
}

func CreateProductService(repo repository.ProductRepository, storage objectstorage.ObjectStorage) ProductService {
	return &ProductServiceImpl{repo: repo, storage: storage}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter dto.ProductFilter) (resp dto.ProductListResponse, err error) {
	filter.Normalize()

	total, err := s.repo.CountProducts(ctx, filter)
	if err != nil {
		return
	}

	items, err := s.repo.GetProducts(ctx, filter)
	if err != nil {
		return
	}

	resp.Items = items
	resp.Page = filter.Page
	resp.Limit = filter.Limit
	resp.Total = total
	resp.TotalPages = TotalPages(total, filter.Limit)

	return resp, nil
}

// TotalPages computes ceil(total/limit).
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrClient
	}

	return s.repo.GetProductByID(ctx, objectID)
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.CreateProductRequest) (product domain.Product, err error) {
	now := time.Now().UTC()

	isActive := true
	if data.IsActive != nil {
		isActive = *data.IsActive
	}

	images := make([]domain.ProductImage, 0, len(data.Images))
	for _, img := range data.Images {
		images = append(images, domain.ProductImage{URL: img.URL, Key: img.Key})
	}

	product = domain.Product{
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       *data.Price,
		Stock:       *data.Stock,
		SKU:         data.SKU,
		Images:      images,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.AddProduct(ctx, product)
	if err != nil {
		return domain.Product{}, err
	}

	product.ID = id
	return product, nil
}

// RemovedImageKeys lists keys present in the previous image set but absent
// from the replacement set.
func RemovedImageKeys(previous []domain.ProductImage, replacement []dto.ProductImagePayload) []string {
	kept := make(map[string]bool, len(replacement))
	for _, img := range replacement {
		kept[img.Key] = true
	}

	var removed []string
	for _, img := range previous {
		if img.Key != "" && !kept[img.Key] {
			removed = append(removed, img.Key)
		}
	}
	return removed
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, id string, data dto.UpdateProductRequest) (product domain.Product, err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrClient
	}

	if data.IsEmpty() {
		return product, errs.ErrEmptyUpdate
	}

	var removedKeys []string
	if data.Images != nil {
		previous, err := s.repo.GetProductByID(ctx, objectID)
		if err != nil {
			return product, err
		}
		removedKeys = RemovedImageKeys(previous.Images, *data.Images)
	}

	product, err = s.repo.UpdateProduct(ctx, objectID, data)
	if err != nil {
		return product, err
	}

	// Best effort: the database update is never rolled back when storage
	// cleanup fails, so a failed delete leaves an orphaned object behind.
	if len(removedKeys) > 0 {
		if err := s.storage.DeleteObjects(ctx, removedKeys); err != nil {
			log.Ctx(ctx).Error().Err(err).Strs("keys", removedKeys).Str("component", "UpdateProduct").Msg("failed to delete replaced images")
		}
	}

	return product, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}

	deleted, err := s.repo.DeleteProduct(ctx, objectID)
	if err != nil {
		return err
	}

	keys := deleted.ImageKeys()
	if len(keys) > 0 {
		if err := s.storage.DeleteObjects(ctx, keys); err != nil {
			log.Ctx(ctx).Error().Err(err).Strs("keys", keys).Str("component", "DeleteProduct").Msg("failed to delete product images")
		}
	}

	return nil
}
