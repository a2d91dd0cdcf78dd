package repository

import (
	"time"

	"context"

	"github.com/aryaduta/ecommerce-admin-service/internal/domain"
	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
	"github.com/aryaduta/ecommerce-admin-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const lowStockThreshold = 5

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

// BuildProductFilter translates the listing query into a conjunctive mongo
// filter document.
func BuildProductFilter(filter dto.ProductFilter) bson.M {
	query := bson.M{}
	if filter.Search != "" {
		query["name"] = bson.M{"$regex": filter.Search, "$options": "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.IsActive != nil {
		query["isActive"] = *filter.IsActive
	}
	return query
}

// BuildProductSort maps a sort key onto the mongo sort document. Unknown keys
// fall back to newest-first.
func BuildProductSort(sort string) bson.D {
	switch sort {
	case dto.SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}}
	case dto.SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}}
	case dto.SortStockAsc:
		return bson.D{{Key: "stock", Value: 1}}
	case dto.SortStockDesc:
		return bson.D{{Key: "stock", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, filter dto.ProductFilter) (data []domain.Product, err error) {
	opts := options.Find().
		SetSort(BuildProductSort(filter.Sort)).
		SetSkip(int64(filter.Page-1) * int64(filter.Limit)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.db.Collection("products").Find(ctx, BuildProductFilter(filter), opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return data, errs.ErrInternalServer
	}

	data = []domain.Product{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return data, errs.ErrInternalServer
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) CountProducts(ctx context.Context, filter dto.ProductFilter) (count int64, err error) {
	count, err = r.db.Collection("products").CountDocuments(ctx, BuildProductFilter(filter))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
		return 0, errs.ErrInternalServer
	}

	return count, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error) {
	err = r.db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, errs.ErrInternalServer
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrSKUAlreadyUsed
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return id, errs.ErrInternalServer
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

// BuildProductUpdate turns a partial update payload into a $set document
// containing only the provided fields plus the refreshed updatedAt.
func BuildProductUpdate(data dto.UpdateProductRequest, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if data.Name != nil {
		set["name"] = *data.Name
	}
	if data.Description != nil {
		set["description"] = *data.Description
	}
	if data.Category != nil {
		set["category"] = *data.Category
	}
	if data.Price != nil {
		set["price"] = *data.Price
	}
	if data.Stock != nil {
		set["stock"] = *data.Stock
	}
	if data.SKU != nil {
		set["sku"] = *data.SKU
	}
	if data.Images != nil {
		images := make([]domain.ProductImage, 0, len(*data.Images))
		for _, img := range *data.Images {
			images = append(images, domain.ProductImage{URL: img.URL, Key: img.Key})
		}
		set["images"] = images
	}
	if data.IsActive != nil {
		set["isActive"] = *data.IsActive
	}
	return set
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, id primitive.ObjectID, data dto.UpdateProductRequest) (product domain.Product, err error) {
	update := bson.M{"$set": BuildProductUpdate(data, time.Now().UTC())}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err = r.db.Collection("products").FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return product, errs.ErrSKUAlreadyUsed
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return product, errs.ErrInternalServer
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error) {
	err = r.db.Collection("products").FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return product, errs.ErrInternalServer
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) CountAllProducts(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection("products").CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountAllProducts").Msg("")
		return 0, errs.ErrInternalServer
	}

	return count, nil
}

func (r *MongoDBProductRepositoryImpl) CountLowStockProducts(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection("products").CountDocuments(ctx, bson.M{"stock": bson.M{"$lte": lowStockThreshold}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountLowStockProducts").Msg("")
		return 0, errs.ErrInternalServer
	}

	return count, nil
}

func (r *MongoDBProductRepositoryImpl) CountOutOfStockProducts(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection("products").CountDocuments(ctx, bson.M{"stock": 0})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountOutOfStockProducts").Msg("")
		return 0, errs.ErrInternalServer
	}

	return count, nil
}
