package repository

import (
	"context"
	"time"

	"github.com/aryaduta/ecommerce-admin-service/internal/domain"
	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
	"github.com/aryaduta/ecommerce-admin-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBOrderRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewOrderRepository(db *mongo.Database) OrderRepository {
	return &MongoDBOrderRepositoryImpl{db: db}
}

// BuildPaidTotalsPipeline sums revenue (price x quantity) and units across the
// line items of all paid orders.
func BuildPaidTotalsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": domain.OrderStatusPaid}}},
		bson.D{{Key: "$unwind", Value: "$items"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": bson.M{"$multiply": bson.A{"$items.price", "$items.quantity"}}},
			"units":   bson.M{"$sum": "$items.quantity"},
		}}},
	}
}

// BuildSalesPipeline restricts to paid orders created at or after from
// (inclusive lower bound), expands line items, and computes the daily series
// and the top-5-by-revenue leaderboard in one faceted pass. Day buckets use
// the UTC calendar.
func BuildSalesPipeline(from time.Time) mongo.Pipeline {
	lineTotal := bson.M{"$multiply": bson.A{"$items.price", "$items.quantity"}}

	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"status":    domain.OrderStatusPaid,
			"createdAt": bson.M{"$gte": from},
		}}},
		bson.D{{Key: "$unwind", Value: "$items"}},
		bson.D{{Key: "$facet", Value: bson.M{
			"daily": bson.A{
				bson.M{"$group": bson.M{
					"_id": bson.M{
						"y": bson.M{"$year": "$createdAt"},
						"m": bson.M{"$month": "$createdAt"},
						"d": bson.M{"$dayOfMonth": "$createdAt"},
					},
					"revenue": bson.M{"$sum": lineTotal},
					"units":   bson.M{"$sum": "$items.quantity"},
				}},
				bson.M{"$sort": bson.D{
					{Key: "_id.y", Value: 1},
					{Key: "_id.m", Value: 1},
					{Key: "_id.d", Value: 1},
				}},
			},
			"topProducts": bson.A{
				bson.M{"$group": bson.M{
					"_id":     "$items.productId",
					"units":   bson.M{"$sum": "$items.quantity"},
					"revenue": bson.M{"$sum": lineTotal},
				}},
				bson.M{"$sort": bson.D{{Key: "revenue", Value: -1}}},
				bson.M{"$limit": 5},
			},
		}}},
	}
}

type paidTotalsRow struct {
	Revenue float64 `bson:"revenue"`
	Units   int64   `bson:"units"`
}

type salesFacetRow struct {
	Daily []struct {
		ID struct {
			Y int32 `bson:"y"`
			M int32 `bson:"m"`
			D int32 `bson:"d"`
		} `bson:"_id"`
		Revenue float64 `bson:"revenue"`
		Units   int64   `bson:"units"`
	} `bson:"daily"`
	TopProducts []struct {
		ID      primitive.ObjectID `bson:"_id"`
		Units   int64              `bson:"units"`
		Revenue float64            `bson:"revenue"`
	} `bson:"topProducts"`
}

func (r *MongoDBOrderRepositoryImpl) GetPaidTotals(ctx context.Context) (revenue float64, units int64, err error) {
	cursor, err := r.db.Collection("orders").Aggregate(ctx, BuildPaidTotalsPipeline())
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetPaidTotals").Msg("")
		return 0, 0, errs.ErrInternalServer
	}

	var rows []paidTotalsRow
	if err = cursor.All(ctx, &rows); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetPaidTotals").Msg("")
		return 0, 0, errs.ErrInternalServer
	}

	// No paid orders at all: both totals default to zero.
	if len(rows) == 0 {
		return 0, 0, nil
	}

	return rows[0].Revenue, rows[0].Units, nil
}

func (r *MongoDBOrderRepositoryImpl) GetSalesSince(ctx context.Context, from time.Time) (data dto.SalesResponse, err error) {
	cursor, err := r.db.Collection("orders").Aggregate(ctx, BuildSalesPipeline(from))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetSalesSince").Msg("")
		return data, errs.ErrInternalServer
	}

	var rows []salesFacetRow
	if err = cursor.All(ctx, &rows); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetSalesSince").Msg("")
		return data, errs.ErrInternalServer
	}

	data.Daily = []dto.SalesDailyBucket{}
	data.TopProducts = []dto.TopProduct{}
	if len(rows) == 0 {
		return data, nil
	}

	for _, bucket := range rows[0].Daily {
		data.Daily = append(data.Daily, dto.SalesDailyBucket{
			Year:    bucket.ID.Y,
			Month:   bucket.ID.M,
			Day:     bucket.ID.D,
			Revenue: bucket.Revenue,
			Units:   bucket.Units,
		})
	}
	for _, top := range rows[0].TopProducts {
		data.TopProducts = append(data.TopProducts, dto.TopProduct{
			ProductID: top.ID.Hex(),
			Units:     top.Units,
			Revenue:   top.Revenue,
		})
	}

	return data, nil
}

func (r *MongoDBOrderRepositoryImpl) ReplaceOrders(ctx context.Context, orders []domain.Order) (err error) {
	collection := r.db.Collection("orders")

	if _, err = collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ReplaceOrders").Msg("")
		return errs.ErrInternalServer
	}

	if len(orders) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(orders))
	for _, order := range orders {
		docs = append(docs, order)
	}

	if _, err = collection.InsertMany(ctx, docs); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ReplaceOrders").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}
