package repository

import (
	"testing"
	"time"

	"github.com/aryaduta/ecommerce-admin-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildPaidTotalsPipeline(t *testing.T) {
	pipeline := BuildPaidTotalsPipeline()
	require.Len(t, pipeline, 3)

	match := pipeline[0][0]
	assert.Equal(t, "$match", match.Key)
	assert.Equal(t, bson.M{"status": domain.OrderStatusPaid}, match.Value)

	assert.Equal(t, "$unwind", pipeline[1][0].Key)
	assert.Equal(t, "$items", pipeline[1][0].Value)

	group := pipeline[2][0]
	assert.Equal(t, "$group", group.Key)
	groupDoc := group.Value.(bson.M)
	assert.Nil(t, groupDoc["_id"])
	assert.Equal(t, bson.M{"$sum": bson.M{"$multiply": bson.A{"$items.price", "$items.quantity"}}}, groupDoc["revenue"])
	assert.Equal(t, bson.M{"$sum": "$items.quantity"}, groupDoc["units"])
}

func TestBuildSalesPipeline(t *testing.T) {
	from := time.Date(2025, time.February, 13, 12, 0, 0, 0, time.UTC)
	pipeline := BuildSalesPipeline(from)
	require.Len(t, pipeline, 3)

	t.Run("match restricts to paid orders with an inclusive lower bound", func(t *testing.T) {
		match := pipeline[0][0]
		require.Equal(t, "$match", match.Key)

		matchDoc := match.Value.(bson.M)
		assert.Equal(t, domain.OrderStatusPaid, matchDoc["status"])
		assert.Equal(t, bson.M{"$gte": from}, matchDoc["createdAt"])
	})

	t.Run("facet builds daily series and top products in one pass", func(t *testing.T) {
		facet := pipeline[2][0]
		require.Equal(t, "$facet", facet.Key)

		facetDoc := facet.Value.(bson.M)
		require.Contains(t, facetDoc, "daily")
		require.Contains(t, facetDoc, "topProducts")

		daily := facetDoc["daily"].(bson.A)
		require.Len(t, daily, 2)
		dailyGroup := daily[0].(bson.M)["$group"].(bson.M)
		bucket := dailyGroup["_id"].(bson.M)
		assert.Equal(t, bson.M{"$year": "$createdAt"}, bucket["y"])
		assert.Equal(t, bson.M{"$month": "$createdAt"}, bucket["m"])
		assert.Equal(t, bson.M{"$dayOfMonth": "$createdAt"}, bucket["d"])
		assert.Equal(t,
			bson.D{{Key: "_id.y", Value: 1}, {Key: "_id.m", Value: 1}, {Key: "_id.d", Value: 1}},
			daily[1].(bson.M)["$sort"])

		top := facetDoc["topProducts"].(bson.A)
		require.Len(t, top, 3)
		topGroup := top[0].(bson.M)["$group"].(bson.M)
		assert.Equal(t, "$items.productId", topGroup["_id"])
		assert.Equal(t, bson.D{{Key: "revenue", Value: -1}}, top[1].(bson.M)["$sort"])
		assert.Equal(t, 5, top[2].(bson.M)["$limit"])
	})
}
