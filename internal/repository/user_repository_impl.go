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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBUserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepositoryImpl{db: db}
}

func (r *MongoDBUserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (user domain.User, err error) {
	err = r.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return user, errs.ErrInternalServer
	}

	return user, nil
}

func (r *MongoDBUserRepositoryImpl) GetUserByID(ctx context.Context, id primitive.ObjectID) (user domain.User, err error) {
	err = r.db.Collection("users").FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByID").Msg("")
		return user, errs.ErrInternalServer
	}

	return user, nil
}

func (r *MongoDBUserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("users").InsertOne(ctx, data)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrEmailAlreadyUsed
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		return id, errs.ErrInternalServer
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBUserRepositoryImpl) GetUsers(ctx context.Context) (data []domain.User, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection("users").Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return data, errs.ErrInternalServer
	}

	data = []domain.User{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return data, errs.ErrInternalServer
	}

	return data, nil
}

func (r *MongoDBUserRepositoryImpl) CountUsers(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountUsers").Msg("")
		return 0, errs.ErrInternalServer
	}

	return count, nil
}

func (r *MongoDBUserRepositoryImpl) UpdateUser(ctx context.Context, id primitive.ObjectID, data dto.UpdateUserRequest) (user domain.User, err error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if data.Role != nil {
		set["role"] = *data.Role
	}
	if data.IsActive != nil {
		set["isActive"] = *data.IsActive
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.db.Collection("users").FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateUser").Msg("")
		return user, errs.ErrInternalServer
	}

	return user, nil
}

func (r *MongoDBUserRepositoryImpl) DeleteUser(ctx context.Context, id primitive.ObjectID) (err error) {
	result, err := r.db.Collection("users").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteUser").Msg("")
		return errs.ErrInternalServer
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
