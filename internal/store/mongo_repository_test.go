package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/models"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestMongoUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns object id", func(mt *mtest.T) {
		repo := newMongoUserRepository(mt.Coll, logger.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user, err := repo.CreateUser(context.Background(), models.User{Username: "john", PasswordHash: "h"})
		require.NoError(t, err)
		_, err = primitive.ObjectIDFromHex(user.ID)
		assert.NoError(t, err)
		assert.False(t, user.CreatedAt.IsZero())
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		repo := newMongoUserRepository(mt.Coll, logger.Nop())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "duplicate key error",
		}))

		_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	mt.Run("find legacy record", func(mt *mtest.T) {
		repo := newMongoUserRepository(mt.Coll, logger.Nop())
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "name", Value: "olduser"},
			{Key: "password", Value: "plain"},
			{Key: "book", Value: "Dune"},
			{Key: "subject", Value: "Math"},
		}))

		user, err := repo.FindUser(context.Background(), models.NewUserLookup("olduser", ""))
		require.NoError(t, err)
		assert.Equal(t, oid.Hex(), user.ID)
		assert.Equal(t, "olduser", user.Identifier())
		assert.Equal(t, "plain", user.StoredPassword())
		assert.True(t, user.SecurityQuestionsSet())
	})

	mt.Run("find not found", func(mt *mtest.T) {
		repo := newMongoUserRepository(mt.Coll, logger.Nop())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		_, err := repo.FindUser(context.Background(), models.NewUserLookup("", "ghost@example.com"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := newMongoUserRepository(mt.Coll, logger.Nop())

		_, err := repo.GetUserByID(context.Background(), "not-an-object-id")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	mt.Run("update unmatched", func(mt *mtest.T) {
		repo := newMongoUserRepository(mt.Coll, logger.Nop())
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		err := repo.UpdatePassword(context.Background(), primitive.NewObjectID().Hex(), "hash")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	mt.Run("update answers", func(mt *mtest.T) {
		repo := newMongoUserRepository(mt.Coll, logger.Nop())
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})

		err := repo.UpdateRecoveryAnswers(context.Background(), primitive.NewObjectID().Hex(),
			models.SecurityQuestions{FavouriteBook: "Dune", BestSubject: "Math"})
		assert.NoError(t, err)
	})
}

func TestMongoOrderRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list decodes items", func(mt *mtest.T) {
		repo := newMongoOrderRepository(mt.Coll, logger.Nop())
		orderedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		first := mtest.CreateCursorResponse(1, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "code", Value: "ORD-1-ABCD"},
			{Key: "orderedAt", Value: orderedAt},
			{Key: "items", Value: bson.A{
				bson.D{{Key: "name", Value: "Pizza"}, {Key: "quantity", Value: int32(2)}, {Key: "price", Value: 9.5}},
				bson.D{{Key: "name", Value: "Cola"}, {Key: "quantity", Value: 1.0}, {Key: "price", Value: int32(2)}},
			}},
		})
		last := mtest.CreateCursorResponse(0, namespace(mt), mtest.NextBatch)
		mt.AddMockResponses(first, last)

		orders, err := repo.ListOrders(context.Background(), models.OrderFilter{})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "ORD-1-ABCD", orders[0].Code)
		assert.Equal(t, 21.0, orders[0].Total())
		assert.True(t, orders[0].OrderedAt.Equal(orderedAt))
	})

	mt.Run("list keeps fractional and missing quantities", func(mt *mtest.T) {
		repo := newMongoOrderRepository(mt.Coll, logger.Nop())
		first := mtest.CreateCursorResponse(1, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "code", Value: "ORD-1-LGCY"},
			{Key: "items", Value: bson.A{
				bson.D{{Key: "name", Value: "Juice"}, {Key: "quantity", Value: 2.5}, {Key: "price", Value: 4.0}},
				bson.D{{Key: "name", Value: "Bread"}, {Key: "price", Value: 3.0}},
			}},
		})
		last := mtest.CreateCursorResponse(0, namespace(mt), mtest.NextBatch)
		mt.AddMockResponses(first, last)

		orders, err := repo.ListOrders(context.Background(), models.OrderFilter{})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		require.Len(t, orders[0].Items, 2)
		assert.Equal(t, 2.5, orders[0].Items[0].Quantity)
		assert.Equal(t, 1.0, orders[0].Items[1].Quantity)
		assert.Equal(t, 13.0, orders[0].Total())
	})

	mt.Run("list for malformed user id is empty", func(mt *mtest.T) {
		repo := newMongoOrderRepository(mt.Coll, logger.Nop())

		orders, err := repo.ListOrders(context.Background(), models.OrderFilter{UserID: "u-1"})
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	mt.Run("get by malformed id", func(mt *mtest.T) {
		repo := newMongoOrderRepository(mt.Coll, logger.Nop())

		_, err := repo.GetOrderByID(context.Background(), "xyz")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	mt.Run("delete all", func(mt *mtest.T) {
		repo := newMongoOrderRepository(mt.Coll, logger.Nop())
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 4}})

		deleted, err := repo.DeleteAllOrders(context.Background())
		require.NoError(t, err)
		assert.EqualValues(t, 4, deleted)
	})
}

func TestMongoFoodRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list", func(mt *mtest.T) {
		repo := newMongoFoodRepository(mt.Coll, logger.Nop())
		first := mtest.CreateCursorResponse(1, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Soup"}, {Key: "price", Value: 4.0}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Tea"}, {Key: "price", Value: 1.5}},
		)
		last := mtest.CreateCursorResponse(0, namespace(mt), mtest.NextBatch)
		mt.AddMockResponses(first, last)

		foods, err := repo.ListFoods(context.Background(), models.FoodFilter{})
		require.NoError(t, err)
		require.Len(t, foods, 2)
		assert.Equal(t, "Tea", foods[1].Name)
	})

	mt.Run("import", func(mt *mtest.T) {
		repo := newMongoFoodRepository(mt.Coll, logger.Nop())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		n, err := repo.ImportFoods(context.Background(), []models.Food{{Name: "Soup"}, {Name: "Tea"}})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestUserLookupFilter(t *testing.T) {
	assert.Nil(t, userLookupFilter(models.UserLookup{}))

	filter := userLookupFilter(models.NewUserLookup("john", "j@x.io"))
	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	assert.Len(t, or, 3)
}

func TestIsMongoDSN(t *testing.T) {
	assert.True(t, isMongoDSN("mongodb://localhost:27017"))
	assert.True(t, isMongoDSN("mongodb+srv://cluster.example.com"))
	assert.False(t, isMongoDSN("postgres://localhost/shop"))
	assert.False(t, isMongoDSN("shop.db"))
}
