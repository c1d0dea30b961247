package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/models"
)

type mongoOrderRepository struct {
	logger *logger.Logger
	orders *mongo.Collection
	now    func() time.Time
}

// NewMongoOrderRepository constructs a MongoDB [OrderRepository] over the
// "orders" collection. Items are embedded in the order document.
func NewMongoOrderRepository(db *MongoDB, logger *logger.Logger) OrderRepository {
	return newMongoOrderRepository(db.collection(ordersCollection), logger)
}

func newMongoOrderRepository(orders *mongo.Collection, logger *logger.Logger) *mongoOrderRepository {
	logger.Debug().Msg("creating mongo order repository")
	return &mongoOrderRepository{
		logger: logger,
		orders: orders,
		now:    time.Now,
	}
}

func (r *mongoOrderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	now := r.now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.OrderedAt.IsZero() {
		order.OrderedAt = now
	}

	result, err := r.orders.InsertOne(ctx, newOrderDocument(order))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoOrderRepository.CreateOrder").Msg("error inserting order")
		return models.Order{}, mongoWriteError(err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid.Hex()
	}
	return order, nil
}

func (r *mongoOrderRepository) FindOrderByCode(ctx context.Context, code string) (models.Order, error) {
	return r.findOne(ctx, "*mongoOrderRepository.FindOrderByCode", bson.M{"code": code})
}

func (r *mongoOrderRepository) GetOrderByID(ctx context.Context, id string) (models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Order{}, ErrNotFound
	}

	return r.findOne(ctx, "*mongoOrderRepository.GetOrderByID", bson.M{"_id": oid})
}

func (r *mongoOrderRepository) findOne(ctx context.Context, fn string, filter bson.M) (models.Order, error) {
	var doc orderDocument
	err := r.orders.FindOne(ctx, filter).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.Order{}, ErrNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error querying order")
		return models.Order{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.model(), nil
}

func (r *mongoOrderRepository) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	query := bson.M{}
	if filter.UserID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.UserID)
		if err != nil {
			return []models.Order{}, nil
		}
		query["user"] = oid
	}

	opts := options.Find().SetSort(bson.D{{Key: "orderedAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.orders.Find(ctx, query, opts)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoOrderRepository.ListOrders").Msg("error querying orders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	for cursor.Next(ctx) {
		var doc orderDocument
		if err = cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		orders = append(orders, doc.model())
	}
	if err = cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return orders, nil
}

func (r *mongoOrderRepository) DeleteAllOrders(ctx context.Context) (int64, error) {
	result, err := r.orders.DeleteMany(ctx, bson.M{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoOrderRepository.DeleteAllOrders").Msg("error deleting orders")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	logger.FromContext(ctx).Info().Int64("deleted", result.DeletedCount).Msg("all orders deleted")
	return result.DeletedCount, nil
}
