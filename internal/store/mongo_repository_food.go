package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/models"
)

type mongoFoodRepository struct {
	logger *logger.Logger
	foods  *mongo.Collection
}

// NewMongoFoodRepository constructs a MongoDB [FoodRepository] over the
// "food" collection.
func NewMongoFoodRepository(db *MongoDB, logger *logger.Logger) FoodRepository {
	return newMongoFoodRepository(db.collection(foodsCollection), logger)
}

func newMongoFoodRepository(foods *mongo.Collection, logger *logger.Logger) *mongoFoodRepository {
	logger.Debug().Msg("creating mongo food repository")
	return &mongoFoodRepository{logger: logger, foods: foods}
}

func (r *mongoFoodRepository) ListFoods(ctx context.Context, filter models.FoodFilter) ([]models.Food, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	cursor, err := r.foods.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoFoodRepository.ListFoods").Msg("error querying foods")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	foods := make([]models.Food, 0)
	for cursor.Next(ctx) {
		var doc foodDocument
		if err = cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		foods = append(foods, doc.model())
	}
	if err = cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return foods, nil
}

func (r *mongoFoodRepository) ImportFoods(ctx context.Context, foods []models.Food) (int, error) {
	if len(foods) == 0 {
		return 0, nil
	}

	docs := make([]any, 0, len(foods))
	for _, food := range foods {
		docs = append(docs, newFoodDocument(food))
	}

	result, err := r.foods.InsertMany(ctx, docs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoFoodRepository.ImportFoods").Msg("error inserting foods")
		return 0, mongoWriteError(err)
	}

	return len(result.InsertedIDs), nil
}
