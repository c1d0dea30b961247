package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/models"
)

type foodRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewFoodRepository constructs a SQL [FoodRepository] over the "foods" table.
func NewFoodRepository(db *DB, logger *logger.Logger) FoodRepository {
	logger.Debug().Msg("creating food repository")
	return &foodRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

func (r *foodRepository) ListFoods(ctx context.Context, filter models.FoodFilter) ([]models.Food, error) {
	query, args, err := buildSelectFoodsQuery(r.db.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*foodRepository.ListFoods").Msg("error querying foods")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	foods := make([]models.Food, 0)
	for rows.Next() {
		var food models.Food
		if err = rows.Scan(&food.ID, &food.Name, &food.Price, &food.Category, &food.Description); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		foods = append(foods, food)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return foods, nil
}

func (r *foodRepository) ImportFoods(ctx context.Context, foods []models.Food) (int, error) {
	if len(foods) == 0 {
		return 0, nil
	}

	rows := make([]models.Food, len(foods))
	for i, food := range foods {
		food.ID = r.ids.Generate()
		rows[i] = food
	}

	query, args, err := buildInsertFoodsQuery(r.db.builder, rows)
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*foodRepository.ImportFoods").Msg("error inserting foods")
		return 0, r.db.writeError(err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return int(inserted), nil
}
