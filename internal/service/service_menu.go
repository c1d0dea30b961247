package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/store"
	"github.com/MKhiriev/eat-around/models"
)

type menuService struct {
	foodRepository store.FoodRepository
	logger         *logger.Logger
}

// NewMenuService constructs the read-only catalog service.
func NewMenuService(foodRepository store.FoodRepository, logger *logger.Logger) MenuService {
	return &menuService{foodRepository: foodRepository, logger: logger}
}

// List returns every food, or only those whose category equals
// filter.Category exactly.
func (s *menuService) List(ctx context.Context, filter models.FoodFilter) ([]models.Food, error) {
	foods, err := s.foodRepository.ListFoods(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("category", filter.Category).Msg("food listing failed")
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return foods, nil
}

// Import stores catalog entries. Entries without a name are skipped.
func (s *menuService) Import(ctx context.Context, foods []models.Food) (int, error) {
	valid := make([]models.Food, 0, len(foods))
	for _, food := range foods {
		food.Name = strings.TrimSpace(food.Name)
		if food.Name == "" {
			continue
		}
		valid = append(valid, food)
	}

	n, err := s.foodRepository.ImportFoods(ctx, valid)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("foods", len(valid)).Msg("food import failed")
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	logger.FromContext(ctx).Info().Int("imported", n).Int("skipped", len(foods)-len(valid)).Msg("foods imported")
	return n, nil
}
