package store

import (
	"context"

	"github.com/MKhiriev/eat-around/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
//
// Implementations return [ErrAlreadyExists] when a uniqueness constraint on
// username or email is violated and [ErrNotFound] when no record matches.
type UserRepository interface {
	// CreateUser stores user and returns it with ID and timestamps set.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUser returns the first user matching lookup. An empty lookup
	// matches nothing.
	FindUser(ctx context.Context, lookup models.UserLookup) (models.User, error)
	// GetUserByID returns the user with the given id.
	GetUserByID(ctx context.Context, id string) (models.User, error)
	// UpdatePassword overwrites both the current hash and the legacy
	// password field.
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// UpdateRecoveryAnswers overwrites the structured answers and their
	// legacy flat mirrors.
	UpdateRecoveryAnswers(ctx context.Context, id string, answers models.SecurityQuestions) error
}

// OrderRepository persists orders. Totals are never stored.
type OrderRepository interface {
	// CreateOrder stores order and returns it with ID and timestamps set.
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)
	// FindOrderByCode returns the order with the given human-readable code.
	FindOrderByCode(ctx context.Context, code string) (models.Order, error)
	// GetOrderByID returns the order with the given internal id. Ids that
	// are malformed for the backend yield [ErrNotFound].
	GetOrderByID(ctx context.Context, id string) (models.Order, error)
	// ListOrders returns matching orders, newest orderedAt first.
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	// DeleteAllOrders removes every order and returns how many were removed.
	DeleteAllOrders(ctx context.Context) (int64, error)
}

// FoodRepository reads the food catalog. Writes only happen through
// ImportFoods, which is used by seeding.
type FoodRepository interface {
	// ListFoods returns catalog entries matching filter.
	ListFoods(ctx context.Context, filter models.FoodFilter) ([]models.Food, error)
	// ImportFoods inserts foods and returns how many were stored.
	ImportFoods(ctx context.Context, foods []models.Food) (int, error)
}

// FoodCache stores food listings keyed by filter.
type FoodCache interface {
	// GetFoods returns the cached listing. ok is false on a cache miss.
	GetFoods(ctx context.Context, filter models.FoodFilter) (foods []models.Food, ok bool, err error)
	// SetFoods caches a listing.
	SetFoods(ctx context.Context, filter models.FoodFilter, foods []models.Food) error
	// Invalidate drops every cached listing.
	Invalidate(ctx context.Context) error
}

// HealthChecker reports whether a backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
