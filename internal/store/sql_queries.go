package store

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/eat-around/models"
)

const (
	usersTable      = "users"
	ordersTable     = "orders"
	orderItemsTable = "order_items"
	foodsTable      = "foods"
)

var (
	userColumns = []string{
		"id", "username", "name", "email",
		"password_hash", "password",
		"book", "subject", "favourite_book", "best_subject",
		"created_at", "updated_at",
	}
	orderColumns = []string{
		"id", "code", "shop_location", "customer_notes",
		"ordered_at", "user_id", "created_at", "updated_at",
	}
	orderItemColumns = []string{"order_id", "position", "name", "quantity", "price"}
	foodColumns      = []string{"id", "name", "price", "category", "description"}
)

// nullString stores empty strings as NULL so that unique indexes only
// cover real values.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.ID, user.Username, nullString(user.Name), nullString(user.Email),
			user.PasswordHash, user.Password,
			user.Book, user.Subject,
			user.SecurityQuestions.FavouriteBook, user.SecurityQuestions.BestSubject,
			user.CreatedAt, user.UpdatedAt,
		).
		ToSql()
}

// buildFindUserQuery matches username or name against every handle and the
// email column against a non-empty email.
func buildFindUserQuery(b sq.StatementBuilderType, lookup models.UserLookup) (string, []any, error) {
	var or sq.Or
	if len(lookup.Handles) > 0 {
		or = append(or, sq.Eq{"username": lookup.Handles}, sq.Eq{"name": lookup.Handles})
	}
	if lookup.Email != "" {
		or = append(or, sq.Eq{"email": lookup.Email})
	}
	if len(or) == 0 {
		return "", nil, fmt.Errorf("%w: empty user lookup", ErrBuildingSQLQuery)
	}

	return b.Select(userColumns...).
		From(usersTable).
		Where(or).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
}

func buildGetUserByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdatePasswordQuery(b sq.StatementBuilderType, id, passwordHash string, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("password_hash", passwordHash).
		Set("password", passwordHash).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdateRecoveryAnswersQuery(b sq.StatementBuilderType, id string, answers models.SecurityQuestions, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("favourite_book", answers.FavouriteBook).
		Set("best_subject", answers.BestSubject).
		Set("book", answers.FavouriteBook).
		Set("subject", answers.BestSubject).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertOrderQuery(b sq.StatementBuilderType, order models.Order) (string, []any, error) {
	return b.Insert(ordersTable).
		Columns(orderColumns...).
		Values(
			order.ID, nullString(order.Code), order.ShopLocation, order.CustomerNotes,
			order.OrderedAt, nullString(order.UserID), order.CreatedAt, order.UpdatedAt,
		).
		ToSql()
}

func buildInsertOrderItemsQuery(b sq.StatementBuilderType, orderID string, items []models.OrderItem) (string, []any, error) {
	if len(items) == 0 {
		return "", nil, fmt.Errorf("%w: no order items", ErrBuildingSQLQuery)
	}

	insert := b.Insert(orderItemsTable).Columns(orderItemColumns...)
	for i, item := range items {
		insert = insert.Values(orderID, i, item.Name, int64(item.Quantity), item.Price)
	}
	return insert.ToSql()
}

func buildSelectOrdersQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(orderColumns...).From(ordersTable)
	if where != nil {
		query = query.Where(where)
	}
	return query.OrderBy("ordered_at DESC", "id DESC").ToSql()
}

func buildSelectOrderItemsQuery(b sq.StatementBuilderType, orderIDs []string) (string, []any, error) {
	return b.Select(orderItemColumns...).
		From(orderItemsTable).
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		ToSql()
}

func buildSelectFoodsQuery(b sq.StatementBuilderType, filter models.FoodFilter) (string, []any, error) {
	query := b.Select(foodColumns...).From(foodsTable)
	if filter.Category != "" {
		query = query.Where(sq.Eq{"category": filter.Category})
	}
	return query.OrderBy("id").ToSql()
}

func buildInsertFoodsQuery(b sq.StatementBuilderType, foods []models.Food) (string, []any, error) {
	if len(foods) == 0 {
		return "", nil, fmt.Errorf("%w: no foods", ErrBuildingSQLQuery)
	}

	insert := b.Insert(foodsTable).Columns(foodColumns...)
	for _, food := range foods {
		insert = insert.Values(food.ID, food.Name, food.Price, food.Category, food.Description)
	}
	return insert.ToSql()
}
