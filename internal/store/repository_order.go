package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/models"
)

// orderRepository is the SQL implementation of [OrderRepository]. Orders
// live in "orders" and their items in "order_items", keyed by order id and
// position.
type orderRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
	now    func() time.Time
}

// NewOrderRepository constructs a SQL [OrderRepository].
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
	}
}

// CreateOrder inserts the order row and its items in one transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	now := r.now().UTC()
	order.ID = r.ids.Generate()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.OrderedAt.IsZero() {
		order.OrderedAt = now
	}

	orderQuery, orderArgs, err := buildInsertOrderQuery(r.db.builder, order)
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	itemsQuery, itemsArgs, err := buildInsertOrderItemsQuery(r.db.builder, order.ID, order.Items)
	if err != nil {
		return models.Order{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error beginning transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer r.db.rollback(ctx, tx)

	if _, err = tx.ExecContext(ctx, orderQuery, orderArgs...); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error inserting order")
		return models.Order{}, r.db.writeError(err)
	}
	if _, err = tx.ExecContext(ctx, itemsQuery, itemsArgs...); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error inserting order items")
		return models.Order{}, r.db.writeError(err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error committing transaction")
		return models.Order{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return order, nil
}

// FindOrderByCode returns the order with the given code.
func (r *orderRepository) FindOrderByCode(ctx context.Context, code string) (models.Order, error) {
	return r.getOne(ctx, sq.Eq{"code": code})
}

// GetOrderByID returns the order with the given id.
func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (models.Order, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *orderRepository) getOne(ctx context.Context, where sq.Sqlizer) (models.Order, error) {
	orders, err := r.selectOrders(ctx, where)
	if err != nil {
		return models.Order{}, err
	}
	if len(orders) == 0 {
		return models.Order{}, ErrNotFound
	}
	return orders[0], nil
}

// ListOrders returns orders newest first, scoped to a user when the filter
// names one.
func (r *orderRepository) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	var where sq.Sqlizer
	if filter.UserID != "" {
		where = sq.Eq{"user_id": filter.UserID}
	}
	return r.selectOrders(ctx, where)
}

func (r *orderRepository) selectOrders(ctx context.Context, where sq.Sqlizer) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectOrdersQuery(r.db.builder, where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.selectOrders").Msg("error querying orders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	index := make(map[string]int)
	for rows.Next() {
		var order models.Order
		var code, userID sql.NullString
		if err = rows.Scan(
			&order.ID, &code, &order.ShopLocation, &order.CustomerNotes,
			&order.OrderedAt, &userID, &order.CreatedAt, &order.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		order.Code = code.String
		order.UserID = userID.String
		order.Items = []models.OrderItem{}

		index[order.ID] = len(orders)
		orders = append(orders, order)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = r.attachItems(ctx, orders, index); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) attachItems(ctx context.Context, orders []models.Order, index map[string]int) error {
	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}

	query, args, err := buildSelectOrderItemsQuery(r.db.builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*orderRepository.attachItems").Msg("error querying order items")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var position int
		var item models.OrderItem
		if err = rows.Scan(&orderID, &position, &item.Name, &item.Quantity, &item.Price); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

// DeleteAllOrders removes every order and its items.
func (r *orderRepository) DeleteAllOrders(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	itemsQuery, _, err := r.db.builder.Delete(orderItemsTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	ordersQuery, _, err := r.db.builder.Delete(ordersTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer r.db.rollback(ctx, tx)

	if _, err = tx.ExecContext(ctx, itemsQuery); err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteAllOrders").Msg("error deleting order items")
		return 0, r.db.writeError(err)
	}

	result, err := tx.ExecContext(ctx, ordersQuery)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.DeleteAllOrders").Msg("error deleting orders")
		return 0, r.db.writeError(err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().Int64("deleted", deleted).Msg("all orders deleted")
	return deleted, nil
}
