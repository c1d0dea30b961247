package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/models"
)

func newTestOrderRepo(t *testing.T) (*orderRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	repo := &orderRepository{
		db:     db,
		logger: logger.Nop(),
		ids:    utils.NewUUIDGenerator(),
		now:    func() time.Time { return fixedNow },
	}
	return repo, mock
}

func TestCreateOrder_InsertsOrderAndItemsInTransaction(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	order := models.Order{
		Code:  "ORD-1-ABCD",
		Items: []models.OrderItem{{Name: "Pizza", Quantity: 2, Price: 9.5}, {Name: "Cola", Quantity: 1, Price: 2}},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items (order_id,position,name,quantity,price) VALUES ($1,$2,$3,$4,$5),($6,$7,$8,$9,$10)")).
		WithArgs(sqlmock.AnyArg(), 0, "Pizza", 2, 9.5, sqlmock.AnyArg(), 1, "Cola", 1, 2.0).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	created, err := repo.CreateOrder(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated id")
	}
	if !created.OrderedAt.Equal(fixedNow) {
		t.Errorf("expected orderedAt defaulted to now, got %v", created.OrderedAt)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateOrder_ItemInsertFailureRollsBack(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.CreateOrder(context.Background(), models.Order{
		Items: []models.OrderItem{{Name: "Pizza", Quantity: 1, Price: 1}},
	})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateOrder_DuplicateCode(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnError(pgError("23505"))
	mock.ExpectRollback()

	_, err := repo.CreateOrder(context.Background(), models.Order{
		Code:  "ORD-1-AAAA",
		Items: []models.OrderItem{{Name: "Pizza", Quantity: 1, Price: 1}},
	})
	if !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestListOrders_AttachesItemsNewestFirst(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	newer := fixedNow
	older := fixedNow.Add(-time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id,code,shop_location,customer_notes,ordered_at,user_id,created_at,updated_at FROM orders ORDER BY ordered_at DESC, id DESC")).
		WillReturnRows(sqlmock.NewRows(orderColumns).
			AddRow("o-2", "ORD-2", "", "", newer, nil, newer, newer).
			AddRow("o-1", "ORD-1", "Main St", "no onions", older, "u-1", older, older))
	mock.ExpectQuery(regexp.QuoteMeta("FROM order_items WHERE order_id IN ($1,$2) ORDER BY order_id, position")).
		WithArgs("o-2", "o-1").
		WillReturnRows(sqlmock.NewRows(orderItemColumns).
			AddRow("o-1", 0, "Soup", 1, 4.0).
			AddRow("o-2", 0, "Pizza", 2, 9.5).
			AddRow("o-2", 1, "Cola", 3, 2.0))

	orders, err := repo.ListOrders(context.Background(), models.OrderFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != "o-2" || len(orders[0].Items) != 2 {
		t.Errorf("unexpected first order: %+v", orders[0])
	}
	if orders[0].Total() != 25 {
		t.Errorf("expected total 25, got %v", orders[0].Total())
	}
	if orders[1].UserID != "u-1" || orders[1].CustomerNotes != "no onions" {
		t.Errorf("unexpected second order: %+v", orders[1])
	}
}

func TestListOrders_ScopedToUser(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE user_id = $1")).
		WithArgs("u-9").
		WillReturnRows(sqlmock.NewRows(orderColumns))

	orders, err := repo.ListOrders(context.Background(), models.OrderFilter{UserID: "u-9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders == nil || len(orders) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", orders)
	}
}

func TestFindOrderByCode_NotFound(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE code = $1")).
		WithArgs("ORD-X").
		WillReturnRows(sqlmock.NewRows(orderColumns))

	_, err := repo.FindOrderByCode(context.Background(), "ORD-X")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAllOrders_ReturnsCount(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM order_items")).WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders")).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	deleted, err := repo.DeleteAllOrders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 deleted, got %d", deleted)
	}
}

func TestDeleteAllOrders_BeginError(t *testing.T) {
	repo, mock := newTestOrderRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("no conn"))

	_, err := repo.DeleteAllOrders(context.Background())
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Fatalf("expected ErrBeginningTransaction, got %v", err)
	}
}
