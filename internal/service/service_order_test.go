package service

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/eat-around/internal/store"
	"github.com/MKhiriev/eat-around/models"
)

var orderCodePattern = regexp.MustCompile(`^ORD-\d+-[0-9A-Z]{4}$`)

func decodeOrderRequest(t *testing.T, body string) models.CreateOrderRequest {
	t.Helper()
	var req models.CreateOrderRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestOrderService_Create_SanitizesItems(t *testing.T) {
	svc, orders := newTestOrderSvc(t)
	ctx := context.Background()

	req := decodeOrderRequest(t, `{
		"items": [
			{"name": "  Pizza ", "quantity": "2", "price": "9.5"},
			{"name": "Cola", "quantity": 0, "price": "abc"},
			{"name": "", "quantity": 3, "price": 1},
			{"name": "Soup", "quantity": 2.7, "price": 4}
		],
		"shopLocation": "Main St",
		"customerNotes": "ring twice"
	}`)

	orders.EXPECT().CreateOrder(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, o models.Order) (models.Order, error) {
			require.Len(t, o.Items, 3)
			assert.Equal(t, models.OrderItem{Name: "Pizza", Quantity: 2, Price: 9.5}, o.Items[0])
			assert.Equal(t, models.OrderItem{Name: "Cola", Quantity: 1, Price: 0}, o.Items[1])
			assert.Equal(t, models.OrderItem{Name: "Soup", Quantity: 2, Price: 4}, o.Items[2])
			assert.Equal(t, "u-1", o.UserID)
			assert.Equal(t, "Main St", o.ShopLocation)
			assert.Regexp(t, orderCodePattern, o.Code)
			assert.True(t, o.OrderedAt.Equal(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)))
			o.ID = "o-1"
			return o, nil
		},
	)

	created, err := svc.Create(ctx, "u-1", req)
	require.NoError(t, err)
	assert.Equal(t, "o-1", created.ID)
	assert.Regexp(t, orderCodePattern, created.Code)
}

func TestOrderService_Create_EmptyCart(t *testing.T) {
	svc, _ := newTestOrderSvc(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "u-1", models.CreateOrderRequest{})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.NotErrorIs(t, err, ErrItemsMissingNames)

	_, err = svc.Create(ctx, "u-1", decodeOrderRequest(t, `{"items":[{"name":"  "},{"quantity":2}]}`))
	assert.ErrorIs(t, err, ErrItemsMissingNames)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestOrderService_Create_PersistenceFailure(t *testing.T) {
	svc, orders := newTestOrderSvc(t)
	ctx := context.Background()

	orders.EXPECT().CreateOrder(ctx, gomock.Any()).Return(models.Order{}, store.ErrAlreadyExists)

	_, err := svc.Create(ctx, "u-1", decodeOrderRequest(t, `{"items":[{"name":"Tea"}]}`))
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestOrderService_Get_CodeThenID(t *testing.T) {
	svc, orders := newTestOrderSvc(t)
	ctx := context.Background()

	order := models.Order{ID: "o-1", Code: "ORD-1-AAAA", Items: []models.OrderItem{{Name: "Tea", Quantity: 3, Price: 1.5}}}

	gomock.InOrder(
		orders.EXPECT().FindOrderByCode(ctx, "o-1").Return(models.Order{}, store.ErrNotFound),
		orders.EXPECT().GetOrderByID(ctx, "o-1").Return(order, nil),
	)

	view, err := svc.Get(ctx, "o-1")
	require.NoError(t, err)
	assert.Equal(t, 4.5, view.Total)
}

func TestOrderService_Get_ByCode(t *testing.T) {
	svc, orders := newTestOrderSvc(t)
	ctx := context.Background()

	orders.EXPECT().FindOrderByCode(ctx, "ORD-1-AAAA").Return(models.Order{ID: "o-1", Code: "ORD-1-AAAA"}, nil)

	view, err := svc.Get(ctx, "ORD-1-AAAA")
	require.NoError(t, err)
	assert.Equal(t, "o-1", view.ID)
	assert.NotNil(t, view.Items)
}

func TestOrderService_Get_NotFound(t *testing.T) {
	svc, orders := newTestOrderSvc(t)
	ctx := context.Background()

	orders.EXPECT().FindOrderByCode(ctx, "nope").Return(models.Order{}, store.ErrNotFound)
	orders.EXPECT().GetOrderByID(ctx, "nope").Return(models.Order{}, store.ErrNotFound)

	_, err := svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestOrderService_SummaryAndList(t *testing.T) {
	svc, orders := newTestOrderSvc(t)
	ctx := context.Background()

	stored := []models.Order{
		{ID: "o-2", Code: "ORD-2", Items: []models.OrderItem{{Name: "Pizza", Quantity: 2, Price: 9.5}}},
		{ID: "o-1", Code: "ORD-1", Items: []models.OrderItem{{Name: "Tea", Quantity: 1, Price: 2}}},
	}
	orders.EXPECT().ListOrders(ctx, models.OrderFilter{}).Return(stored, nil)
	orders.EXPECT().ListOrders(ctx, models.OrderFilter{UserID: "u-1"}).Return(stored[1:], nil)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Orders, 2)
	assert.Equal(t, 19.0, summary.Orders[0].Total)
	assert.Equal(t, 21.0, summary.TotalSum)

	mine, err := svc.List(ctx, models.OrderFilter{UserID: "u-1"})
	require.NoError(t, err)
	require.Len(t, mine.Orders, 1)
	assert.Equal(t, 2.0, mine.TotalSum)
}

func TestOrderService_List_Empty(t *testing.T) {
	svc, orders := newTestOrderSvc(t)
	ctx := context.Background()

	orders.EXPECT().ListOrders(ctx, gomock.Any()).Return([]models.Order{}, nil)

	list, err := svc.List(ctx, models.OrderFilter{})
	require.NoError(t, err)
	assert.NotNil(t, list.Orders)
	assert.Zero(t, list.TotalSum)
}

func TestOrderService_DeleteAll(t *testing.T) {
	svc, orders := newTestOrderSvc(t)
	ctx := context.Background()

	orders.EXPECT().DeleteAllOrders(ctx).Return(int64(5), nil)
	orders.EXPECT().DeleteAllOrders(ctx).Return(int64(0), store.ErrExecutingStatement)

	deleted, err := svc.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, deleted)

	_, err = svc.DeleteAll(ctx)
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestSanitizeQuantity(t *testing.T) {
	tests := []struct {
		in   models.FlexNumber
		want float64
	}{
		{models.NewFlexNumber(3), 3},
		{models.NewFlexNumber(1.9), 1},
		{models.NewFlexNumber(0), 1},
		{models.NewFlexNumber(-4), 1},
		{models.NewFlexNumber(0.5), 1},
		{models.FlexNumber{}, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeQuantity(tt.in), "quantity %+v", tt.in)
	}
}

func TestOrderService_Create_RejectsOutOfRangeTotals(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"subtotal overflows", `{"items":[{"name":"Big","quantity":2,"price":1e308}]}`},
		{"subtotal above bound", `{"items":[{"name":"Gold","quantity":1,"price":2e12}]}`},
		{"total above bound", `{"items":[{"name":"A","quantity":1,"price":9e11},{"name":"B","quantity":1,"price":9e11}]}`},
		{"negative total", `{"items":[{"name":"Refund","quantity":3,"price":-1e12}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestOrderSvc(t)

			_, err := svc.Create(context.Background(), "u-1", decodeOrderRequest(t, tt.body))
			assert.ErrorIs(t, err, ErrOrderTotalOutOfRange)
			assert.NotErrorIs(t, err, ErrEmptyCart)
		})
	}
}

func TestOrderService_Create_AcceptsTotalAtBound(t *testing.T) {
	svc, orders := newTestOrderSvc(t)
	ctx := context.Background()

	orders.EXPECT().CreateOrder(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, o models.Order) (models.Order, error) {
			assert.Equal(t, maxOrderTotal, o.Total())
			o.ID = "o-1"
			return o, nil
		},
	)

	_, err := svc.Create(ctx, "u-1", decodeOrderRequest(t, `{"items":[{"name":"Fleet","quantity":1,"price":1e12}]}`))
	require.NoError(t, err)
}
