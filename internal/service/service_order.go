package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/eat-around/internal/logger"
	"github.com/MKhiriev/eat-around/internal/store"
	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/internal/validators"
	"github.com/MKhiriev/eat-around/models"
)

type orderService struct {
	orderRepository store.OrderRepository
	validator       validators.Validator
	now             func() time.Time
	logger          *logger.Logger
}

// NewOrderService constructs the checkout and order listing service.
// Totals are derived from items on every read.
func NewOrderService(orderRepository store.OrderRepository, validator validators.Validator, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		validator:       validator,
		now:             time.Now,
		logger:          logger,
	}
}

// Create sanitizes the submitted items and stores the order for userID
// under a fresh ORD- code. A code collision surfaces as a persistence
// failure.
func (s *orderService) Create(ctx context.Context, userID string, req models.CreateOrderRequest) (models.CreatedOrder, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.CreatedOrder{}, fmt.Errorf("%w: %w", ErrEmptyCart, err)
	}

	items := sanitizeItems(req.Items)
	if len(items) == 0 {
		return models.CreatedOrder{}, ErrItemsMissingNames
	}
	if err := checkTotals(items); err != nil {
		log.Debug().Err(err).Str("user_id", userID).Msg("order rejected")
		return models.CreatedOrder{}, err
	}

	now := s.now()
	order, err := s.orderRepository.CreateOrder(ctx, models.Order{
		Code:          utils.GenerateOrderCode(now),
		ShopLocation:  req.ShopLocation,
		CustomerNotes: req.CustomerNotes,
		OrderedAt:     now.UTC(),
		UserID:        userID,
		Items:         items,
	})
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("order creation failed")
		return models.CreatedOrder{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	log.Info().Str("order_id", order.ID).Str("code", order.Code).Int("items", len(order.Items)).Msg("order created")
	return models.CreatedOrder{ID: order.ID, Code: order.Code}, nil
}

// Get resolves idOrCode as an order code first and as an internal id
// second.
func (s *orderService) Get(ctx context.Context, idOrCode string) (models.OrderView, error) {
	log := logger.FromContext(ctx)

	idOrCode = strings.TrimSpace(idOrCode)
	if idOrCode == "" {
		return models.OrderView{}, store.ErrNotFound
	}

	order, err := s.orderRepository.FindOrderByCode(ctx, idOrCode)
	if errors.Is(err, store.ErrNotFound) {
		order, err = s.orderRepository.GetOrderByID(ctx, idOrCode)
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		return models.OrderView{}, err
	case err != nil:
		log.Err(err).Str("order", idOrCode).Msg("order lookup failed")
		return models.OrderView{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return order.View(), nil
}

// Summary lists every order in compact form, newest first.
func (s *orderService) Summary(ctx context.Context) (models.OrderSummaryList, error) {
	orders, err := s.orderRepository.ListOrders(ctx, models.OrderFilter{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("order summary failed")
		return models.OrderSummaryList{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	list := models.OrderSummaryList{Orders: make([]models.OrderSummary, 0, len(orders))}
	for _, order := range orders {
		summary := order.Summary()
		list.Orders = append(list.Orders, summary)
		list.TotalSum += summary.Total
	}
	return list, nil
}

// List returns orders matching filter, newest first, with totals.
func (s *orderService) List(ctx context.Context, filter models.OrderFilter) (models.OrderList, error) {
	orders, err := s.orderRepository.ListOrders(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", filter.UserID).Msg("order listing failed")
		return models.OrderList{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	list := models.OrderList{Orders: make([]models.OrderView, 0, len(orders))}
	for _, order := range orders {
		view := order.View()
		list.Orders = append(list.Orders, view)
		list.TotalSum += view.Total
	}
	return list, nil
}

// DeleteAll removes every order.
func (s *orderService) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := s.orderRepository.DeleteAllOrders(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("order purge failed")
		return 0, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	logger.FromContext(ctx).Warn().Int64("deleted", deleted).Msg("all orders purged")
	return deleted, nil
}
