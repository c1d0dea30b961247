package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/models"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, createOrderErrors)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	created, err := h.services.OrderService.Create(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, createOrderErrors)
		return
	}

	utils.WriteJSON(w, models.CreateOrderResponse{
		Success: true,
		OrderID: created.ID,
		Code:    created.Code,
	}, http.StatusCreated)
}

// getOrder accepts either the public order code or the internal id.
func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.services.OrderService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, getOrderErrors)
		return
	}

	utils.WriteJSON(w, models.OrderResponse{Success: true, Order: order}, http.StatusOK)
}

func (h *Handler) ordersSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.services.OrderService.Summary(r.Context())
	if err != nil {
		writeError(w, r, err, summaryErrors)
		return
	}

	utils.WriteJSON(w, models.OrderSummaryResponse{
		Success:  true,
		Orders:   summary.Orders,
		TotalSum: summary.TotalSum,
	}, http.StatusOK)
}

// myOrders lists the caller's orders when an auth token came with the
// request and every order otherwise.
func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request) {
	var filter models.OrderFilter
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		filter.UserID = userID
	}

	list, err := h.services.OrderService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, myOrdersErrors)
		return
	}

	utils.WriteJSON(w, models.OrdersResponse{
		Success:  true,
		Orders:   list.Orders,
		TotalSum: list.TotalSum,
	}, http.StatusOK)
}

func (h *Handler) deleteOrders(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.services.OrderService.DeleteAll(r.Context())
	if err != nil {
		writeError(w, r, err, deleteOrdersErrors)
		return
	}

	utils.WriteJSON(w, models.DeletedResponse{Success: true, Deleted: deleted}, http.StatusOK)
}
