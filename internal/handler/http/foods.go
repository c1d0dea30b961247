package http

import (
	"net/http"

	"github.com/MKhiriev/eat-around/internal/utils"
	"github.com/MKhiriev/eat-around/models"
)

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	filter := models.FoodFilter{Category: r.URL.Query().Get("category")}

	foods, err := h.services.MenuService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, foodsErrors)
		return
	}
	if foods == nil {
		foods = []models.Food{}
	}

	utils.WriteJSON(w, models.FoodsResponse{Success: true, Foods: foods}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{OK: true}, http.StatusOK)
}
