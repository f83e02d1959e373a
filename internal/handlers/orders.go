package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/takakun00-maker/op-inventory-app/internal/models"
	"github.com/takakun00-maker/op-inventory-app/internal/service"
	"github.com/takakun00-maker/op-inventory-app/internal/store"
)

type OrderHandler struct {
	Store   *store.Store
	Service *service.InventoryService
}

type createOrderRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	id, err := h.Service.PlaceOrder(req.ProductID, req.Quantity)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": id})
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Store.PendingOrders()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if orders == nil {
		orders = []models.OrderView{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cleared, err := h.Service.MarkOrdered()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"cleared": cleared})
}
