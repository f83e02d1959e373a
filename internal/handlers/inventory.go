package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/takakun00-maker/op-inventory-app/internal/models"
	"github.com/takakun00-maker/op-inventory-app/internal/service"
	"github.com/takakun00-maker/op-inventory-app/internal/store"
)

type InventoryHandler struct {
	Store   *store.Store
	Service *service.InventoryService
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.ListProducts()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *InventoryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Store.Summary()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.Service.AddProduct(&p); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	p, err := h.Store.GetProduct(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *InventoryHandler) GetByBarcode(w http.ResponseWriter, r *http.Request) {
	p, err := h.Store.GetProductByBarcode(r.PathValue("code"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type stockUpdateRequest struct {
	Delta int `json:"delta"`
}

// AdjustStock applies a signed stock delta: positive for deliveries,
// negative for consumption.
func (h *InventoryHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var req stockUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	p, err := h.Service.AdjustStock(id, req.Delta)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Search resolves a free-text query (scanned code or partial name) to a
// single product.
func (h *InventoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	p, err := h.Service.Lookup(query)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "no product matched")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
