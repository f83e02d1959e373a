package handlers

import (
	"net/http"
)

// NewMux wires every API route. cmd/server wraps the result in the
// middleware chain; tests hit it directly.
func NewMux(inventory *InventoryHandler, orders *OrderHandler, scanner *ScanHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":            "ok",
			"scanner_available": scanner.Available(),
		})
	})

	mux.HandleFunc("GET /api/inventory", inventory.List)
	mux.HandleFunc("GET /api/inventory/summary", inventory.Summary)
	mux.HandleFunc("POST /api/products", inventory.Create)
	mux.HandleFunc("GET /api/products/{id}", inventory.Get)
	mux.HandleFunc("GET /api/products/barcode/{code}", inventory.GetByBarcode)
	mux.HandleFunc("POST /api/products/{id}/stock", inventory.AdjustStock)
	mux.HandleFunc("GET /api/search", inventory.Search)

	mux.HandleFunc("POST /api/orders", orders.Create)
	mux.HandleFunc("GET /api/orders", orders.List)
	mux.HandleFunc("POST /api/orders/clear", orders.Clear)

	mux.HandleFunc("POST /api/scan", scanner.Scan)

	return mux
}
