package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/takakun00-maker/op-inventory-app/internal/models"
	"github.com/takakun00-maker/op-inventory-app/internal/service"
	"github.com/takakun00-maker/op-inventory-app/internal/store"
)

// newTestAPI wires the full route table over a seeded in-memory database,
// with no scanner decoder so scan endpoints exercise the degraded mode.
func newTestAPI(t *testing.T) *http.ServeMux {
	t.Helper()
	s, err := store.NewStore(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	s.DB.SetMaxOpenConns(1)
	t.Cleanup(func() { s.DB.Close() })
	if err := s.InitSchema(); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	svc := service.NewInventoryService(s)
	return NewMux(
		&InventoryHandler{Store: s, Service: svc},
		&OrderHandler{Store: s, Service: svc},
		&ScanHandler{Decoder: nil, Service: svc},
	)
}

func doRequest(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestHealthReportsDegradedScanner(t *testing.T) {
	mux := newTestAPI(t)

	rec := doRequest(t, mux, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody[map[string]any](t, rec)
	if body["scanner_available"] != false {
		t.Fatalf("expected scanner_available=false, got %v", body["scanner_available"])
	}
}

func TestInventoryListWithLowStockFlags(t *testing.T) {
	mux := newTestAPI(t)

	rec := doRequest(t, mux, http.MethodGet, "/api/inventory", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	products := decodeBody[[]models.Product](t, rec)
	if len(products) != 5 {
		t.Fatalf("expected 5 seeded products, got %d", len(products))
	}

	flags := map[string]bool{}
	for _, p := range products {
		flags[p.Barcode] = p.LowStock
	}
	if flags["4902470036647"] {
		t.Error("blade (100/20) must not be low stock")
	}
	if !flags["888888"] {
		t.Error("stapler (2/5) must be low stock")
	}
	if !flags["999999"] {
		t.Error("zero stock product must be low stock")
	}
}

func TestGetProductByBarcodeEndpoint(t *testing.T) {
	mux := newTestAPI(t)

	rec := doRequest(t, mux, http.MethodGet, "/api/products/barcode/888888", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	p := decodeBody[models.Product](t, rec)
	if p.Barcode != "888888" {
		t.Fatalf("unexpected product: %+v", p)
	}

	rec = doRequest(t, mux, http.MethodGet, "/api/products/barcode/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestStockUpdateEndpoint(t *testing.T) {
	mux := newTestAPI(t)

	rec := doRequest(t, mux, http.MethodGet, "/api/products/barcode/888888", nil)
	before := decodeBody[models.Product](t, rec)

	rec = doRequest(t, mux, http.MethodPost, "/api/products/"+strconv.Itoa(before.ID)+"/stock", map[string]int{"delta": 5})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	after := decodeBody[models.Product](t, rec)
	if after.Stock != before.Stock+5 {
		t.Fatalf("expected stock %d, got %d", before.Stock+5, after.Stock)
	}

	rec = doRequest(t, mux, http.MethodPost, "/api/products/9999/stock", map[string]int{"delta": 1})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", rec.Code)
	}
}

func TestCreateProductConflictOnDuplicateBarcode(t *testing.T) {
	mux := newTestAPI(t)

	rec := doRequest(t, mux, http.MethodPost, "/api/products", models.Product{Name: "Copycat", Barcode: "888888"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, mux, http.MethodPost, "/api/products", models.Product{Name: "Forceps", Barcode: "777777"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	p := decodeBody[models.Product](t, rec)
	if p.ID == 0 || p.MinStock != 5 {
		t.Fatalf("expected generated id and default threshold, got %+v", p)
	}
}

func TestSearchEndpoint(t *testing.T) {
	mux := newTestAPI(t)

	rec := doRequest(t, mux, http.MethodGet, "/api/search?q=888888", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("barcode search: expected 200, got %d", rec.Code)
	}
	p := decodeBody[models.Product](t, rec)
	if p.Barcode != "888888" {
		t.Fatalf("unexpected search hit: %+v", p)
	}

	rec = doRequest(t, mux, http.MethodGet, "/api/search?q="+url.QueryEscape("ナイロン"), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("name search: expected 200, got %d", rec.Code)
	}

	rec = doRequest(t, mux, http.MethodGet, "/api/search?q=doesnotexist", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec = doRequest(t, mux, http.MethodGet, "/api/search", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing query, got %d", rec.Code)
	}
}

func TestOrderEndpoints(t *testing.T) {
	mux := newTestAPI(t)

	rec := doRequest(t, mux, http.MethodPost, "/api/orders", map[string]int{"product_id": 1, "quantity": 0})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("zero quantity: expected 400, got %d", rec.Code)
	}

	rec = doRequest(t, mux, http.MethodPost, "/api/orders", map[string]int{"product_id": 9999, "quantity": 1})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown product: expected 404, got %d", rec.Code)
	}

	rec = doRequest(t, mux, http.MethodPost, "/api/orders", map[string]int{"product_id": 1, "quantity": 3})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, mux, http.MethodGet, "/api/orders", nil)
	orders := decodeBody[[]models.OrderView](t, rec)
	if len(orders) != 1 || orders[0].Quantity != 3 || orders[0].Status != models.OrderStatusPending {
		t.Fatalf("unexpected pending list: %+v", orders)
	}

	rec = doRequest(t, mux, http.MethodPost, "/api/orders/clear", nil)
	cleared := decodeBody[map[string]int](t, rec)
	if cleared["cleared"] != 1 {
		t.Fatalf("expected 1 cleared, got %d", cleared["cleared"])
	}

	rec = doRequest(t, mux, http.MethodGet, "/api/orders", nil)
	orders = decodeBody[[]models.OrderView](t, rec)
	if len(orders) != 0 {
		t.Fatalf("expected empty pending list, got %+v", orders)
	}
}

func TestScanUnavailableWithoutDecoder(t *testing.T) {
	mux := newTestAPI(t)

	rec := doRequest(t, mux, http.MethodPost, "/api/scan", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 in degraded mode, got %d", rec.Code)
	}
	body := decodeBody[map[string]string](t, rec)
	if !strings.Contains(body["error"], "unavailable") {
		t.Fatalf("expected decoder-unavailable error, got %q", body["error"])
	}
}
