package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/takakun00-maker/op-inventory-app/internal/models"
	"github.com/takakun00-maker/op-inventory-app/internal/store"
)

var (
	// ErrInvalidQuantity is returned when an order is placed for less than
	// one unit.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrInvalidProduct is returned when a new product fails validation.
	ErrInvalidProduct = errors.New("invalid product")
)

const defaultMinStock = 5

type InventoryService struct {
	Store *store.Store
}

func NewInventoryService(s *store.Store) *InventoryService {
	return &InventoryService{Store: s}
}

// Lookup resolves a scanned code or typed query to a single product.
// An exact barcode match always wins; otherwise the first product whose
// name contains the query (case-insensitive) is chosen. Ambiguous name
// matches are resolved first-wins in catalogue order, a documented
// simplification rather than a ranking. Returns nil when nothing matches.
func (s *InventoryService) Lookup(query string) (*models.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	p, err := s.Store.GetProductByBarcode(query)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	products, err := s.Store.ListProducts()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(query)
	for i := range products {
		if strings.Contains(strings.ToLower(products[i].Name), needle) {
			return &products[i], nil
		}
	}
	return nil, nil
}

// AddProduct validates and inserts a new catalogue entry. A zero reorder
// threshold gets the default.
func (s *InventoryService) AddProduct(p *models.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if p.Expiry != "" {
		if _, err := time.Parse("2006-01-02", p.Expiry); err != nil {
			return fmt.Errorf("%w: expiry must be YYYY-MM-DD", ErrInvalidProduct)
		}
	}
	if p.MinStock <= 0 {
		p.MinStock = defaultMinStock
	}
	return s.Store.CreateProduct(p)
}

// AdjustStock applies a signed delta: positive for deliveries, negative
// for consumption.
func (s *InventoryService) AdjustStock(id, delta int) (*models.Product, error) {
	return s.Store.AdjustStock(id, delta)
}

// PlaceOrder puts a reorder request on the pending list and returns the
// order id. The product must exist and the quantity must be positive.
func (s *InventoryService) PlaceOrder(productID, quantity int) (int, error) {
	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}
	p, err := s.Store.GetProduct(productID)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, store.ErrProductNotFound
	}
	return s.Store.CreateOrder(productID, quantity)
}

// MarkOrdered closes out the pending list, returning how many orders
// were transitioned. Zero is a valid result.
func (s *InventoryService) MarkOrdered() (int, error) {
	return s.Store.ClearPending()
}
