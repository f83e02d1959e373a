package models

import (
	"time"
)

type Product struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Barcode      string `json:"barcode"` // empty = no barcode assigned
	Stock        int    `json:"stock"`
	Expiry       string `json:"expiry"` // "YYYY-MM-DD", empty = no expiry
	MinStock     int    `json:"min_stock"`
	LowStock     bool   `json:"low_stock"` // derived: stock <= min_stock
}

// Order statuses. Orders are never deleted; clearing the pending list
// moves every pending row to "ordered".
const (
	OrderStatusPending = "pending"
	OrderStatusOrdered = "ordered"
)

type Order struct {
	ID        int       `json:"id"`
	ProductID int       `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderView is a pending order joined with its product for display.
type OrderView struct {
	ID           int       `json:"id"`
	ProductID    int       `json:"product_id"`
	Name         string    `json:"name"`
	Manufacturer string    `json:"manufacturer"`
	Quantity     int       `json:"quantity"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
