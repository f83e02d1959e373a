package store

import (
	"github.com/takakun00-maker/op-inventory-app/internal/models"
)

// CreateOrder adds a pending order row and returns its id. Quantity
// validation belongs to the service layer; the store only persists.
func (s *Store) CreateOrder(productID, quantity int) (int, error) {
	res, err := s.DB.Exec(`INSERT INTO orders (product_id, quantity) VALUES (?, ?)`, productID, quantity)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// PendingOrders returns the open order list joined with product details,
// newest first. The id tiebreak keeps the ordering stable for rows created
// within the same second.
func (s *Store) PendingOrders() ([]models.OrderView, error) {
	query := `
		SELECT o.id, o.product_id, p.name, COALESCE(p.manufacturer, '') as manufacturer, o.quantity, o.status, o.created_at
		FROM orders o
		JOIN products p ON o.product_id = p.id
		WHERE o.status = 'pending'
		ORDER BY o.created_at DESC, o.id DESC
	`
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.OrderView
	for rows.Next() {
		var o models.OrderView
		if err := rows.Scan(&o.ID, &o.ProductID, &o.Name, &o.Manufacturer, &o.Quantity, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// ClearPending marks every pending order as ordered and reports how many
// rows moved. Rows are never deleted; the history stays in the table.
func (s *Store) ClearPending() (int, error) {
	res, err := s.DB.Exec(`UPDATE orders SET status = 'ordered' WHERE status = 'pending'`)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}
