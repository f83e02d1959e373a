package store

type StockSummary struct {
	Products      int `json:"products"`
	LowStock      int `json:"low_stock"`
	OutOfStock    int `json:"out_of_stock"`
	PendingOrders int `json:"pending_orders"`
}

// Summary collects the counts an operator wants at a glance.
func (s *Store) Summary() (*StockSummary, error) {
	summary := &StockSummary{}

	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&summary.Products); err != nil {
		return nil, err
	}
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM products WHERE stock <= min_stock`).Scan(&summary.LowStock); err != nil {
		return nil, err
	}
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM products WHERE stock = 0`).Scan(&summary.OutOfStock); err != nil {
		return nil, err
	}
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM orders WHERE status = 'pending'`).Scan(&summary.PendingOrders); err != nil {
		return nil, err
	}

	return summary, nil
}
