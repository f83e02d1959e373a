package store

import (
	"time"
)

// Seed inserts the sample catalogue. The rows cover the interesting display
// states: one below its reorder threshold, one at zero stock with a past
// expiry. InitSchema only calls this when the products table is empty.
func (s *Store) Seed() error {
	now := time.Now()
	expiry := func(days int) string {
		return now.AddDate(0, 0, days).Format("2006-01-02")
	}

	samples := []struct {
		name         string
		manufacturer string
		barcode      string
		stock        int
		expiry       string
		minStock     int
	}{
		{"No.11 メス刃", "フェザー", "4902470036647", 100, expiry(365), 20},
		{"3-0 ナイロン糸", "エチコン", "103001", 3, expiry(100), 10},
		{"4-0 バイクリル", "エチコン", "104002", 50, expiry(200), 10},
		{"ステープラー 35W", "3M", "888888", 2, expiry(50), 5},
		{"吸収性止血材", "ジョンソン", "999999", 0, "2024-12-31", 5},
	}

	for _, p := range samples {
		_, err := s.DB.Exec(
			`INSERT INTO products (name, manufacturer, barcode, stock, expiry, min_stock) VALUES (?, ?, ?, ?, ?, ?)`,
			p.name, p.manufacturer, p.barcode, p.stock, p.expiry, p.minStock,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
