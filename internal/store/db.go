package store

import (
	"database/sql"
	"errors"
	"log/slog"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

var (
	// ErrProductNotFound is returned when a mutation targets a product id
	// that does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateBarcode is returned when an insert would violate the
	// unique barcode constraint.
	ErrDuplicateBarcode = errors.New("barcode already in use")
)

type Store struct {
	DB *sql.DB
}

func NewStore(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &Store{DB: db}, nil
}

// InitSchema creates the tables if they are missing and seeds sample data
// when the products table is empty. Safe to call on every startup; never
// touches existing data.
func (s *Store) InitSchema() error {
	if err := s.createTables(); err != nil {
		return err
	}

	var count int
	if err := s.DB.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		if err := s.Seed(); err != nil {
			return err
		}
		slog.Info("Seeded empty database with sample products")
	}
	return nil
}

func (s *Store) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		manufacturer TEXT,
		barcode TEXT UNIQUE,
		stock INTEGER DEFAULT 0,
		expiry TEXT,
		min_stock INTEGER DEFAULT 5
	);

	CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id INTEGER,
		quantity INTEGER,
		status TEXT DEFAULT 'pending',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (product_id) REFERENCES products (id)
	);
	`
	_, err := s.DB.Exec(query)
	if err != nil {
		slog.Error("Error creating schema", "error", err)
		return err
	}
	return nil
}
