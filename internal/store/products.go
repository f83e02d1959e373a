package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/takakun00-maker/op-inventory-app/internal/models"
)

const productColumns = `id, name, COALESCE(manufacturer, '') as manufacturer, COALESCE(barcode, '') as barcode, stock, COALESCE(expiry, '') as expiry, min_stock`

// CreateProduct inserts a new product and fills in its generated id.
// An empty barcode is stored as NULL so products without barcodes do not
// collide on the unique constraint.
func (s *Store) CreateProduct(p *models.Product) error {
	query := `
		INSERT INTO products (name, manufacturer, barcode, stock, expiry, min_stock)
		VALUES (?, ?, NULLIF(?, ''), ?, NULLIF(?, ''), ?)
	`
	res, err := s.DB.Exec(query, p.Name, p.Manufacturer, p.Barcode, p.Stock, p.Expiry, p.MinStock)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateBarcode
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = int(id)
	p.LowStock = p.Stock <= p.MinStock
	return nil
}

// ListProducts returns the full inventory in insertion order.
func (s *Store) ListProducts() ([]models.Product, error) {
	rows, err := s.DB.Query(`SELECT ` + productColumns + ` FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// GetProduct returns nil without error when the id does not exist.
func (s *Store) GetProduct(id int) (*models.Product, error) {
	row := s.DB.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	return productOrNil(scanProduct(row))
}

// GetProductByBarcode does an exact, case-sensitive match. Barcodes are
// opaque identifiers; there is no normalisation.
func (s *Store) GetProductByBarcode(barcode string) (*models.Product, error) {
	row := s.DB.QueryRow(`SELECT `+productColumns+` FROM products WHERE barcode = ?`, barcode)
	return productOrNil(scanProduct(row))
}

// AdjustStock applies a delta to a product's stock in a single statement,
// so concurrent adjustments cannot lose updates, and returns the updated
// row. Returns ErrProductNotFound when the id does not exist.
func (s *Store) AdjustStock(id, delta int) (*models.Product, error) {
	res, err := s.DB.Exec(`UPDATE products SET stock = stock + ? WHERE id = ?`, delta, id)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrProductNotFound
	}
	return s.GetProduct(id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Manufacturer, &p.Barcode, &p.Stock, &p.Expiry, &p.MinStock); err != nil {
		return nil, err
	}
	p.LowStock = p.Stock <= p.MinStock
	return &p, nil
}

func productOrNil(p *models.Product, err error) (*models.Product, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}
