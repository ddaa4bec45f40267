package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

func (s *Store) CreateProduct(ctx context.Context, name string, price float64, stock int) (Product, error) {
	p := Product{
		ID:    uuid.NewString(),
		Name:  name,
		Price: price,
		Stock: stock,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO products (id, name, price, stock) VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, p.Price, p.Stock)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (Product, error) {
	var p Product
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, price, stock FROM products WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Stock)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *Store) ListProducts(ctx context.Context, limit int) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, price, stock FROM products ORDER BY name LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// InStock reports whether the product has at least one unit available.
// It satisfies checkout.StockChecker.
func (s *Store) InStock(ctx context.Context, productID string) (bool, error) {
	p, err := s.GetProduct(ctx, productID)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.Stock > 0, nil
}
