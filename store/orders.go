package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// CreateOrder reserves stock and records the order in one transaction.
// The total is computed from the current product price.
func (s *Store) CreateOrder(ctx context.Context, userID, productID string, quantity int) (Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	var price float64
	var stock int
	err = tx.QueryRowContext(ctx,
		`SELECT price, stock FROM products WHERE id = ?`, productID).
		Scan(&price, &stock)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	if stock < quantity {
		return Order{}, ErrInsufficientStock
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE products SET stock = stock - ? WHERE id = ?`, quantity, productID); err != nil {
		return Order{}, err
	}

	o := Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Total:     price * float64(quantity),
		Status:    "pending",
		CreatedAt: time.Now().UTC(),
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO orders (id, user_id, product_id, quantity, total, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.UserID, o.ProductID, o.Quantity, o.Total, o.Status, o.CreatedAt); err != nil {
		return Order{}, err
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (s *Store) GetOrder(ctx context.Context, id string) (Order, error) {
	var o Order
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, product_id, quantity, total, status, created_at FROM orders WHERE id = ?`, id).
		Scan(&o.ID, &o.UserID, &o.ProductID, &o.Quantity, &o.Total, &o.Status, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

// SetOrderStatus updates the order status, e.g. after a payment settles.
func (s *Store) SetOrderStatus(ctx context.Context, id, status string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
