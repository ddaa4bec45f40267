package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

func (s *Store) CreatePayment(ctx context.Context, orderID, method string, amount float64, transactionID string) (Payment, error) {
	p := Payment{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		Method:        method,
		Amount:        amount,
		TransactionID: transactionID,
		Status:        "success",
		CreatedAt:     time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (id, order_id, method, amount, transaction_id, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.OrderID, p.Method, p.Amount, p.TransactionID, p.Status, p.CreatedAt)
	if err != nil {
		return Payment{}, err
	}
	return p, nil
}

func (s *Store) GetPayment(ctx context.Context, id string) (Payment, error) {
	var p Payment
	err := s.db.QueryRowContext(ctx,
		`SELECT id, order_id, method, amount, transaction_id, status, created_at FROM payments WHERE id = ?`, id).
		Scan(&p.ID, &p.OrderID, &p.Method, &p.Amount, &p.TransactionID, &p.Status, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Payment{}, ErrNotFound
	}
	if err != nil {
		return Payment{}, err
	}
	return p, nil
}
