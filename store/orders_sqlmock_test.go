package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateOrder is the only multi-statement write; pin its transaction shape
// against a mock so refactors keep the reserve-then-insert order.
func TestCreateOrder_TransactionShape(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT price, stock FROM products`).
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows([]string{"price", "stock"}).AddRow(10.0, 5))
	mock.ExpectExec(`UPDATE products SET stock = stock - \?`).
		WithArgs(2, "p-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO orders`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s := NewWithDB(db)
	o, err := s.CreateOrder(context.Background(), "u-1", "p-1", 2)
	require.NoError(t, err)
	assert.Equal(t, 20.0, o.Total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_InsufficientStockRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT price, stock FROM products`).
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows([]string{"price", "stock"}).AddRow(10.0, 1))
	mock.ExpectRollback()

	s := NewWithDB(db)
	_, err = s.CreateOrder(context.Background(), "u-1", "p-1", 2)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	assert.NoError(t, mock.ExpectationsWereMet())
}
