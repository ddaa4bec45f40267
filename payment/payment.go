// Package payment implements payment processing with interchangeable
// provider strategies.
package payment

import (
	"errors"
	"strconv"

	"github.com/google/uuid"
)

const (
	MethodCreditCard = "creditcard"
	MethodPayPal     = "paypal"
)

// ErrInvalidAmount is returned for zero or negative amounts.
var ErrInvalidAmount = errors.New("payment amount must be positive")

// UnsupportedMethodError is returned when a method identifier does not
// match any registered strategy.
type UnsupportedMethodError struct {
	Value string
}

func (e *UnsupportedMethodError) Error() string {
	return "unsupported payment method: " + strconv.Quote(e.Value)
}

// Receipt describes a completed payment.
type Receipt struct {
	TransactionID string  `json:"transaction_id"`
	Status        string  `json:"status"`
	Method        string  `json:"method"`
	Amount        float64 `json:"amount"`
}

// Strategy is a single payment algorithm.
type Strategy interface {
	Method() string
	Pay(amount float64) (Receipt, error)
}

// ParseMethod converts an external method identifier into a Strategy.
// Matching is exact; unknown methods fail with *UnsupportedMethodError.
func ParseMethod(s string) (Strategy, error) {
	switch s {
	case MethodCreditCard:
		return &CreditCard{}, nil
	case MethodPayPal:
		return &PayPal{}, nil
	}
	return nil, &UnsupportedMethodError{Value: s}
}

func newReceipt(method string, amount float64) Receipt {
	return Receipt{
		TransactionID: uuid.NewString(),
		Status:        "success",
		Method:        method,
		Amount:        amount,
	}
}

// CreditCard charges through a card gateway. The gateway integration is
// simulated.
type CreditCard struct{}

func (c *CreditCard) Method() string { return MethodCreditCard }

func (c *CreditCard) Pay(amount float64) (Receipt, error) {
	if amount <= 0 {
		return Receipt{}, ErrInvalidAmount
	}
	return newReceipt(MethodCreditCard, amount), nil
}

// PayPal charges through the PayPal API. The API integration is simulated.
type PayPal struct{}

func (p *PayPal) Method() string { return MethodPayPal }

func (p *PayPal) Pay(amount float64) (Receipt, error) {
	if amount <= 0 {
		return Receipt{}, ErrInvalidAmount
	}
	return newReceipt(MethodPayPal, amount), nil
}
