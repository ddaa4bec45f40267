// Package schema declares the request payloads accepted by both server
// variants, with validation rules attached as struct tags.
package schema

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks a payload against its struct tags.
func Validate(v any) error {
	return validate.Struct(v)
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateProductRequest struct {
	Name  string  `json:"name" validate:"required,min=1,max=200"`
	Price float64 `json:"price" validate:"required,gt=0"`
	Stock int     `json:"stock" validate:"gte=0"`
}

type CreateOrderRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid4"`
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type CreatePaymentRequest struct {
	OrderID string  `json:"order_id" validate:"required,uuid4"`
	Method  string  `json:"method" validate:"required"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
}

type CheckoutRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	ZipCode   string  `json:"zip_code" validate:"required,min=5,max=10"`
	Subtotal  float64 `json:"subtotal" validate:"required,gt=0"`
}
