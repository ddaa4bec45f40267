package checkout

import (
	"context"
	"errors"
	"fmt"
)

// ErrOutOfStock is returned when the inventory subsystem reports the
// product cannot be sold.
var ErrOutOfStock = errors.New("product out of stock")

const (
	defaultShippingRate = 15.99
	defaultTaxRate      = 0.1
)

// Summary is the cost breakdown of a completed order.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Facade drives the checkout subsystems through a single operation.
type Facade struct {
	inventory *InventoryService
	shipping  *ShippingService
	tax       *TaxService
}

// NewFacade wires the subsystems with default rates. A nil checker makes
// the inventory subsystem permissive.
func NewFacade(checker StockChecker) *Facade {
	return NewFacadeWithRates(checker, defaultShippingRate, defaultTaxRate)
}

// NewFacadeWithRates wires the subsystems with explicit shipping and tax
// rates.
func NewFacadeWithRates(checker StockChecker, shippingFlatRate, taxRate float64) *Facade {
	return &Facade{
		inventory: NewInventoryService(checker),
		shipping:  NewShippingService(shippingFlatRate),
		tax:       NewTaxService(taxRate),
	}
}

// CompleteOrder verifies stock, quotes shipping and tax, and returns the
// order cost breakdown.
func (f *Facade) CompleteOrder(ctx context.Context, productID, zipCode string, subtotal float64) (Summary, error) {
	ok, err := f.inventory.CheckStock(ctx, productID)
	if err != nil {
		return Summary{}, fmt.Errorf("check stock: %w", err)
	}
	if !ok {
		return Summary{}, ErrOutOfStock
	}

	shippingCost := f.shipping.CalculateShipping(zipCode)
	taxAmount := f.tax.CalculateTax(subtotal)

	return Summary{
		Subtotal: subtotal,
		Shipping: shippingCost,
		Tax:      taxAmount,
		Total:    subtotal + shippingCost + taxAmount,
	}, nil
}
