// Package checkout wraps the inventory, shipping and tax subsystems
// behind a single order-completion facade.
package checkout

import "context"

// StockChecker reports whether a product can currently be sold. The store
// package satisfies this; a fixed-answer checker is used in tests.
type StockChecker interface {
	InStock(ctx context.Context, productID string) (bool, error)
}

// InventoryService answers stock questions through a StockChecker.
type InventoryService struct {
	checker StockChecker
}

func NewInventoryService(c StockChecker) *InventoryService {
	return &InventoryService{checker: c}
}

func (s *InventoryService) CheckStock(ctx context.Context, productID string) (bool, error) {
	if s.checker == nil {
		return true, nil
	}
	return s.checker.InStock(ctx, productID)
}

// ShippingService quotes shipping cost by destination zip code. Rates are
// flat while no carrier integration exists.
type ShippingService struct {
	flatRate float64
}

func NewShippingService(flatRate float64) *ShippingService {
	return &ShippingService{flatRate: flatRate}
}

func (s *ShippingService) CalculateShipping(zipCode string) float64 {
	return s.flatRate
}

// TaxService computes tax over an order subtotal.
type TaxService struct {
	rate float64
}

func NewTaxService(rate float64) *TaxService {
	return &TaxService{rate: rate}
}

func (s *TaxService) CalculateTax(subtotal float64) float64 {
	return subtotal * s.rate
}
