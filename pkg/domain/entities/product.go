package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product represents a stocked item with its pricing and quantity on hand
type Product struct {
	ID       ID
	Name     string
	Category string
	Price    decimal.Decimal
	Cost     decimal.Decimal
	Quantity Quantity
}

// NewProduct creates a validated Product. The ID may be empty for records
// that have not yet been persisted; the server assigns one on create.
func NewProduct(id ID, name, category string, price, cost decimal.Decimal, quantity Quantity) (*Product, error) {
	if name == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("product price cannot be negative, got %s", price)
	}
	if cost.IsNegative() {
		return nil, fmt.Errorf("product cost cannot be negative, got %s", cost)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("product quantity cannot be negative, got %d", quantity)
	}

	return &Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    price,
		Cost:     cost,
		Quantity: quantity,
	}, nil
}

// AddStock increases the quantity on hand
func (p *Product) AddStock(qty Quantity) {
	p.Quantity += qty
}

// RemoveStock decreases the quantity on hand, clamping at zero so the
// quantity is never observed negative downstream.
func (p *Product) RemoveStock(qty Quantity) {
	p.Quantity -= qty
	if p.Quantity < 0 {
		p.Quantity = 0
	}
}

// AdjustStock applies a signed stock delta; positive deltas return stock,
// negative deltas consume it. Clamps at zero.
func (p *Product) AdjustStock(delta Quantity) {
	if delta >= 0 {
		p.AddStock(delta)
		return
	}
	p.RemoveStock(-delta)
}

// LowStock reports whether the quantity on hand is below the given threshold
func (p *Product) LowStock(threshold Quantity) bool {
	return p.Quantity < threshold
}
