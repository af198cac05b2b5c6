package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle status of an order
type OrderStatus int

const (
	StatusPending OrderStatus = iota
	StatusInTransit
	StatusDone
	StatusCancelled
)

// String method for OrderStatus enum
func (s OrderStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusInTransit:
		return "in_transit"
	case StatusDone:
		return "done"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ParseOrderStatus converts the API's status string to an OrderStatus.
// "delivered" is accepted as a synonym for done; earlier backends used it.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch s {
	case "pending":
		return StatusPending, nil
	case "in_transit":
		return StatusInTransit, nil
	case "done", "delivered":
		return StatusDone, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return StatusPending, fmt.Errorf("unknown order status: %q", s)
	}
}

// Terminal reports whether no further status transitions are allowed
func (s OrderStatus) Terminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// CanTransition reports whether an order may move from s to next.
// Done and cancelled are terminal; in particular an already-cancelled
// order can never be cancelled again, which is what keeps stock
// restoration exactly-once.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusInTransit || next == StatusDone || next == StatusCancelled
	case StatusInTransit:
		return next == StatusDone || next == StatusCancelled
	default:
		return false
	}
}

// Order represents a sale linking one customer and one product, with a
// quantity, a delivery charge, and a lifecycle status. Referential
// integrity is not enforced; the referenced customer or product may have
// been deleted, and views must tolerate the dangling reference.
type Order struct {
	ID            ID
	CustomerID    ID
	ProductID     ID
	Quantity      Quantity
	ProductPrice  decimal.Decimal
	DeliveryPrice decimal.Decimal
	TotalRevenue  decimal.Decimal
	Status        OrderStatus
	CreatedAt     time.Time
}

// NewOrder creates a validated pending Order, pricing the product line at
// unitPrice times quantity and the total as line plus delivery charge.
func NewOrder(id, customerID, productID ID, quantity Quantity, unitPrice, deliveryPrice decimal.Decimal, createdAt time.Time) (*Order, error) {
	if customerID == "" {
		return nil, fmt.Errorf("order customer id cannot be empty")
	}
	if productID == "" {
		return nil, fmt.Errorf("order product id cannot be empty")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("order quantity must be positive, got %d", quantity)
	}
	if deliveryPrice.IsNegative() {
		return nil, fmt.Errorf("delivery price cannot be negative, got %s", deliveryPrice)
	}

	productPrice := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	return &Order{
		ID:            id,
		CustomerID:    customerID,
		ProductID:     productID,
		Quantity:      quantity,
		ProductPrice:  productPrice,
		DeliveryPrice: deliveryPrice,
		TotalRevenue:  productPrice.Add(deliveryPrice),
		Status:        StatusPending,
		CreatedAt:     createdAt,
	}, nil
}

// Reprice recomputes the order for a new quantity and delivery charge.
// The product line scales proportionally from the original price
// (productPrice / oldQuantity * newQuantity), so a unit-price change on
// the product after the sale does not rewrite history.
func (o *Order) Reprice(newQuantity Quantity, newDeliveryPrice decimal.Decimal) error {
	if newQuantity <= 0 {
		return fmt.Errorf("order quantity must be positive, got %d", newQuantity)
	}
	if newDeliveryPrice.IsNegative() {
		return fmt.Errorf("delivery price cannot be negative, got %s", newDeliveryPrice)
	}

	o.ProductPrice = o.ProductPrice.
		Div(decimal.NewFromInt(int64(o.Quantity))).
		Mul(decimal.NewFromInt(int64(newQuantity)))
	o.Quantity = newQuantity
	o.DeliveryPrice = newDeliveryPrice
	o.TotalRevenue = o.ProductPrice.Add(newDeliveryPrice)
	return nil
}
