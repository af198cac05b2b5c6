package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestOrder_Validation(t *testing.T) {
	unitPrice := decimal.NewFromInt(10)
	delivery := decimal.NewFromInt(2)
	now := time.Now()

	order, err := NewOrder("o1", "c1", "p1", 3, unitPrice, delivery, now)
	if err != nil {
		t.Fatalf("Expected valid order creation to succeed: %v", err)
	}
	if !order.ProductPrice.Equal(decimal.NewFromInt(30)) {
		t.Errorf("Expected product price 30, got %s", order.ProductPrice)
	}
	if !order.TotalRevenue.Equal(decimal.NewFromInt(32)) {
		t.Errorf("Expected total revenue 32, got %s", order.TotalRevenue)
	}
	if order.Status != StatusPending {
		t.Errorf("Expected new order to be pending, got %s", order.Status)
	}

	testCases := []struct {
		name        string
		customerID  ID
		productID   ID
		quantity    Quantity
		delivery    decimal.Decimal
		expectError string
	}{
		{"empty customer", "", "p1", 1, delivery, "order customer id cannot be empty"},
		{"empty product", "c1", "", 1, delivery, "order product id cannot be empty"},
		{"zero quantity", "c1", "p1", 0, delivery, "order quantity must be positive, got 0"},
		{"negative quantity", "c1", "p1", -2, delivery, "order quantity must be positive, got -2"},
		{"negative delivery", "c1", "p1", 1, decimal.NewFromInt(-3), "delivery price cannot be negative, got -3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOrder("", tc.customerID, tc.productID, tc.quantity, unitPrice, tc.delivery, now)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestOrderStatus_Transitions(t *testing.T) {
	testCases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusInTransit, true},
		{StatusPending, StatusDone, true},
		{StatusPending, StatusCancelled, true},
		{StatusInTransit, StatusDone, true},
		{StatusInTransit, StatusCancelled, true},
		{StatusInTransit, StatusPending, false},
		{StatusDone, StatusCancelled, false},
		{StatusDone, StatusPending, false},
		{StatusCancelled, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tc := range testCases {
		if got := tc.from.CanTransition(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: expected allowed=%v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}

	if !StatusDone.Terminal() || !StatusCancelled.Terminal() {
		t.Error("Expected done and cancelled to be terminal")
	}
	if StatusPending.Terminal() || StatusInTransit.Terminal() {
		t.Error("Expected pending and in_transit not to be terminal")
	}
}

func TestParseOrderStatus(t *testing.T) {
	testCases := []struct {
		raw  string
		want OrderStatus
	}{
		{"pending", StatusPending},
		{"in_transit", StatusInTransit},
		{"done", StatusDone},
		{"delivered", StatusDone},
		{"cancelled", StatusCancelled},
	}
	for _, tc := range testCases {
		got, err := ParseOrderStatus(tc.raw)
		if err != nil {
			t.Errorf("ParseOrderStatus(%q) returned error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Errorf("ParseOrderStatus(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}

	if _, err := ParseOrderStatus("shipped"); err == nil {
		t.Error("Expected error for unknown status string")
	}
}

func TestOrder_Reprice(t *testing.T) {
	order, err := NewOrder("o1", "c1", "p1", 3, decimal.NewFromInt(10), decimal.NewFromInt(2), time.Now())
	if err != nil {
		t.Fatalf("Failed to create order: %v", err)
	}

	// Product line scales proportionally: 30 / 3 * 2 = 20
	if err := order.Reprice(2, decimal.NewFromInt(5)); err != nil {
		t.Fatalf("Expected reprice to succeed: %v", err)
	}
	if order.Quantity != 2 {
		t.Errorf("Expected quantity 2, got %d", order.Quantity)
	}
	if !order.ProductPrice.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Expected product price 20, got %s", order.ProductPrice)
	}
	if !order.TotalRevenue.Equal(decimal.NewFromInt(25)) {
		t.Errorf("Expected total revenue 25, got %s", order.TotalRevenue)
	}

	if err := order.Reprice(0, decimal.Zero); err == nil {
		t.Error("Expected error for zero quantity")
	}
	if err := order.Reprice(1, decimal.NewFromInt(-1)); err == nil {
		t.Error("Expected error for negative delivery price")
	}
}
