package entities

import "fmt"

// Customer represents a buyer referenced by orders. Customers are created
// and deleted by direct user action only; order operations never mutate them.
type Customer struct {
	ID      ID
	Name    string
	Phone   string
	Email   string
	Address string
}

// NewCustomer creates a validated Customer
func NewCustomer(id ID, name, phone, email, address string) (*Customer, error) {
	if name == "" {
		return nil, fmt.Errorf("customer name cannot be empty")
	}

	return &Customer{
		ID:      id,
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
	}, nil
}
