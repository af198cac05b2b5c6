package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/entities"
)

// wireID accepts the API's identifier conventions: the value may be a JSON
// string or number, under either the "id" or the "_id" key. Everything is
// normalized to a plain string here at the boundary.
type wireID string

func (w *wireID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*w = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*w = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number, got %s", data)
	}
	*w = wireID(n.String())
	return nil
}

func normalizeID(id, mongoID wireID) entities.ID {
	if mongoID != "" {
		return entities.ID(mongoID)
	}
	return entities.ID(id)
}

type wireProduct struct {
	ID       wireID          `json:"id,omitempty"`
	MongoID  wireID          `json:"_id,omitempty"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"costPrice"`
	Quantity int64           `json:"quantity"`
}

func (w wireProduct) toEntity() (*entities.Product, error) {
	return entities.NewProduct(normalizeID(w.ID, w.MongoID), w.Name, w.Category, w.Price, w.Cost, entities.Quantity(w.Quantity))
}

func productToWire(p *entities.Product) wireProduct {
	return wireProduct{
		ID:       wireID(p.ID),
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Cost:     p.Cost,
		Quantity: int64(p.Quantity),
	}
}

type wireCustomer struct {
	ID      wireID `json:"id,omitempty"`
	MongoID wireID `json:"_id,omitempty"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

func (w wireCustomer) toEntity() (*entities.Customer, error) {
	return entities.NewCustomer(normalizeID(w.ID, w.MongoID), w.Name, w.Phone, w.Email, w.Address)
}

func customerToWire(c *entities.Customer) wireCustomer {
	return wireCustomer{
		ID:      wireID(c.ID),
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
	}
}

type wireOrder struct {
	ID            wireID          `json:"id,omitempty"`
	MongoID       wireID          `json:"_id,omitempty"`
	CustomerID    wireID          `json:"customerId"`
	ProductID     wireID          `json:"productId"`
	Quantity      int64           `json:"quantity"`
	ProductPrice  decimal.Decimal `json:"productPrice"`
	DeliveryPrice decimal.Decimal `json:"deliveryPrice"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt,omitzero"`
}

// toEntity builds the order directly rather than through NewOrder: the wire
// carries the already-computed product line, not the unit price.
func (w wireOrder) toEntity() (*entities.Order, error) {
	status, err := entities.ParseOrderStatus(w.Status)
	if err != nil {
		return nil, err
	}
	if w.Quantity <= 0 {
		return nil, fmt.Errorf("order quantity must be positive, got %d", w.Quantity)
	}
	return &entities.Order{
		ID:            normalizeID(w.ID, w.MongoID),
		CustomerID:    entities.ID(w.CustomerID),
		ProductID:     entities.ID(w.ProductID),
		Quantity:      entities.Quantity(w.Quantity),
		ProductPrice:  w.ProductPrice,
		DeliveryPrice: w.DeliveryPrice,
		TotalRevenue:  w.TotalRevenue,
		Status:        status,
		CreatedAt:     w.CreatedAt,
	}, nil
}

func orderToWire(o *entities.Order) wireOrder {
	return wireOrder{
		ID:            wireID(o.ID),
		CustomerID:    wireID(o.CustomerID),
		ProductID:     wireID(o.ProductID),
		Quantity:      int64(o.Quantity),
		ProductPrice:  o.ProductPrice,
		DeliveryPrice: o.DeliveryPrice,
		TotalRevenue:  o.TotalRevenue,
		Status:        o.Status.String(),
		CreatedAt:     o.CreatedAt,
	}
}
