package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/entities"
	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/repositories"
)

type productGateway struct{ c *Client }

// Verify interface compliance
var _ repositories.ProductGateway = (*productGateway)(nil)

func (g *productGateway) List(ctx context.Context) ([]*entities.Product, error) {
	data, err := g.c.do(ctx, http.MethodGet, "/api/products", nil)
	if err != nil {
		return nil, err
	}
	var rows []wireProduct
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	out := make([]*entities.Product, 0, len(rows))
	for i, row := range rows {
		p, err := row.toEntity()
		if err != nil {
			return nil, fmt.Errorf("products row %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (g *productGateway) Create(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	data, err := g.c.do(ctx, http.MethodPost, "/api/products", productToWire(product))
	if err != nil {
		return nil, err
	}
	if emptyBody(data) {
		// server acknowledged without a body; echo the payload
		created := *product
		if created.ID == "" {
			created.ID = entities.ID(uuid.NewString())
		}
		return &created, nil
	}
	var row wireProduct
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("decode created product: %w", err)
	}
	created, err := row.toEntity()
	if err != nil {
		return nil, fmt.Errorf("created product: %w", err)
	}
	return created, nil
}

func (g *productGateway) Update(ctx context.Context, id entities.ID, product *entities.Product) (*entities.Product, error) {
	data, err := g.c.do(ctx, http.MethodPut, resourcePath("products", string(id)), productToWire(product))
	if err != nil {
		return nil, err
	}
	if emptyBody(data) {
		updated := *product
		updated.ID = id
		return &updated, nil
	}
	var row wireProduct
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("decode updated product: %w", err)
	}
	updated, err := row.toEntity()
	if err != nil {
		return nil, fmt.Errorf("updated product: %w", err)
	}
	return updated, nil
}

func (g *productGateway) Delete(ctx context.Context, id entities.ID) error {
	_, err := g.c.do(ctx, http.MethodDelete, resourcePath("products", string(id)), nil)
	return err
}

type customerGateway struct{ c *Client }

var _ repositories.CustomerGateway = (*customerGateway)(nil)

func (g *customerGateway) List(ctx context.Context) ([]*entities.Customer, error) {
	data, err := g.c.do(ctx, http.MethodGet, "/api/customers", nil)
	if err != nil {
		return nil, err
	}
	var rows []wireCustomer
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	out := make([]*entities.Customer, 0, len(rows))
	for i, row := range rows {
		c, err := row.toEntity()
		if err != nil {
			return nil, fmt.Errorf("customers row %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (g *customerGateway) Create(ctx context.Context, customer *entities.Customer) (*entities.Customer, error) {
	data, err := g.c.do(ctx, http.MethodPost, "/api/customers", customerToWire(customer))
	if err != nil {
		return nil, err
	}
	if emptyBody(data) {
		created := *customer
		if created.ID == "" {
			created.ID = entities.ID(uuid.NewString())
		}
		return &created, nil
	}
	var row wireCustomer
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("decode created customer: %w", err)
	}
	created, err := row.toEntity()
	if err != nil {
		return nil, fmt.Errorf("created customer: %w", err)
	}
	return created, nil
}

func (g *customerGateway) Update(ctx context.Context, id entities.ID, customer *entities.Customer) (*entities.Customer, error) {
	data, err := g.c.do(ctx, http.MethodPut, resourcePath("customers", string(id)), customerToWire(customer))
	if err != nil {
		return nil, err
	}
	if emptyBody(data) {
		updated := *customer
		updated.ID = id
		return &updated, nil
	}
	var row wireCustomer
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("decode updated customer: %w", err)
	}
	updated, err := row.toEntity()
	if err != nil {
		return nil, fmt.Errorf("updated customer: %w", err)
	}
	return updated, nil
}

func (g *customerGateway) Delete(ctx context.Context, id entities.ID) error {
	_, err := g.c.do(ctx, http.MethodDelete, resourcePath("customers", string(id)), nil)
	return err
}

type orderGateway struct{ c *Client }

var _ repositories.OrderGateway = (*orderGateway)(nil)

func (g *orderGateway) List(ctx context.Context) ([]*entities.Order, error) {
	data, err := g.c.do(ctx, http.MethodGet, "/api/sales", nil)
	if err != nil {
		return nil, err
	}
	var rows []wireOrder
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	out := make([]*entities.Order, 0, len(rows))
	for i, row := range rows {
		o, err := row.toEntity()
		if err != nil {
			return nil, fmt.Errorf("sales row %d: %w", i, err)
		}
		out = append(out, o)
	}
	return out, nil
}

func (g *orderGateway) Create(ctx context.Context, order *entities.Order) (*entities.Order, error) {
	data, err := g.c.do(ctx, http.MethodPost, "/api/sales", orderToWire(order))
	if err != nil {
		return nil, err
	}
	if emptyBody(data) {
		created := *order
		if created.ID == "" {
			created.ID = entities.ID(uuid.NewString())
		}
		return &created, nil
	}
	var row wireOrder
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("decode created sale: %w", err)
	}
	created, err := row.toEntity()
	if err != nil {
		return nil, fmt.Errorf("created sale: %w", err)
	}
	return created, nil
}

func (g *orderGateway) Update(ctx context.Context, id entities.ID, order *entities.Order) (*entities.Order, error) {
	data, err := g.c.do(ctx, http.MethodPut, resourcePath("sales", string(id)), orderToWire(order))
	if err != nil {
		return nil, err
	}
	if emptyBody(data) {
		updated := *order
		updated.ID = id
		return &updated, nil
	}
	var row wireOrder
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("decode updated sale: %w", err)
	}
	updated, err := row.toEntity()
	if err != nil {
		return nil, fmt.Errorf("updated sale: %w", err)
	}
	return updated, nil
}

func (g *orderGateway) Delete(ctx context.Context, id entities.ID) error {
	_, err := g.c.do(ctx, http.MethodDelete, resourcePath("sales", string(id)), nil)
	return err
}
