package repositories

import (
	"context"
	"errors"

	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/entities"
)

// ErrNotFound is returned when the remote API has no record for an id
var ErrNotFound = errors.New("record not found")

// ProductGateway provides access to the remote product collection
type ProductGateway interface {
	List(ctx context.Context) ([]*entities.Product, error)
	Create(ctx context.Context, product *entities.Product) (*entities.Product, error)
	Update(ctx context.Context, id entities.ID, product *entities.Product) (*entities.Product, error)
	Delete(ctx context.Context, id entities.ID) error
}

// CustomerGateway provides access to the remote customer collection
type CustomerGateway interface {
	List(ctx context.Context) ([]*entities.Customer, error)
	Create(ctx context.Context, customer *entities.Customer) (*entities.Customer, error)
	Update(ctx context.Context, id entities.ID, customer *entities.Customer) (*entities.Customer, error)
	Delete(ctx context.Context, id entities.ID) error
}

// OrderGateway provides access to the remote sales collection
type OrderGateway interface {
	List(ctx context.Context) ([]*entities.Order, error)
	Create(ctx context.Context, order *entities.Order) (*entities.Order, error)
	Update(ctx context.Context, id entities.ID, order *entities.Order) (*entities.Order, error)
	Delete(ctx context.Context, id entities.ID) error
}
