package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/entities"
	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/repositories"
	"github.com/Mr-M4sh/inventory-management-app/pkg/infrastructure/store"
)

// ProductService implements direct product CRUD
type ProductService struct {
	store    *store.Store
	products repositories.ProductGateway
	nudge    Nudger
	logger   zerolog.Logger
}

// NewProductService creates a ProductService over the given store and gateway
func NewProductService(st *store.Store, products repositories.ProductGateway, nudge Nudger, logger zerolog.Logger) *ProductService {
	if nudge == nil {
		nudge = NopNudger{}
	}
	return &ProductService{store: st, products: products, nudge: nudge, logger: logger}
}

// Create validates and persists a new product, mirroring it locally on success
func (s *ProductService) Create(ctx context.Context, name, category string, price, cost decimal.Decimal, quantity entities.Quantity) (*entities.Product, error) {
	product, err := entities.NewProduct("", name, category, price, cost, quantity)
	if err != nil {
		return nil, err
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.store.UpsertProduct(*created)
	s.nudge.Nudge()
	return created, nil
}

// Update applies a product edit optimistically and pushes it to the server.
// The local mirror keeps the edit even if the push fails; the error is
// surfaced and reconciliation settles the record later.
func (s *ProductService) Update(ctx context.Context, product entities.Product) error {
	if _, ok := s.store.GetProduct(product.ID); !ok {
		return fmt.Errorf("product %s: %w", product.ID, repositories.ErrNotFound)
	}

	s.store.UpsertProduct(product)
	if _, err := s.products.Update(ctx, product.ID, &product); err != nil {
		s.nudge.Nudge()
		return fmt.Errorf("update product: %w", err)
	}
	s.nudge.Nudge()
	return nil
}

// Delete removes a product locally regardless of the remote outcome; a
// remote failure is surfaced and the record may reappear on a later
// refresh. Orders referencing the product keep their dangling reference.
func (s *ProductService) Delete(ctx context.Context, id entities.ID) error {
	if _, ok := s.store.GetProduct(id); !ok {
		return fmt.Errorf("product %s: %w", id, repositories.ErrNotFound)
	}

	s.store.RemoveProduct(id)
	err := s.products.Delete(ctx, id)
	s.nudge.Nudge()
	if err != nil {
		s.logger.Warn().Err(err).Str("product", string(id)).Msg("remote delete failed; product removed locally")
		return fmt.Errorf("delete product %s: removed locally, remote delete failed: %w", id, err)
	}
	return nil
}
