package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/entities"
	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/repositories"
	"github.com/Mr-M4sh/inventory-management-app/pkg/infrastructure/store"
)

// ErrInsufficientStock is returned when an order asks for more units than
// the referenced product has on hand
var ErrInsufficientStock = errors.New("insufficient stock")

// Nudger schedules a near-term reconciliation pass. Every mutating
// operation calls it so the local mirror converges with the server
// shortly after an optimistic update.
type Nudger interface {
	Nudge()
}

// NopNudger satisfies Nudger without scheduling anything
type NopNudger struct{}

// Nudge does nothing
func (NopNudger) Nudge() {}

// OrderService implements the order lifecycle and its stock side effects.
// Stock moves exactly once per transition: down on create, back up on
// cancel or delete (unless already cancelled), and by the quantity delta
// on edit.
type OrderService struct {
	store    *store.Store
	orders   repositories.OrderGateway
	products repositories.ProductGateway
	nudge    Nudger
	logger   zerolog.Logger
	now      func() time.Time
}

// NewOrderService creates an OrderService over the given store and gateways
func NewOrderService(st *store.Store, orders repositories.OrderGateway, products repositories.ProductGateway, nudge Nudger, logger zerolog.Logger) *OrderService {
	if nudge == nil {
		nudge = NopNudger{}
	}
	return &OrderService{
		store:    st,
		orders:   orders,
		products: products,
		nudge:    nudge,
		logger:   logger,
		now:      time.Now,
	}
}

// Create validates the references and available stock, persists a pending
// order, and decrements the product's quantity on hand. On validation or
// persistence failure nothing is mutated.
func (s *OrderService) Create(ctx context.Context, customerID, productID entities.ID, quantity entities.Quantity, deliveryPrice decimal.Decimal) (*entities.Order, error) {
	customer, ok := s.store.GetCustomer(customerID)
	if !ok {
		return nil, fmt.Errorf("unknown customer: %s", customerID)
	}
	product, ok := s.store.GetProduct(productID)
	if !ok {
		return nil, fmt.Errorf("unknown product: %s", productID)
	}
	if quantity > product.Quantity {
		return nil, fmt.Errorf("%w: requested %d of %s, have %d", ErrInsufficientStock, quantity, product.Name, product.Quantity)
	}

	order, err := entities.NewOrder("", customer.ID, product.ID, quantity, product.Price, deliveryPrice, s.now())
	if err != nil {
		return nil, err
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.store.UpsertOrder(*created)
	product.RemoveStock(quantity)
	s.store.UpsertProduct(product)
	s.persistProduct(ctx, product)
	s.nudge.Nudge()

	s.logger.Info().
		Str("order", string(created.ID)).
		Str("product", string(product.ID)).
		Int64("quantity", int64(quantity)).
		Msg("order created")
	return created, nil
}

// UpdateStatus moves an order along its lifecycle. Transitioning to
// cancelled restores the product's stock; if the remote update fails the
// local transition (and any stock restoration) is rolled back so the
// stock effect stays exactly-once.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID entities.ID, next entities.OrderStatus) error {
	order, ok := s.store.GetOrder(orderID)
	if !ok {
		return fmt.Errorf("order %s: %w", orderID, repositories.ErrNotFound)
	}
	if !order.Status.CanTransition(next) {
		return fmt.Errorf("order %s cannot move from %s to %s", orderID, order.Status, next)
	}

	previous := order
	var restoredProduct *entities.Product
	if next == entities.StatusCancelled {
		if product, ok := s.store.GetProduct(order.ProductID); ok {
			before := product
			product.AddStock(order.Quantity)
			s.store.UpsertProduct(product)
			restoredProduct = &before
		}
	}

	order.Status = next
	s.store.UpsertOrder(order)

	if _, err := s.orders.Update(ctx, order.ID, &order); err != nil {
		s.store.UpsertOrder(previous)
		if restoredProduct != nil {
			s.store.UpsertProduct(*restoredProduct)
		}
		return fmt.Errorf("update order status: %w", err)
	}

	if restoredProduct != nil {
		product, ok := s.store.GetProduct(order.ProductID)
		if ok {
			s.persistProduct(ctx, product)
		}
	}
	s.nudge.Nudge()
	return nil
}

// Edit changes a pending order's quantity and delivery charge. The
// product's stock is adjusted by the delta between old and new quantity;
// an edit that would consume more stock than is on hand fails validation.
// The product line reprices proportionally from the original price.
func (s *OrderService) Edit(ctx context.Context, orderID entities.ID, newQuantity entities.Quantity, newDeliveryPrice decimal.Decimal) error {
	order, ok := s.store.GetOrder(orderID)
	if !ok {
		return fmt.Errorf("order %s: %w", orderID, repositories.ErrNotFound)
	}
	if order.Status != entities.StatusPending {
		return fmt.Errorf("order %s is %s; only pending orders can be edited", orderID, order.Status)
	}

	delta := order.Quantity - newQuantity
	product, hasProduct := s.store.GetProduct(order.ProductID)
	if hasProduct && delta < 0 && -delta > product.Quantity {
		return fmt.Errorf("%w: edit needs %d more of %s, have %d", ErrInsufficientStock, -delta, product.Name, product.Quantity)
	}

	previousOrder := order
	previousProduct := product
	if err := order.Reprice(newQuantity, newDeliveryPrice); err != nil {
		return err
	}

	s.store.UpsertOrder(order)
	if hasProduct {
		product.AdjustStock(delta)
		s.store.UpsertProduct(product)
	}

	if _, err := s.orders.Update(ctx, order.ID, &order); err != nil {
		s.store.UpsertOrder(previousOrder)
		if hasProduct {
			s.store.UpsertProduct(previousProduct)
		}
		return fmt.Errorf("edit order: %w", err)
	}

	if hasProduct {
		s.persistProduct(ctx, product)
	}
	s.nudge.Nudge()
	return nil
}

// Delete removes an order, restoring the product's stock unless the order
// was already cancelled (cancellation restored it already). The order
// leaves the local mirror even when the remote delete fails; that failure
// is returned so the caller can tell the user, and a later refresh may
// bring the record back.
func (s *OrderService) Delete(ctx context.Context, orderID entities.ID) error {
	order, ok := s.store.GetOrder(orderID)
	if !ok {
		return fmt.Errorf("order %s: %w", orderID, repositories.ErrNotFound)
	}

	if order.Status != entities.StatusCancelled {
		if product, ok := s.store.GetProduct(order.ProductID); ok {
			product.AddStock(order.Quantity)
			s.store.UpsertProduct(product)
			s.persistProduct(ctx, product)
		}
	}

	s.store.RemoveOrder(orderID)
	err := s.orders.Delete(ctx, orderID)
	s.nudge.Nudge()
	if err != nil {
		s.logger.Warn().Err(err).Str("order", string(orderID)).Msg("remote delete failed; order removed locally")
		return fmt.Errorf("delete order %s: removed locally, remote delete failed: %w", orderID, err)
	}
	return nil
}

// persistProduct pushes a stock adjustment to the server. Best effort: the
// order write already succeeded, so a failure here is logged and left for
// reconciliation rather than unwound.
func (s *OrderService) persistProduct(ctx context.Context, product entities.Product) {
	if _, err := s.products.Update(ctx, product.ID, &product); err != nil {
		s.logger.Warn().Err(err).Str("product", string(product.ID)).Msg("failed to persist stock adjustment")
	}
}
