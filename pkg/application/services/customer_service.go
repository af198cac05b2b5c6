package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/entities"
	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/repositories"
	"github.com/Mr-M4sh/inventory-management-app/pkg/infrastructure/store"
)

// CustomerService implements direct customer CRUD. Order operations never
// touch customers.
type CustomerService struct {
	store     *store.Store
	customers repositories.CustomerGateway
	nudge     Nudger
	logger    zerolog.Logger
}

// NewCustomerService creates a CustomerService over the given store and gateway
func NewCustomerService(st *store.Store, customers repositories.CustomerGateway, nudge Nudger, logger zerolog.Logger) *CustomerService {
	if nudge == nil {
		nudge = NopNudger{}
	}
	return &CustomerService{store: st, customers: customers, nudge: nudge, logger: logger}
}

// Create validates and persists a new customer
func (s *CustomerService) Create(ctx context.Context, name, phone, email, address string) (*entities.Customer, error) {
	customer, err := entities.NewCustomer("", name, phone, email, address)
	if err != nil {
		return nil, err
	}

	created, err := s.customers.Create(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.store.UpsertCustomer(*created)
	s.nudge.Nudge()
	return created, nil
}

// Delete removes a customer locally regardless of the remote outcome.
// Orders referencing the customer keep their dangling reference and the
// views render "Unknown" for it.
func (s *CustomerService) Delete(ctx context.Context, id entities.ID) error {
	if _, ok := s.store.GetCustomer(id); !ok {
		return fmt.Errorf("customer %s: %w", id, repositories.ErrNotFound)
	}

	s.store.RemoveCustomer(id)
	err := s.customers.Delete(ctx, id)
	s.nudge.Nudge()
	if err != nil {
		s.logger.Warn().Err(err).Str("customer", string(id)).Msg("remote delete failed; customer removed locally")
		return fmt.Errorf("delete customer %s: removed locally, remote delete failed: %w", id, err)
	}
	return nil
}
