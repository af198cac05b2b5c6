// Package store holds the in-process mirror of the server-held collections
// plus the scalar UI state driving the dashboard views.
//
// Every local mutation stamps the touched record with a monotonic version.
// A background refresh reads the version counter before fetching (the
// "floor") and its results are only applied to records whose local version
// is not newer than that floor, so a refresh racing an optimistic update
// can never overwrite the newer local state with stale server data.
package store

import (
	"sync"

	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/entities"
)

// View selects which of the four screens the controller renders
type View int

const (
	ViewDashboard View = iota
	ViewProducts
	ViewOrders
	ViewCustomers
)

// String method for View enum
func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewProducts:
		return "products"
	case ViewOrders:
		return "orders"
	case ViewCustomers:
		return "customers"
	default:
		return "unknown"
	}
}

// Store is the local mirror of the three remote collections. All access
// goes through its methods; reads hand out copies, never live slices.
type Store struct {
	mu      sync.RWMutex
	version int64

	products  *collection[entities.Product]
	customers *collection[entities.Customer]
	orders    *collection[entities.Order]

	activeView   View
	editingOrder *entities.ID
}

// New creates an empty Store showing the dashboard view
func New() *Store {
	return &Store{
		products:  newCollection(func(p entities.Product) entities.ID { return p.ID }),
		customers: newCollection(func(c entities.Customer) entities.ID { return c.ID }),
		orders:    newCollection(func(o entities.Order) entities.ID { return o.ID }),
	}
}

// Version returns the current mutation counter. Reconciliation reads it
// before fetching and passes it back as the floor when applying results.
func (s *Store) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) bump() int64 {
	s.version++
	return s.version
}

// UpsertProduct applies a local product mutation
func (s *Store) UpsertProduct(p entities.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.upsert(p, s.bump())
}

// RemoveProduct removes a product locally, leaving a tombstone so a
// concurrent refresh does not immediately resurrect it
func (s *Store) RemoveProduct(id entities.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.remove(id, s.bump())
}

// GetProduct returns a copy of the product with the given id
func (s *Store) GetProduct(id entities.ID) (entities.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.get(id)
}

// Products returns a copy of the product collection in mirror order
func (s *Store) Products() []entities.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.snapshot()
}

// ApplyProducts reconciles the product mirror with a server snapshot
// fetched while the store was at version floor
func (s *Store) ApplyProducts(server []*entities.Product, floor int64) {
	recs := make([]entities.Product, 0, len(server))
	for _, p := range server {
		if p != nil {
			recs = append(recs, *p)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.applyRefresh(recs, floor)
}

// UpsertCustomer applies a local customer mutation
func (s *Store) UpsertCustomer(c entities.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers.upsert(c, s.bump())
}

// RemoveCustomer removes a customer locally
func (s *Store) RemoveCustomer(id entities.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers.remove(id, s.bump())
}

// GetCustomer returns a copy of the customer with the given id
func (s *Store) GetCustomer(id entities.ID) (entities.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers.get(id)
}

// Customers returns a copy of the customer collection in mirror order
func (s *Store) Customers() []entities.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers.snapshot()
}

// ApplyCustomers reconciles the customer mirror with a server snapshot
func (s *Store) ApplyCustomers(server []*entities.Customer, floor int64) {
	recs := make([]entities.Customer, 0, len(server))
	for _, c := range server {
		if c != nil {
			recs = append(recs, *c)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers.applyRefresh(recs, floor)
}

// UpsertOrder applies a local order mutation
func (s *Store) UpsertOrder(o entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.upsert(o, s.bump())
}

// RemoveOrder removes an order locally
func (s *Store) RemoveOrder(id entities.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.remove(id, s.bump())
	if s.editingOrder != nil && *s.editingOrder == id {
		s.editingOrder = nil
	}
}

// GetOrder returns a copy of the order with the given id
func (s *Store) GetOrder(id entities.ID) (entities.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders.get(id)
}

// Orders returns a copy of the order collection in mirror order
func (s *Store) Orders() []entities.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders.snapshot()
}

// ApplyOrders reconciles the order mirror with a server snapshot
func (s *Store) ApplyOrders(server []*entities.Order, floor int64) {
	recs := make([]entities.Order, 0, len(server))
	for _, o := range server {
		if o != nil {
			recs = append(recs, *o)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.applyRefresh(recs, floor)
}

// Snapshot returns copies of all three collections for a single render
func (s *Store) Snapshot() ([]entities.Product, []entities.Customer, []entities.Order) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products.snapshot(), s.customers.snapshot(), s.orders.snapshot()
}

// ActiveView returns the currently selected view
func (s *Store) ActiveView() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeView
}

// SetActiveView switches the selected view. Switching performs no I/O.
func (s *Store) SetActiveView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeView = v
}

// EditingOrder returns the order currently in edit mode, if any. At most
// one order may be in an editing state at a time.
func (s *Store) EditingOrder() (entities.ID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.editingOrder == nil {
		return "", false
	}
	return *s.editingOrder, true
}

// SetEditingOrder marks an order as being edited, replacing any previous one
func (s *Store) SetEditingOrder(id entities.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingOrder = &id
}

// ClearEditingOrder leaves edit mode
func (s *Store) ClearEditingOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingOrder = nil
}
