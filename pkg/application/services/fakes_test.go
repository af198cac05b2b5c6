package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/entities"
	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/repositories"
)

// In-memory gateways standing in for the remote API. Each call site can be
// failed independently to exercise the transport-error paths.

type fakeProductGateway struct {
	mu        sync.Mutex
	records   []*entities.Product
	seq       int
	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

var _ repositories.ProductGateway = (*fakeProductGateway)(nil)

func (f *fakeProductGateway) List(context.Context) ([]*entities.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*entities.Product, len(f.records))
	for i, r := range f.records {
		cp := *r
		out[i] = &cp
	}
	return out, nil
}

func (f *fakeProductGateway) Create(_ context.Context, p *entities.Product) (*entities.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := *p
	if cp.ID == "" {
		f.seq++
		cp.ID = entities.ID(fmt.Sprintf("p%d", f.seq))
	}
	f.records = append(f.records, &cp)
	out := cp
	return &out, nil
}

func (f *fakeProductGateway) Update(_ context.Context, id entities.ID, p *entities.Product) (*entities.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i, r := range f.records {
		if r.ID == id {
			cp := *p
			cp.ID = id
			f.records[i] = &cp
			out := cp
			return &out, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeProductGateway) Delete(_ context.Context, id entities.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeProductGateway) get(id entities.ID) (entities.Product, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.ID == id {
			return *r, true
		}
	}
	return entities.Product{}, false
}

type fakeCustomerGateway struct {
	mu        sync.Mutex
	records   []*entities.Customer
	seq       int
	listErr   error
	createErr error
	deleteErr error
}

var _ repositories.CustomerGateway = (*fakeCustomerGateway)(nil)

func (f *fakeCustomerGateway) List(context.Context) ([]*entities.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*entities.Customer, len(f.records))
	for i, r := range f.records {
		cp := *r
		out[i] = &cp
	}
	return out, nil
}

func (f *fakeCustomerGateway) Create(_ context.Context, c *entities.Customer) (*entities.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := *c
	if cp.ID == "" {
		f.seq++
		cp.ID = entities.ID(fmt.Sprintf("c%d", f.seq))
	}
	f.records = append(f.records, &cp)
	out := cp
	return &out, nil
}

func (f *fakeCustomerGateway) Update(_ context.Context, id entities.ID, c *entities.Customer) (*entities.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.records {
		if r.ID == id {
			cp := *c
			cp.ID = id
			f.records[i] = &cp
			out := cp
			return &out, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeCustomerGateway) Delete(_ context.Context, id entities.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeOrderGateway struct {
	mu        sync.Mutex
	records   []*entities.Order
	seq       int
	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

var _ repositories.OrderGateway = (*fakeOrderGateway)(nil)

func (f *fakeOrderGateway) List(context.Context) ([]*entities.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*entities.Order, len(f.records))
	for i, r := range f.records {
		cp := *r
		out[i] = &cp
	}
	return out, nil
}

func (f *fakeOrderGateway) Create(_ context.Context, o *entities.Order) (*entities.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	cp := *o
	if cp.ID == "" {
		f.seq++
		cp.ID = entities.ID(fmt.Sprintf("o%d", f.seq))
	}
	f.records = append(f.records, &cp)
	out := cp
	return &out, nil
}

func (f *fakeOrderGateway) Update(_ context.Context, id entities.ID, o *entities.Order) (*entities.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i, r := range f.records {
		if r.ID == id {
			cp := *o
			cp.ID = id
			f.records[i] = &cp
			out := cp
			return &out, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeOrderGateway) Delete(_ context.Context, id entities.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeOrderGateway) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}
