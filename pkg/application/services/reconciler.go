package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/repositories"
	"github.com/Mr-M4sh/inventory-management-app/pkg/infrastructure/store"
)

const (
	defaultRefreshInterval = 3 * time.Second
	defaultReconcileDelay  = 400 * time.Millisecond
)

// Reconciler converges the local mirror with the server: one full load of
// all three collections on start, products and orders on a fixed interval
// afterwards, and a one-shot delayed refresh after every mutation (via
// Nudge). The version floor read before each fetch keeps a slow refresh
// from clobbering optimistic updates that landed while it was in flight.
type Reconciler struct {
	store     *store.Store
	products  repositories.ProductGateway
	customers repositories.CustomerGateway
	orders    repositories.OrderGateway
	interval  time.Duration
	delay     time.Duration
	logger    zerolog.Logger
	nudges    chan struct{}
}

// Verify interface compliance
var _ Nudger = (*Reconciler)(nil)

// NewReconciler creates a Reconciler. Zero interval or delay select the
// observed client defaults (3s refresh, 400ms post-mutation delay).
func NewReconciler(st *store.Store, products repositories.ProductGateway, customers repositories.CustomerGateway, orders repositories.OrderGateway, interval, delay time.Duration, logger zerolog.Logger) *Reconciler {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if delay <= 0 {
		delay = defaultReconcileDelay
	}
	return &Reconciler{
		store:     st,
		products:  products,
		customers: customers,
		orders:    orders,
		interval:  interval,
		delay:     delay,
		logger:    logger,
		nudges:    make(chan struct{}, 1),
	}
}

// Nudge schedules a one-shot refresh shortly after a mutation. Multiple
// nudges before the refresh fires coalesce into one.
func (r *Reconciler) Nudge() {
	select {
	case r.nudges <- struct{}{}:
	default:
	}
}

// Run blocks, refreshing until the context ends
func (r *Reconciler) Run(ctx context.Context) {
	r.InitialLoad(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Refresh(ctx)
		case <-r.nudges:
			timer := time.NewTimer(r.delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			r.Refresh(ctx)
		}
	}
}

// InitialLoad fetches all three collections once. A failed fetch degrades
// to an empty mirror for that collection; nothing is surfaced to the user.
func (r *Reconciler) InitialLoad(ctx context.Context) {
	floor := r.store.Version()

	if customers, err := r.customers.List(ctx); err != nil {
		r.logger.Warn().Err(err).Msg("initial customer load failed")
	} else {
		r.store.ApplyCustomers(customers, floor)
	}

	r.Refresh(ctx)
}

// Refresh re-fetches products and orders and applies them against the
// version floor read before fetching. A failed fetch skips that
// collection for this cycle; an error snapshot is never applied as empty.
func (r *Reconciler) Refresh(ctx context.Context) {
	floor := r.store.Version()

	if products, err := r.products.List(ctx); err != nil {
		r.logger.Warn().Err(err).Msg("product refresh failed; keeping local mirror")
	} else {
		r.store.ApplyProducts(products, floor)
	}

	if orders, err := r.orders.List(ctx); err != nil {
		r.logger.Warn().Err(err).Msg("order refresh failed; keeping local mirror")
	} else {
		r.store.ApplyOrders(orders, floor)
	}
}
