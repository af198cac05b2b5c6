// Package cli drives the four dashboard views from an interactive
// terminal session. Views render exclusively from local store snapshots;
// switching views performs no I/O.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Mr-M4sh/inventory-management-app/pkg/application/services"
	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/entities"
	"github.com/Mr-M4sh/inventory-management-app/pkg/infrastructure/store"
)

// Session owns the interactive loop and dispatches user actions to the
// application services
type Session struct {
	store     *store.Store
	products  *services.ProductService
	customers *services.CustomerService
	orders    *services.OrderService
	lowStock  entities.Quantity
	scanner   *bufio.Scanner
	out       io.Writer
	logger    zerolog.Logger
}

// NewSession creates a Session reading commands from in and rendering to out
func NewSession(st *store.Store, products *services.ProductService, customers *services.CustomerService, orders *services.OrderService, lowStock entities.Quantity, in io.Reader, out io.Writer, logger zerolog.Logger) *Session {
	return &Session{
		store:     st,
		products:  products,
		customers: customers,
		orders:    orders,
		lowStock:  lowStock,
		scanner:   bufio.NewScanner(in),
		out:       out,
		logger:    logger,
	}
}

// Run renders the active view and processes commands until EOF or quit
func (s *Session) Run(ctx context.Context) error {
	s.Render()
	for {
		fmt.Fprintf(s.out, "\n%s> ", s.store.ActiveView())
		if !s.scanner.Scan() {
			return s.scanner.Err()
		}
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			s.Render()
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		if err := s.Handle(ctx, line); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		s.Render()
	}
}

// Handle dispatches a single command line
func (s *Session) Handle(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "dashboard":
		s.store.SetActiveView(store.ViewDashboard)
	case "products":
		s.store.SetActiveView(store.ViewProducts)
	case "orders":
		s.store.SetActiveView(store.ViewOrders)
	case "customers":
		s.store.SetActiveView(store.ViewCustomers)
	case "help":
		s.printHelp()
	case "product":
		return s.handleProduct(ctx, fields[1:])
	case "customer":
		return s.handleCustomer(ctx, fields[1:])
	case "order":
		return s.handleOrder(ctx, fields[1:])
	default:
		return fmt.Errorf("unknown command %q (try help)", fields[0])
	}
	return nil
}

// Render writes the active view from a fresh store snapshot
func (s *Session) Render() {
	products, customers, orders := s.store.Snapshot()
	switch s.store.ActiveView() {
	case store.ViewDashboard:
		renderDashboard(s.out, entities.ComputeDashboard(products, customers, orders))
	case store.ViewProducts:
		renderProducts(s.out, products, s.lowStock)
	case store.ViewOrders:
		editing, _ := s.store.EditingOrder()
		renderOrders(s.out, orders, products, customers, editing)
	case store.ViewCustomers:
		renderCustomers(s.out, customers)
	}
}

func (s *Session) handleProduct(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: product add|update|delete ...")
	}
	switch args[0] {
	case "add":
		if len(args) != 6 {
			return fmt.Errorf("usage: product add <name> <category> <price> <cost> <quantity>")
		}
		price, err := decimal.NewFromString(args[3])
		if err != nil {
			return fmt.Errorf("invalid price %q", args[3])
		}
		cost, err := decimal.NewFromString(args[4])
		if err != nil {
			return fmt.Errorf("invalid cost %q", args[4])
		}
		quantity, err := strconv.ParseInt(args[5], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[5])
		}
		created, err := s.products.Create(ctx, args[1], args[2], price, cost, entities.Quantity(quantity))
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "product %s added (%s)\n", created.Name, created.ID)
		return nil
	case "update":
		if len(args) != 7 {
			return fmt.Errorf("usage: product update <id> <name> <category> <price> <cost> <quantity>")
		}
		id := entities.ID(args[1])
		if _, ok := s.store.GetProduct(id); !ok {
			return fmt.Errorf("no product with id %s", id)
		}
		price, err := decimal.NewFromString(args[4])
		if err != nil {
			return fmt.Errorf("invalid price %q", args[4])
		}
		cost, err := decimal.NewFromString(args[5])
		if err != nil {
			return fmt.Errorf("invalid cost %q", args[5])
		}
		quantity, err := strconv.ParseInt(args[6], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[6])
		}
		updated, err := entities.NewProduct(id, args[2], args[3], price, cost, entities.Quantity(quantity))
		if err != nil {
			return err
		}
		return s.products.Update(ctx, *updated)
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: product delete <id>")
		}
		id := entities.ID(args[1])
		product, ok := s.store.GetProduct(id)
		if !ok {
			return fmt.Errorf("no product with id %s", id)
		}
		if !s.confirm(fmt.Sprintf("delete product %q?", product.Name)) {
			fmt.Fprintln(s.out, "kept")
			return nil
		}
		return s.products.Delete(ctx, id)
	default:
		return fmt.Errorf("unknown product command %q", args[0])
	}
}

func (s *Session) handleCustomer(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: customer add|delete ...")
	}
	switch args[0] {
	case "add":
		if len(args) < 2 || len(args) > 5 {
			return fmt.Errorf("usage: customer add <name> [phone] [email] [address]")
		}
		opt := func(i int) string {
			if i < len(args) {
				return args[i]
			}
			return ""
		}
		created, err := s.customers.Create(ctx, args[1], opt(2), opt(3), opt(4))
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "customer %s added (%s)\n", created.Name, created.ID)
		return nil
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: customer delete <id>")
		}
		id := entities.ID(args[1])
		customer, ok := s.store.GetCustomer(id)
		if !ok {
			return fmt.Errorf("no customer with id %s", id)
		}
		if !s.confirm(fmt.Sprintf("delete customer %q?", customer.Name)) {
			fmt.Fprintln(s.out, "kept")
			return nil
		}
		return s.customers.Delete(ctx, id)
	default:
		return fmt.Errorf("unknown customer command %q", args[0])
	}
}

func (s *Session) handleOrder(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: order add|status|edit|save|discard|delete ...")
	}
	switch args[0] {
	case "add":
		if len(args) != 5 {
			return fmt.Errorf("usage: order add <customerID> <productID> <quantity> <delivery>")
		}
		quantity, err := strconv.ParseInt(args[3], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[3])
		}
		delivery, err := decimal.NewFromString(args[4])
		if err != nil {
			return fmt.Errorf("invalid delivery price %q", args[4])
		}
		created, err := s.orders.Create(ctx, entities.ID(args[1]), entities.ID(args[2]), entities.Quantity(quantity), delivery)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "order %s created, total %s\n", created.ID, created.TotalRevenue)
		return nil
	case "status":
		if len(args) != 3 {
			return fmt.Errorf("usage: order status <id> <pending|in_transit|done|cancelled>")
		}
		status, err := entities.ParseOrderStatus(args[2])
		if err != nil {
			return err
		}
		return s.orders.UpdateStatus(ctx, entities.ID(args[1]), status)
	case "edit":
		if len(args) != 2 {
			return fmt.Errorf("usage: order edit <id>")
		}
		id := entities.ID(args[1])
		if _, ok := s.store.GetOrder(id); !ok {
			return fmt.Errorf("no order with id %s", id)
		}
		s.store.SetEditingOrder(id)
		fmt.Fprintf(s.out, "editing order %s; use: order save <quantity> <delivery>\n", id)
		return nil
	case "save":
		if len(args) != 3 {
			return fmt.Errorf("usage: order save <quantity> <delivery>")
		}
		id, editing := s.store.EditingOrder()
		if !editing {
			return fmt.Errorf("no order is being edited (use: order edit <id>)")
		}
		quantity, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		delivery, err := decimal.NewFromString(args[2])
		if err != nil {
			return fmt.Errorf("invalid delivery price %q", args[2])
		}
		if err := s.orders.Edit(ctx, id, entities.Quantity(quantity), delivery); err != nil {
			return err
		}
		s.store.ClearEditingOrder()
		return nil
	case "discard":
		s.store.ClearEditingOrder()
		return nil
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: order delete <id>")
		}
		return s.orders.Delete(ctx, entities.ID(args[1]))
	default:
		return fmt.Errorf("unknown order command %q", args[0])
	}
}

func (s *Session) confirm(prompt string) bool {
	fmt.Fprintf(s.out, "%s [y/N]: ", prompt)
	if !s.scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(s.scanner.Text()))
	return answer == "y" || answer == "yes"
}

func (s *Session) printHelp() {
	fmt.Fprint(s.out, `views:    dashboard | products | orders | customers
product:  product add <name> <category> <price> <cost> <quantity>
          product update <id> <name> <category> <price> <cost> <quantity>
          product delete <id>
customer: customer add <name> [phone] [email] [address]
          customer delete <id>
order:    order add <customerID> <productID> <quantity> <delivery>
          order status <id> <pending|in_transit|done|cancelled>
          order edit <id>   then: order save <quantity> <delivery> | order discard
          order delete <id>
other:    help | quit
`)
}
