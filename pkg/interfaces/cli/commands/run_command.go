package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/Mr-M4sh/inventory-management-app/pkg/application/services"
	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/entities"
	"github.com/Mr-M4sh/inventory-management-app/pkg/infrastructure/config"
	"github.com/Mr-M4sh/inventory-management-app/pkg/infrastructure/gateway"
	"github.com/Mr-M4sh/inventory-management-app/pkg/infrastructure/store"
	"github.com/Mr-M4sh/inventory-management-app/pkg/interfaces/cli"
)

// Config holds configuration for the dashboard commands
type Config struct {
	ConfigFile   string
	BaseURL      string
	ProductsCSV  string
	CustomersCSV string
	Help         bool
}

// RunCommand starts the interactive dashboard session
type RunCommand struct {
	config Config
}

// NewRunCommand creates a new run command with the given configuration
func NewRunCommand(config Config) *RunCommand {
	return &RunCommand{config: config}
}

// Execute loads configuration, wires the client, store and services,
// starts background reconciliation and runs the interactive session
func (c *RunCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	cfg, err := config.Load(c.config.ConfigFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.config.BaseURL != "" {
		cfg.APIBaseURL = c.config.BaseURL
	}

	logger := newLogger(cfg.LogLevel)

	client := gateway.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	st := store.New()

	reconciler := services.NewReconciler(st,
		client.Products(), client.Customers(), client.Orders(),
		cfg.RefreshInterval, cfg.ReconcileDelay, logger)

	products := services.NewProductService(st, client.Products(), reconciler, logger)
	customers := services.NewCustomerService(st, client.Customers(), reconciler, logger)
	orders := services.NewOrderService(st, client.Orders(), client.Products(), reconciler, logger)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go reconciler.Run(ctx)

	session := cli.NewSession(st, products, customers, orders,
		entities.Quantity(cfg.LowStockThreshold), os.Stdin, os.Stdout, logger)
	return session.Run(ctx)
}

func (c *RunCommand) showHelp() {
	fmt.Printf(`Inventory Dashboard CLI

USAGE:
    invdash                                # Run against the configured backend
    invdash -base-url http://localhost:8080
    invdash -seed-products products.csv -seed-customers customers.csv

OPTIONS:
    -config <file>          Env file to load (default: ./app.env if present)
    -base-url <url>         Backend base URL, overrides API_BASE_URL
    -seed-products <file>   Push products from a CSV file and exit
    -seed-customers <file>  Push customers from a CSV file and exit
    -help                   Show this help message

ENVIRONMENT:
    API_BASE_URL            Backend base URL
    HTTP_TIMEOUT            Request timeout (default 10s)
    REFRESH_INTERVAL        Background refresh period (default 3s)
    RECONCILE_DELAY         Delay before post-mutation refresh (default 400ms)
    LOG_LEVEL               zerolog level (default info)
    LOW_STOCK_THRESHOLD     Quantity at or below which products flag LOW (default 5)

CSV FILE FORMATS:

products.csv:
    name,category,price,cost,quantity
    Mint Pods,pods,10,4,50

customers.csv:
    name,phone,email,address
    Ayesha,0300-0000000,ayesha@example.com,Lahore
`)
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}
