package commands

import (
	"context"
	"fmt"

	"github.com/Mr-M4sh/inventory-management-app/pkg/infrastructure/config"
	"github.com/Mr-M4sh/inventory-management-app/pkg/infrastructure/gateway"
	"github.com/Mr-M4sh/inventory-management-app/pkg/infrastructure/seed"
)

// SeedCommand pushes CSV seed data to the backend and exits
type SeedCommand struct {
	config Config
}

// NewSeedCommand creates a new seed command with the given configuration
func NewSeedCommand(config Config) *SeedCommand {
	return &SeedCommand{config: config}
}

// Execute loads the CSV files named in the configuration and creates each
// record through the REST client
func (c *SeedCommand) Execute(ctx context.Context) error {
	cfg, err := config.Load(c.config.ConfigFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.config.BaseURL != "" {
		cfg.APIBaseURL = c.config.BaseURL
	}

	logger := newLogger(cfg.LogLevel)
	client := gateway.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
	loader := seed.NewLoader()

	if c.config.ProductsCSV != "" {
		products, err := loader.LoadProducts(c.config.ProductsCSV)
		if err != nil {
			return err
		}
		if err := seed.PushProducts(ctx, client.Products(), products); err != nil {
			return err
		}
		fmt.Printf("Seeded %d products\n", len(products))
	}

	if c.config.CustomersCSV != "" {
		customers, err := loader.LoadCustomers(c.config.CustomersCSV)
		if err != nil {
			return err
		}
		if err := seed.PushCustomers(ctx, client.Customers(), customers); err != nil {
			return err
		}
		fmt.Printf("Seeded %d customers\n", len(customers))
	}

	return nil
}
