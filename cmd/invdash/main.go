package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Mr-M4sh/inventory-management-app/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		configFile   = flag.String("config", "", "Env file to load (default: ./app.env if present)")
		baseURL      = flag.String("base-url", "", "Backend base URL, overrides API_BASE_URL")
		productsCSV  = flag.String("seed-products", "", "Push products from a CSV file and exit")
		customersCSV = flag.String("seed-customers", "", "Push customers from a CSV file and exit")
		help         = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	config := commands.Config{
		ConfigFile:   *configFile,
		BaseURL:      *baseURL,
		ProductsCSV:  *productsCSV,
		CustomersCSV: *customersCSV,
		Help:         *help,
	}

	ctx := context.Background()

	var err error
	if config.ProductsCSV != "" || config.CustomersCSV != "" {
		err = commands.NewSeedCommand(config).Execute(ctx)
	} else {
		err = commands.NewRunCommand(config).Execute(ctx)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
