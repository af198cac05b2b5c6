// Package seed loads products and customers from CSV files and pushes
// them through a gateway, for bootstrapping a fresh backend or the stub.
package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/entities"
	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/repositories"
)

// Loader handles loading seed data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadProducts loads products from a CSV file
func (l *Loader) LoadProducts(filename string) ([]*entities.Product, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("products file %s: %w", filename, err)
	}

	expectedHeader := []string{"name", "category", "price", "cost", "quantity"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("products CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var products []*entities.Product
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("products CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
		product, err := parseProduct(record)
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: %w", i+2, err)
		}
		products = append(products, product)
	}
	return products, nil
}

// LoadCustomers loads customers from a CSV file
func (l *Loader) LoadCustomers(filename string) ([]*entities.Customer, error) {
	records, err := readAll(filename)
	if err != nil {
		return nil, fmt.Errorf("customers file %s: %w", filename, err)
	}

	expectedHeader := []string{"name", "phone", "email", "address"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("customers CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var customers []*entities.Customer
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("customers CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}
		customer, err := entities.NewCustomer("", record[0], record[1], record[2], record[3])
		if err != nil {
			return nil, fmt.Errorf("customers CSV row %d: %w", i+2, err)
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

// PushProducts creates each product through the gateway
func PushProducts(ctx context.Context, gw repositories.ProductGateway, products []*entities.Product) error {
	for _, p := range products {
		if _, err := gw.Create(ctx, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Name, err)
		}
	}
	return nil
}

// PushCustomers creates each customer through the gateway
func PushCustomers(ctx context.Context, gw repositories.CustomerGateway, customers []*entities.Customer) error {
	for _, c := range customers {
		if _, err := gw.Create(ctx, c); err != nil {
			return fmt.Errorf("seed customer %s: %w", c.Name, err)
		}
	}
	return nil
}

func readAll(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV must have header and at least one data row")
	}
	return records, nil
}

func parseProduct(record []string) (*entities.Product, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(record[2]))
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", record[2], err)
	}
	cost := decimal.Zero
	if v := strings.TrimSpace(record[3]); v != "" {
		cost, err = decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid cost %q: %w", record[3], err)
		}
	}
	quantity, err := strconv.ParseInt(strings.TrimSpace(record[4]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %q: %w", record[4], err)
	}
	return entities.NewProduct("", record[0], record[1], price, cost, entities.Quantity(quantity))
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return false
		}
	}
	return true
}
