package cli

import (
	"fmt"
	"io"

	"github.com/Mr-M4sh/inventory-management-app/pkg/domain/entities"
)

func renderDashboard(w io.Writer, m entities.DashboardMetrics) {
	fmt.Fprintf(w, "Dashboard\n=========\n\n")
	fmt.Fprintf(w, "Products:  %d    Customers: %d\n", m.ProductCount, m.CustomerCount)
	fmt.Fprintf(w, "Orders:    %d done, %d pending, %d in transit, %d cancelled\n\n",
		m.OrdersDone, m.OrdersPending, m.OrdersInTransit, m.OrdersCancelled)
	fmt.Fprintf(w, "Sales revenue:    %s\n", m.TotalSalesRevenue.StringFixed(2))
	fmt.Fprintf(w, "Delivery revenue: %s\n", m.TotalDeliveryRevenue.StringFixed(2))
	fmt.Fprintf(w, "Total revenue:    %s\n", m.TotalRevenue.StringFixed(2))
	fmt.Fprintf(w, "Inventory cost:   %s\n", m.TotalCost.StringFixed(2))
	fmt.Fprintf(w, "Profit:           %s\n", m.Profit.StringFixed(2))
}

func renderProducts(w io.Writer, products []entities.Product, lowStock entities.Quantity) {
	fmt.Fprintf(w, "Products (%d)\n\n", len(products))
	fmt.Fprintf(w, "%-24s %-20s %-12s %10s %10s %8s %s\n",
		"ID", "Name", "Category", "Price", "Cost", "Qty", "")
	for _, p := range products {
		flag := ""
		if p.LowStock(lowStock) {
			flag = "LOW"
		}
		fmt.Fprintf(w, "%-24s %-20s %-12s %10s %10s %8d %s\n",
			p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Cost.StringFixed(2), p.Quantity, flag)
	}
}

func renderOrders(w io.Writer, orders []entities.Order, products []entities.Product, customers []entities.Customer, editing entities.ID) {
	productNames := make(map[entities.ID]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}
	customerNames := make(map[entities.ID]string, len(customers))
	for _, c := range customers {
		customerNames[c.ID] = c.Name
	}
	// deleted references render as Unknown rather than breaking the view
	name := func(names map[entities.ID]string, id entities.ID) string {
		if n, ok := names[id]; ok {
			return n
		}
		return "Unknown"
	}

	fmt.Fprintf(w, "Orders (%d)\n\n", len(orders))
	fmt.Fprintf(w, "%-24s %-16s %-16s %5s %10s %10s %10s %-10s %s\n",
		"ID", "Customer", "Product", "Qty", "Line", "Delivery", "Total", "Status", "")
	for _, o := range orders {
		marker := ""
		if editing != "" && o.ID == editing {
			marker = "editing"
		}
		fmt.Fprintf(w, "%-24s %-16s %-16s %5d %10s %10s %10s %-10s %s\n",
			o.ID,
			name(customerNames, o.CustomerID),
			name(productNames, o.ProductID),
			o.Quantity,
			o.ProductPrice.StringFixed(2),
			o.DeliveryPrice.StringFixed(2),
			o.TotalRevenue.StringFixed(2),
			o.Status,
			marker)
	}
}

func renderCustomers(w io.Writer, customers []entities.Customer) {
	fmt.Fprintf(w, "Customers (%d)\n\n", len(customers))
	fmt.Fprintf(w, "%-24s %-20s %-16s %-24s %s\n", "ID", "Name", "Phone", "Email", "Address")
	for _, c := range customers {
		fmt.Fprintf(w, "%-24s %-20s %-16s %-24s %s\n", c.ID, c.Name, c.Phone, c.Email, c.Address)
	}
}
