package entities

import "github.com/shopspring/decimal"

// DashboardMetrics holds the aggregate figures shown on the dashboard view
type DashboardMetrics struct {
	TotalCost            decimal.Decimal
	TotalSalesRevenue    decimal.Decimal
	TotalDeliveryRevenue decimal.Decimal
	TotalRevenue         decimal.Decimal
	Profit               decimal.Decimal
	ProductCount         int
	CustomerCount        int
	OrdersDone           int
	OrdersPending        int
	OrdersInTransit      int
	OrdersCancelled      int
}

// ComputeDashboard derives all dashboard aggregates from the current
// collection snapshots. Pure and recomputed per render; revenue counts
// only orders that reached done.
func ComputeDashboard(products []Product, customers []Customer, orders []Order) DashboardMetrics {
	m := DashboardMetrics{
		TotalCost:            decimal.Zero,
		TotalSalesRevenue:    decimal.Zero,
		TotalDeliveryRevenue: decimal.Zero,
		ProductCount:         len(products),
		CustomerCount:        len(customers),
	}

	for _, p := range products {
		m.TotalCost = m.TotalCost.Add(p.Cost.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}

	for _, o := range orders {
		switch o.Status {
		case StatusDone:
			m.OrdersDone++
			m.TotalSalesRevenue = m.TotalSalesRevenue.Add(o.ProductPrice)
			m.TotalDeliveryRevenue = m.TotalDeliveryRevenue.Add(o.DeliveryPrice)
		case StatusPending:
			m.OrdersPending++
		case StatusInTransit:
			m.OrdersInTransit++
		case StatusCancelled:
			m.OrdersCancelled++
		}
	}

	m.TotalRevenue = m.TotalSalesRevenue.Add(m.TotalDeliveryRevenue)
	m.Profit = m.TotalRevenue.Sub(m.TotalCost)
	return m
}
