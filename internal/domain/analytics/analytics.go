// Package analytics summarizes a snapshot of orders into the admin dashboard report.
package analytics

import (
	"time"

	"github.com/sangkips/shopadmin-api/internal/domain/entity"
)

const (
	// NotAvailable is reported as the winning category when no line items exist.
	NotAvailable = "N/A"

	// TopProductsLimit is the length cap of the top product rankings.
	TopProductsLimit = 5

	dayLayout = "2006-01-02"
)

// RankedItem is one entry of a top product ranking
type RankedItem struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Result is the analytics report for a set of orders
type Result struct {
	MostSoldCategory       string         `json:"most_sold_category"`
	MostProfitableCategory string         `json:"most_profitable_category"`
	TotalOrders            int            `json:"total_orders"`
	TotalRevenue           int            `json:"total_revenue"`
	AverageOrderValue      int            `json:"average_order_value"`
	QuantityPerCategory    map[string]int `json:"quantity_per_category"`
	RevenuePerCategory     map[string]int `json:"revenue_per_category"`
	TopProductsByQuantity  []RankedItem   `json:"top_products_by_quantity"`
	TopProductsByRevenue   []RankedItem   `json:"top_products_by_revenue"`
	OrdersPerDay           map[string]int `json:"orders_per_day"`
}

// Compute aggregates orders into a Result. Order dates are bucketed in loc;
// a nil loc means the process local time zone.
//
// Compute never fails: quantities and line totals that do not parse as
// integers count as zero, and an empty input yields an empty report.
func Compute(orders []entity.Order, loc *time.Location) Result {
	if loc == nil {
		loc = time.Local
	}

	quantityPerCategory := Tally{}
	revenuePerCategory := Tally{}
	quantityPerProduct := Tally{}
	revenuePerProduct := Tally{}
	ordersPerDay := Tally{}
	totalRevenue := 0

	for _, order := range orders {
		totalRevenue += order.TotalPrice
		ordersPerDay.Add(OrderDay(order.Time, loc), 1)

		for _, item := range order.Items {
			quantity := ParseAmount(item.Quantity)
			price := ParseAmount(item.TotalPrice)

			quantityPerCategory.Add(item.Category, quantity)
			revenuePerCategory.Add(item.Category, price)

			quantityPerProduct.Add(item.ProductName, quantity)
			revenuePerProduct.Add(item.ProductName, price)
		}
	}

	mostSold, ok := quantityPerCategory.Max()
	if !ok {
		mostSold = NotAvailable
	}
	mostProfitable, ok := revenuePerCategory.Max()
	if !ok {
		mostProfitable = NotAvailable
	}

	averageOrderValue := 0
	if len(orders) > 0 {
		averageOrderValue = totalRevenue / len(orders)
	}

	return Result{
		MostSoldCategory:       mostSold,
		MostProfitableCategory: mostProfitable,
		TotalOrders:            len(orders),
		TotalRevenue:           totalRevenue,
		AverageOrderValue:      averageOrderValue,
		QuantityPerCategory:    quantityPerCategory,
		RevenuePerCategory:     revenuePerCategory,
		TopProductsByQuantity:  quantityPerProduct.Top(TopProductsLimit),
		TopProductsByRevenue:   revenuePerProduct.Top(TopProductsLimit),
		OrdersPerDay:           ordersPerDay,
	}
}

// OrderDay formats an epoch-millisecond timestamp as a calendar day in loc.
func OrderDay(epochMillis int64, loc *time.Location) string {
	return time.UnixMilli(epochMillis).In(loc).Format(dayLayout)
}
