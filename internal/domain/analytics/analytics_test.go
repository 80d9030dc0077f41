package analytics

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/sangkips/shopadmin-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func millis(t *testing.T, loc *time.Location, layout, value string) int64 {
	t.Helper()
	ts, err := time.ParseInLocation(layout, value, loc)
	require.NoError(t, err)
	return ts.UnixMilli()
}

func item(category, product, quantity, price string) entity.LineItem {
	return entity.LineItem{
		Category:    category,
		ProductName: product,
		Quantity:    quantity,
		TotalPrice:  price,
	}
}

func TestComputeTwoOrdersSameDay(t *testing.T) {
	day := millis(t, time.UTC, "2006-01-02 15:04", "2024-01-01 10:30")
	orders := []entity.Order{
		{Time: day, TotalPrice: 100, Items: []entity.LineItem{item("Shoes", "Sneaker", "2", "100")}},
		{Time: day + 3600_000, TotalPrice: 40, Items: []entity.LineItem{item("Shoes", "Sandal", "1", "40")}},
	}

	result := Compute(orders, time.UTC)

	assert.Equal(t, 2, result.TotalOrders)
	assert.Equal(t, 140, result.TotalRevenue)
	assert.Equal(t, 70, result.AverageOrderValue)
	assert.Equal(t, map[string]int{"Shoes": 3}, result.QuantityPerCategory)
	assert.Equal(t, map[string]int{"Shoes": 140}, result.RevenuePerCategory)
	assert.Equal(t, "Shoes", result.MostSoldCategory)
	assert.Equal(t, "Shoes", result.MostProfitableCategory)
	assert.Equal(t, []RankedItem{{Name: "Sneaker", Value: 2}, {Name: "Sandal", Value: 1}}, result.TopProductsByQuantity)
	assert.Equal(t, []RankedItem{{Name: "Sneaker", Value: 100}, {Name: "Sandal", Value: 40}}, result.TopProductsByRevenue)
	assert.Equal(t, map[string]int{"2024-01-01": 2}, result.OrdersPerDay)
}

func TestComputeMalformedQuantity(t *testing.T) {
	orders := []entity.Order{
		{TotalPrice: 50, Items: []entity.LineItem{item("Bags", "Tote", "abc", "50")}},
	}

	result := Compute(orders, time.UTC)

	assert.Equal(t, map[string]int{"Bags": 0}, result.QuantityPerCategory)
	assert.Equal(t, map[string]int{"Bags": 50}, result.RevenuePerCategory)
	assert.Equal(t, []RankedItem{{Name: "Tote", Value: 0}}, result.TopProductsByQuantity)
	assert.Equal(t, []RankedItem{{Name: "Tote", Value: 50}}, result.TopProductsByRevenue)
	assert.Equal(t, 1, result.TotalOrders)
}

func TestComputeMalformedDoesNotAffectOtherItems(t *testing.T) {
	orders := []entity.Order{
		{TotalPrice: 30, Items: []entity.LineItem{
			item("Hats", "Cap", "1", "10"),
			item("Hats", "Beanie", "", "x20"),
			item("Hats", "Cap", "2", "20"),
		}},
	}

	result := Compute(orders, time.UTC)

	assert.Equal(t, map[string]int{"Hats": 3}, result.QuantityPerCategory)
	assert.Equal(t, map[string]int{"Hats": 30}, result.RevenuePerCategory)
	assert.Equal(t, []RankedItem{{Name: "Cap", Value: 3}, {Name: "Beanie", Value: 0}}, result.TopProductsByQuantity)
}

func TestComputeEmpty(t *testing.T) {
	result := Compute(nil, time.UTC)

	assert.Equal(t, 0, result.TotalOrders)
	assert.Equal(t, 0, result.TotalRevenue)
	assert.Equal(t, 0, result.AverageOrderValue)
	assert.Equal(t, NotAvailable, result.MostSoldCategory)
	assert.Equal(t, NotAvailable, result.MostProfitableCategory)
	assert.Empty(t, result.QuantityPerCategory)
	assert.Empty(t, result.RevenuePerCategory)
	assert.Empty(t, result.OrdersPerDay)
	assert.Empty(t, result.TopProductsByQuantity)
	assert.Empty(t, result.TopProductsByRevenue)
}

func TestComputeOrdersWithoutItems(t *testing.T) {
	orders := []entity.Order{{TotalPrice: 99}, {TotalPrice: 1}}

	result := Compute(orders, time.UTC)

	assert.Equal(t, 2, result.TotalOrders)
	assert.Equal(t, 100, result.TotalRevenue)
	assert.Equal(t, 50, result.AverageOrderValue)
	assert.Equal(t, NotAvailable, result.MostSoldCategory)
	assert.Equal(t, map[string]int{"1970-01-01": 2}, result.OrdersPerDay)
}

func TestComputeRevenueIgnoresLineItems(t *testing.T) {
	orders := []entity.Order{
		{TotalPrice: 10, Items: []entity.LineItem{item("A", "p", "1", "999")}},
		{TotalPrice: 11, Items: []entity.LineItem{item("A", "p", "1", "bad")}},
		{TotalPrice: 12},
	}

	result := Compute(orders, time.UTC)

	assert.Equal(t, 33, result.TotalRevenue)
	assert.Equal(t, 11, result.AverageOrderValue)
}

func TestComputeAverageTruncates(t *testing.T) {
	orders := []entity.Order{{TotalPrice: 10}, {TotalPrice: 10}, {TotalPrice: 5}}

	result := Compute(orders, time.UTC)

	assert.Equal(t, 8, result.AverageOrderValue)
}

func TestComputeBucketsDaysInGivenLocation(t *testing.T) {
	// 2024-03-10 23:30 UTC is already 2024-03-11 in Tokyo
	ts := millis(t, time.UTC, "2006-01-02 15:04", "2024-03-10 23:30")
	orders := []entity.Order{{Time: ts}}

	tokyo := time.FixedZone("JST", 9*3600)

	assert.Equal(t, map[string]int{"2024-03-10": 1}, Compute(orders, time.UTC).OrdersPerDay)
	assert.Equal(t, map[string]int{"2024-03-11": 1}, Compute(orders, tokyo).OrdersPerDay)
}

func TestComputeNilLocationUsesLocal(t *testing.T) {
	ts := millis(t, time.Local, "2006-01-02 15:04", "2024-06-01 12:00")

	result := Compute([]entity.Order{{Time: ts}}, nil)

	assert.Equal(t, map[string]int{"2024-06-01": 1}, result.OrdersPerDay)
}

func TestComputeCategoryWinnersDiffer(t *testing.T) {
	orders := []entity.Order{
		{Items: []entity.LineItem{
			item("Socks", "Ankle", "10", "50"),
			item("Coats", "Parka", "1", "300"),
		}},
	}

	result := Compute(orders, time.UTC)

	assert.Equal(t, "Socks", result.MostSoldCategory)
	assert.Equal(t, "Coats", result.MostProfitableCategory)
}

func TestComputeCategoryTieGoesToSmallestName(t *testing.T) {
	orders := []entity.Order{
		{Items: []entity.LineItem{
			item("Zeta", "z", "2", "10"),
			item("Alpha", "a", "2", "10"),
			item("Mid", "m", "1", "10"),
		}},
	}

	result := Compute(orders, time.UTC)

	assert.Equal(t, "Alpha", result.MostSoldCategory)
	assert.Equal(t, "Alpha", result.MostProfitableCategory)
}

func TestComputeTopProductsCappedAndOrdered(t *testing.T) {
	items := []entity.LineItem{
		item("C", "p1", "1", "70"),
		item("C", "p2", "7", "10"),
		item("C", "p3", "3", "30"),
		item("C", "p4", "3", "40"),
		item("C", "p5", "5", "50"),
		item("C", "p6", "2", "60"),
		item("C", "p7", "6", "20"),
	}

	result := Compute([]entity.Order{{Items: items}}, time.UTC)

	assert.Equal(t, []RankedItem{
		{Name: "p2", Value: 7},
		{Name: "p7", Value: 6},
		{Name: "p5", Value: 5},
		{Name: "p3", Value: 3},
		{Name: "p4", Value: 3},
	}, result.TopProductsByQuantity)
	assert.Equal(t, []RankedItem{
		{Name: "p1", Value: 70},
		{Name: "p6", Value: 60},
		{Name: "p5", Value: 50},
		{Name: "p4", Value: 40},
		{Name: "p3", Value: 30},
	}, result.TopProductsByRevenue)
}

func TestComputeProductsAggregateAcrossOrders(t *testing.T) {
	orders := []entity.Order{
		{Items: []entity.LineItem{item("Shoes", "Sneaker", "1", "50")}},
		{Items: []entity.LineItem{item("Shoes", "Sneaker", "2", "100")}},
	}

	result := Compute(orders, time.UTC)

	assert.Equal(t, []RankedItem{{Name: "Sneaker", Value: 3}}, result.TopProductsByQuantity)
	assert.Equal(t, []RankedItem{{Name: "Sneaker", Value: 150}}, result.TopProductsByRevenue)
}

func randomOrders(r *rand.Rand, n int) []entity.Order {
	categories := []string{"Shoes", "Bags", "Hats", "Coats"}
	products := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	quantities := []string{"0", "1", "2", "3", "abc", "", "-1", "10"}

	orders := make([]entity.Order, n)
	for i := range orders {
		items := make([]entity.LineItem, r.Intn(4))
		for j := range items {
			items[j] = item(
				categories[r.Intn(len(categories))],
				products[r.Intn(len(products))],
				quantities[r.Intn(len(quantities))],
				quantities[r.Intn(len(quantities))],
			)
		}
		orders[i] = entity.Order{
			Time:       r.Int63n(90 * 24 * 3600 * 1000),
			TotalPrice: r.Intn(500),
			Items:      items,
		}
	}
	return orders
}

func TestComputeInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		orders := randomOrders(r, r.Intn(40))
		result := Compute(orders, time.UTC)

		assert.Equal(t, len(orders), result.TotalOrders)

		revenue := 0
		for _, o := range orders {
			revenue += o.TotalPrice
		}
		assert.Equal(t, revenue, result.TotalRevenue)
		if len(orders) == 0 {
			assert.Equal(t, 0, result.AverageOrderValue)
		} else {
			assert.Equal(t, revenue/len(orders), result.AverageOrderValue)
		}

		days := 0
		for _, count := range result.OrdersPerDay {
			days += count
		}
		assert.Equal(t, result.TotalOrders, days)

		for _, top := range [][]RankedItem{result.TopProductsByQuantity, result.TopProductsByRevenue} {
			assert.LessOrEqual(t, len(top), TopProductsLimit)
			for i := 1; i < len(top); i++ {
				assert.GreaterOrEqual(t, top[i-1].Value, top[i].Value)
			}
		}
	}
}

func TestComputeIndependentOfInputOrder(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	orders := randomOrders(r, 30)

	shuffled := make([]entity.Order, len(orders))
	copy(shuffled, orders)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	assert.Equal(t, Compute(orders, time.UTC), Compute(shuffled, time.UTC))
	assert.Equal(t, Compute(orders, time.UTC), Compute(orders, time.UTC))
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	orders := []entity.Order{{TotalPrice: 5, Items: []entity.LineItem{item("A", "x", "1", "5")}}}
	before := orders[0].Items[0]

	Compute(orders, time.UTC)

	assert.Equal(t, before, orders[0].Items[0])
	assert.Equal(t, 5, orders[0].TotalPrice)
}

func TestComputeConcurrentCalls(t *testing.T) {
	orders := randomOrders(rand.New(rand.NewSource(1)), 25)
	want := Compute(orders, time.UTC)

	var wg sync.WaitGroup
	results := make([]Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Compute(orders, time.UTC)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
