package dataset

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// Params drives a single generation run. The faker passed to Generate is
// the only source of randomness, so equal seeds and equal params produce
// identical datasets.
type Params struct {
	Customers  int
	Products   int
	Orders     int
	OrderItems int
	Reviews    int

	RegistrationStart time.Time
	EndDate           time.Time
}

// Generate runs the five stages in dependency order. Each stage consumes
// only fully-materialized earlier stages; order totals are finalized in a
// separate pass once every item is allocated.
func Generate(f *gofakeit.Faker, p Params) (*Dataset, error) {
	customers, err := GenerateCustomers(f, p.Customers, p.RegistrationStart, p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("generating customers: %w", err)
	}

	products := GenerateProducts(f, p.Products, p.RegistrationStart, p.EndDate)

	orders, err := GenerateOrders(f, customers, p.Orders, p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("generating orders: %w", err)
	}

	items, err := AllocateItems(f, orders, products, p.OrderItems)
	if err != nil {
		return nil, fmt.Errorf("allocating order items: %w", err)
	}
	orders = FinalizeOrders(orders, items)

	reviews, err := SampleReviews(f, items, orders, p.Reviews, p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("sampling reviews: %w", err)
	}

	return &Dataset{
		Customers:  customers,
		Products:   products,
		Orders:     orders,
		OrderItems: items,
		Reviews:    reviews,
	}, nil
}

// round2 rounds monetary values to two decimal places without the drift
// of repeated float arithmetic.
func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// money renders a monetary value as a fixed-point decimal with two places.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// dateOnly drops the time-of-day component; all dataset dates are
// calendar dates in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
