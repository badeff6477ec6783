package dataset

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testStart = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)
)

func testParams() Params {
	return Params{
		Customers:         10,
		Products:          5,
		Orders:            20,
		OrderItems:        50,
		Reviews:           30,
		RegistrationStart: testStart,
		EndDate:           testEnd,
	}
}

func TestGenerateCustomers(t *testing.T) {
	f := gofakeit.New(42)
	customers, err := GenerateCustomers(f, 500, testStart, testEnd)
	require.NoError(t, err)
	require.Len(t, customers, 500)

	emails := make(map[string]struct{}, len(customers))
	for i, c := range customers {
		assert.Equal(t, i+1, c.ID)
		_, dup := emails[c.Email]
		assert.False(t, dup, "duplicate email %s", c.Email)
		emails[c.Email] = struct{}{}
		assert.False(t, c.RegistrationDate.Before(testStart))
		assert.False(t, c.RegistrationDate.After(testEnd))
	}
}

func TestGenerateProducts(t *testing.T) {
	f := gofakeit.New(42)
	products := GenerateProducts(f, 200, testStart, testEnd)
	require.Len(t, products, 200)

	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.Contains(t, Categories, p.Category)
		assert.GreaterOrEqual(t, p.Price, minPrice)
		assert.LessOrEqual(t, p.Price, maxPrice)
		assert.Equal(t, round2(p.Price), p.Price, "price not rounded to 2 places")
		assert.GreaterOrEqual(t, p.StockQuantity, 0)
	}
}

func TestGenerateOrdersRespectRegistrationDate(t *testing.T) {
	f := gofakeit.New(42)
	customers, err := GenerateCustomers(f, 25, testStart, testEnd)
	require.NoError(t, err)

	orders, err := GenerateOrders(f, customers, 100, testEnd)
	require.NoError(t, err)
	require.Len(t, orders, 100)

	byID := make(map[int]Customer)
	for _, c := range customers {
		byID[c.ID] = c
	}
	for _, o := range orders {
		customer, ok := byID[o.CustomerID]
		require.True(t, ok, "order %d references unknown customer %d", o.ID, o.CustomerID)
		assert.False(t, o.OrderDate.Before(customer.RegistrationDate),
			"order %d dated %s before customer registration %s", o.ID, o.OrderDate, customer.RegistrationDate)
		assert.Zero(t, o.TotalAmount, "total must stay zero until finalization")
	}
}

func TestGenerateOrdersNoCustomers(t *testing.T) {
	f := gofakeit.New(42)
	_, err := GenerateOrders(f, nil, 10, testEnd)
	assert.Error(t, err)
}

func TestAllocateItemsCoverage(t *testing.T) {
	f := gofakeit.New(42)
	customers, err := GenerateCustomers(f, 5, testStart, testEnd)
	require.NoError(t, err)
	products := GenerateProducts(f, 3, testStart, testEnd)
	orders, err := GenerateOrders(f, customers, 5, testEnd)
	require.NoError(t, err)

	items, err := AllocateItems(f, orders, products, 12)
	require.NoError(t, err)
	require.Len(t, items, 12)

	// The seed items cover every order once, in ascending order id.
	for i, order := range orders {
		assert.Equal(t, order.ID, items[i].OrderID)
	}

	productsByID := make(map[int]Product)
	for _, p := range products {
		productsByID[p.ID] = p
	}
	for i, item := range items {
		assert.Equal(t, i+1, item.ID)
		assert.GreaterOrEqual(t, item.Quantity, 1)
		assert.LessOrEqual(t, item.Quantity, 5)
		product, ok := productsByID[item.ProductID]
		require.True(t, ok)
		assert.Equal(t, product.Price, item.UnitPrice, "unit price must snapshot the product price")
		assert.Equal(t, round2(float64(item.Quantity)*item.UnitPrice), item.Subtotal)
	}
}

func TestAllocateItemsTargetBelowOrderCount(t *testing.T) {
	f := gofakeit.New(42)
	customers, err := GenerateCustomers(f, 5, testStart, testEnd)
	require.NoError(t, err)
	products := GenerateProducts(f, 3, testStart, testEnd)
	orders, err := GenerateOrders(f, customers, 5, testEnd)
	require.NoError(t, err)

	items, err := AllocateItems(f, orders, products, 3)
	assert.Error(t, err)
	assert.Nil(t, items)
}

func TestFinalizeOrdersTotals(t *testing.T) {
	f := gofakeit.New(42)
	customers, err := GenerateCustomers(f, 8, testStart, testEnd)
	require.NoError(t, err)
	products := GenerateProducts(f, 4, testStart, testEnd)
	orders, err := GenerateOrders(f, customers, 15, testEnd)
	require.NoError(t, err)
	items, err := AllocateItems(f, orders, products, 40)
	require.NoError(t, err)

	finalized := FinalizeOrders(orders, items)
	require.Len(t, finalized, len(orders))

	for _, o := range orders {
		assert.Zero(t, o.TotalAmount, "input orders must not be mutated")
	}

	for _, o := range finalized {
		sum := decimal.Zero
		count := 0
		for _, item := range items {
			if item.OrderID == o.ID {
				sum = sum.Add(decimal.NewFromFloat(item.Subtotal))
				count++
			}
		}
		assert.GreaterOrEqual(t, count, 1, "order %d has no items", o.ID)
		want, _ := sum.Round(2).Float64()
		assert.Equal(t, want, o.TotalAmount, "order %d total mismatch", o.ID)
	}
}

func TestSampleReviews(t *testing.T) {
	f := gofakeit.New(42)
	ds, err := Generate(f, testParams())
	require.NoError(t, err)
	require.Len(t, ds.Reviews, 30)

	ordersByID := make(map[int]Order)
	for _, o := range ds.Orders {
		ordersByID[o.ID] = o
	}
	// Every purchased (product, customer) pair, derived through the
	// item's order.
	type pair struct{ productID, customerID int }
	purchased := make(map[pair]time.Time)
	for _, item := range ds.OrderItems {
		order := ordersByID[item.OrderID]
		key := pair{item.ProductID, order.CustomerID}
		if existing, ok := purchased[key]; !ok || order.OrderDate.Before(existing) {
			purchased[key] = order.OrderDate
		}
	}

	for i, r := range ds.Reviews {
		assert.Equal(t, i+1, r.ID)
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
		earliest, ok := purchased[pair{r.ProductID, r.CustomerID}]
		require.True(t, ok, "review %d has no matching purchase", r.ID)
		assert.False(t, r.ReviewDate.Before(earliest),
			"review %d dated %s before any qualifying order", r.ID, r.ReviewDate)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := Generate(gofakeit.New(42), testParams())
	require.NoError(t, err)
	second, err := Generate(gofakeit.New(42), testParams())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	third, err := Generate(gofakeit.New(7), testParams())
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestGenerateFailsBeforeAllocation(t *testing.T) {
	p := testParams()
	p.OrderItems = p.Orders - 1
	ds, err := Generate(gofakeit.New(42), p)
	assert.Error(t, err)
	assert.Nil(t, ds)
}
