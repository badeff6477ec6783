package dataset

import (
	"errors"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	minQuantity = 1
	maxQuantity = 5
)

// AllocateItems produces count order items with dense ids from 1. The
// first len(orders) items cover every order exactly once in ascending
// order id, so no order is left childless; the remainder go to uniformly
// sampled orders. UnitPrice snapshots the product price at allocation
// time.
//
// A count below the order count is a configuration error and fails
// before any allocation happens.
func AllocateItems(f *gofakeit.Faker, orders []Order, products []Product, count int) ([]OrderItem, error) {
	if count < len(orders) {
		return nil, fmt.Errorf("item target %d is below order count %d; every order needs at least one item", count, len(orders))
	}
	if len(products) == 0 {
		return nil, errors.New("no products to reference")
	}

	items := make([]OrderItem, 0, count)
	id := 1
	for _, order := range orders {
		items = append(items, buildItem(f, products, id, order.ID))
		id++
	}
	for ; id <= count; id++ {
		order := orders[f.Number(0, len(orders)-1)]
		items = append(items, buildItem(f, products, id, order.ID))
	}
	return items, nil
}

func buildItem(f *gofakeit.Faker, products []Product, id, orderID int) OrderItem {
	product := products[f.Number(0, len(products)-1)]
	quantity := f.Number(minQuantity, maxQuantity)
	return OrderItem{
		ID:        id,
		OrderID:   orderID,
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: product.Price,
		Subtotal:  round2(float64(quantity) * product.Price),
	}
}

// FinalizeOrders returns a new order slice with each TotalAmount set to
// the sum of its items' subtotals, rounded to two places. Input orders
// are not mutated; totals are written exactly once, here.
func FinalizeOrders(orders []Order, items []OrderItem) []Order {
	totals := make(map[int]decimal.Decimal, len(orders))
	for _, item := range items {
		totals[item.OrderID] = totals[item.OrderID].Add(decimal.NewFromFloat(item.Subtotal))
	}

	finalized := make([]Order, len(orders))
	for i, order := range orders {
		order.TotalAmount, _ = totals[order.ID].Round(2).Float64()
		finalized[i] = order
	}
	return finalized
}
