package dataset

import (
	"errors"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// SampleReviews produces count reviews by sampling order items with
// replacement, so the same purchase may yield several reviews and
// consumers must expect duplicate (customer, product) pairs. Deriving
// product and customer from the sampled item's order makes a review
// without a purchase impossible; review dates fall in
// [order date, end].
func SampleReviews(f *gofakeit.Faker, items []OrderItem, orders []Order, count int, end time.Time) ([]Review, error) {
	if len(items) == 0 {
		return nil, errors.New("no order items to sample")
	}

	ordersByID := make(map[int]Order, len(orders))
	for _, order := range orders {
		ordersByID[order.ID] = order
	}

	reviews := make([]Review, 0, count)
	for id := 1; id <= count; id++ {
		item := items[f.Number(0, len(items)-1)]
		order, ok := ordersByID[item.OrderID]
		if !ok {
			return nil, errors.New("order item references unknown order")
		}
		reviews = append(reviews, Review{
			ID:         id,
			ProductID:  item.ProductID,
			CustomerID: order.CustomerID,
			Rating:     f.Number(1, 5),
			Text:       f.Paragraph(1, 3, 12, " "),
			ReviewDate: dateOnly(f.DateRange(order.OrderDate, end)),
		})
	}
	return reviews, nil
}
