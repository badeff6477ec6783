package dataset

import (
	"errors"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// GenerateOrders produces count orders, each referencing one uniformly
// sampled customer, dated no earlier than that customer's registration.
// TotalAmount stays zero here; FinalizeOrders fills it in once items
// exist.
func GenerateOrders(f *gofakeit.Faker, customers []Customer, count int, end time.Time) ([]Order, error) {
	if len(customers) == 0 {
		return nil, errors.New("no customers to reference")
	}

	orders := make([]Order, 0, count)
	for id := 1; id <= count; id++ {
		customer := customers[f.Number(0, len(customers)-1)]
		orders = append(orders, Order{
			ID:            id,
			CustomerID:    customer.ID,
			OrderDate:     dateOnly(f.DateRange(customer.RegistrationDate, end)),
			TotalAmount:   0,
			Status:        OrderStatuses[f.Number(0, len(OrderStatuses)-1)],
			PaymentMethod: PaymentMethods[f.Number(0, len(PaymentMethods)-1)],
		})
	}
	return orders, nil
}
