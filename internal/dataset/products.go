package dataset

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	minPrice = 5.0
	maxPrice = 500.0
	maxStock = 1000
)

// GenerateProducts produces count catalog entries with dense ids from 1.
// Categories come from the closed Categories set; prices are uniform in
// [minPrice, maxPrice] rounded to two places.
func GenerateProducts(f *gofakeit.Faker, count int, start, end time.Time) []Product {
	products := make([]Product, 0, count)
	for id := 1; id <= count; id++ {
		products = append(products, Product{
			ID:            id,
			Name:          f.ProductName(),
			Category:      f.RandomString(Categories),
			Description:   f.Sentence(12),
			Price:         round2(f.Float64Range(minPrice, maxPrice)),
			StockQuantity: f.Number(0, maxStock),
			Supplier:      f.Company(),
			CreatedDate:   dateOnly(f.DateRange(start, end)),
		})
	}
	return products
}
