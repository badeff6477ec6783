package dataset

import (
	"errors"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// maxUniqueAttempts bounds how many candidate emails are drawn per
// customer before the uniqueness source is considered exhausted.
const maxUniqueAttempts = 1000

var ErrEmailsExhausted = errors.New("unique email source exhausted")

// GenerateCustomers produces count customers with dense ids from 1 and
// pairwise-unique emails. Registration dates fall inside [start, end].
// Running out of distinct emails is fatal, never silently deduped.
func GenerateCustomers(f *gofakeit.Faker, count int, start, end time.Time) ([]Customer, error) {
	customers := make([]Customer, 0, count)
	seen := make(map[string]struct{}, count)

	for id := 1; id <= count; id++ {
		email, err := uniqueEmail(f, seen)
		if err != nil {
			return nil, fmt.Errorf("customer %d: %w", id, err)
		}
		customers = append(customers, Customer{
			ID:               id,
			FirstName:        f.FirstName(),
			LastName:         f.LastName(),
			Email:            email,
			Phone:            f.Phone(),
			Address:          f.Street(),
			City:             f.City(),
			State:            f.State(),
			ZipCode:          f.Zip(),
			Country:          f.Country(),
			RegistrationDate: dateOnly(f.DateRange(start, end)),
		})
	}
	return customers, nil
}

func uniqueEmail(f *gofakeit.Faker, seen map[string]struct{}) (string, error) {
	for attempt := 0; attempt < maxUniqueAttempts; attempt++ {
		email := f.Email()
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		return email, nil
	}
	return "", ErrEmailsExhausted
}
