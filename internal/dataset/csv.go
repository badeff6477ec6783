package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

const (
	CustomersFile  = "customers.csv"
	ProductsFile   = "products.csv"
	OrdersFile     = "orders.csv"
	OrderItemsFile = "order_items.csv"
	ReviewsFile    = "reviews.csv"
)

var (
	customerHeader = []string{"customer_id", "first_name", "last_name", "email", "phone", "address", "city", "state", "zip_code", "country", "registration_date"}
	productHeader  = []string{"product_id", "product_name", "category", "description", "price", "stock_quantity", "supplier", "created_date"}
	orderHeader    = []string{"order_id", "customer_id", "order_date", "total_amount", "status", "payment_method"}
	itemHeader     = []string{"order_item_id", "order_id", "product_id", "quantity", "unit_price", "subtotal"}
	reviewHeader   = []string{"review_id", "product_id", "customer_id", "rating", "review_text", "review_date"}
)

// WriteAll persists the five entity sets as CSV files under dir, one file
// per set, fixed column order, ISO dates and two-place money.
func (ds *Dataset) WriteAll(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	files := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{CustomersFile, customerHeader, customerRows(ds.Customers)},
		{ProductsFile, productHeader, productRows(ds.Products)},
		{OrdersFile, orderHeader, orderRows(ds.Orders)},
		{OrderItemsFile, itemHeader, itemRows(ds.OrderItems)},
		{ReviewsFile, reviewHeader, reviewRows(ds.Reviews)},
	}
	for _, file := range files {
		if err := writeCSV(filepath.Join(dir, file.name), file.header, file.rows); err != nil {
			return fmt.Errorf("writing %s: %w", file.name, err)
		}
	}
	return nil
}

// ReadAll loads a previously exported dataset from dir. A missing
// directory or file is a precondition error.
func ReadAll(dir string) (*Dataset, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("data directory %s: %w", dir, err)
	}

	ds := &Dataset{}
	steps := []struct {
		name  string
		parse func(records [][]string) error
	}{
		{CustomersFile, func(records [][]string) (err error) { ds.Customers, err = parseCustomers(records); return }},
		{ProductsFile, func(records [][]string) (err error) { ds.Products, err = parseProducts(records); return }},
		{OrdersFile, func(records [][]string) (err error) { ds.Orders, err = parseOrders(records); return }},
		{OrderItemsFile, func(records [][]string) (err error) { ds.OrderItems, err = parseItems(records); return }},
		{ReviewsFile, func(records [][]string) (err error) { ds.Reviews, err = parseReviews(records); return }},
	}
	for _, step := range steps {
		records, err := readCSV(filepath.Join(dir, step.name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", step.name, err)
		}
		if err := step.parse(records); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", step.name, err)
		}
	}
	return ds, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// readCSV returns the data records with the header row stripped.
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	return records[1:], nil
}

func customerRows(customers []Customer) [][]string {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			strconv.Itoa(c.ID), c.FirstName, c.LastName, c.Email, c.Phone,
			c.Address, c.City, c.State, c.ZipCode, c.Country,
			c.RegistrationDate.Format(dateLayout),
		})
	}
	return rows
}

func productRows(products []Product) [][]string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.Itoa(p.ID), p.Name, p.Category, p.Description,
			money(p.Price), strconv.Itoa(p.StockQuantity), p.Supplier,
			p.CreatedDate.Format(dateLayout),
		})
	}
	return rows
}

func orderRows(orders []Order) [][]string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			strconv.Itoa(o.ID), strconv.Itoa(o.CustomerID),
			o.OrderDate.Format(dateLayout), money(o.TotalAmount),
			string(o.Status), string(o.PaymentMethod),
		})
	}
	return rows
}

func itemRows(items []OrderItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.Itoa(it.ID), strconv.Itoa(it.OrderID), strconv.Itoa(it.ProductID),
			strconv.Itoa(it.Quantity), money(it.UnitPrice), money(it.Subtotal),
		})
	}
	return rows
}

func reviewRows(reviews []Review) [][]string {
	rows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, []string{
			strconv.Itoa(r.ID), strconv.Itoa(r.ProductID), strconv.Itoa(r.CustomerID),
			strconv.Itoa(r.Rating), r.Text, r.ReviewDate.Format(dateLayout),
		})
	}
	return rows
}

func parseCustomers(records [][]string) ([]Customer, error) {
	customers := make([]Customer, 0, len(records))
	for _, rec := range records {
		if len(rec) != len(customerHeader) {
			return nil, fmt.Errorf("expected %d columns, got %d", len(customerHeader), len(rec))
		}
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, err
		}
		registered, err := time.Parse(dateLayout, rec[10])
		if err != nil {
			return nil, err
		}
		customers = append(customers, Customer{
			ID: id, FirstName: rec[1], LastName: rec[2], Email: rec[3], Phone: rec[4],
			Address: rec[5], City: rec[6], State: rec[7], ZipCode: rec[8], Country: rec[9],
			RegistrationDate: registered,
		})
	}
	return customers, nil
}

func parseProducts(records [][]string) ([]Product, error) {
	products := make([]Product, 0, len(records))
	for _, rec := range records {
		if len(rec) != len(productHeader) {
			return nil, fmt.Errorf("expected %d columns, got %d", len(productHeader), len(rec))
		}
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, err
		}
		price, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, err
		}
		stock, err := strconv.Atoi(rec[5])
		if err != nil {
			return nil, err
		}
		created, err := time.Parse(dateLayout, rec[7])
		if err != nil {
			return nil, err
		}
		products = append(products, Product{
			ID: id, Name: rec[1], Category: rec[2], Description: rec[3],
			Price: price, StockQuantity: stock, Supplier: rec[6], CreatedDate: created,
		})
	}
	return products, nil
}

func parseOrders(records [][]string) ([]Order, error) {
	orders := make([]Order, 0, len(records))
	for _, rec := range records {
		if len(rec) != len(orderHeader) {
			return nil, fmt.Errorf("expected %d columns, got %d", len(orderHeader), len(rec))
		}
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, err
		}
		customerID, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, err
		}
		orderDate, err := time.Parse(dateLayout, rec[2])
		if err != nil {
			return nil, err
		}
		total, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, err
		}
		orders = append(orders, Order{
			ID: id, CustomerID: customerID, OrderDate: orderDate,
			TotalAmount: total, Status: OrderStatus(rec[4]), PaymentMethod: PaymentMethod(rec[5]),
		})
	}
	return orders, nil
}

func parseItems(records [][]string) ([]OrderItem, error) {
	items := make([]OrderItem, 0, len(records))
	for _, rec := range records {
		if len(rec) != len(itemHeader) {
			return nil, fmt.Errorf("expected %d columns, got %d", len(itemHeader), len(rec))
		}
		numbers := make([]int, 4)
		for i, idx := range []int{0, 1, 2, 3} {
			n, err := strconv.Atoi(rec[idx])
			if err != nil {
				return nil, err
			}
			numbers[i] = n
		}
		unitPrice, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, err
		}
		subtotal, err := strconv.ParseFloat(rec[5], 64)
		if err != nil {
			return nil, err
		}
		items = append(items, OrderItem{
			ID: numbers[0], OrderID: numbers[1], ProductID: numbers[2],
			Quantity: numbers[3], UnitPrice: unitPrice, Subtotal: subtotal,
		})
	}
	return items, nil
}

func parseReviews(records [][]string) ([]Review, error) {
	reviews := make([]Review, 0, len(records))
	for _, rec := range records {
		if len(rec) != len(reviewHeader) {
			return nil, fmt.Errorf("expected %d columns, got %d", len(reviewHeader), len(rec))
		}
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, err
		}
		productID, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, err
		}
		customerID, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, err
		}
		rating, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, err
		}
		reviewDate, err := time.Parse(dateLayout, rec[5])
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, Review{
			ID: id, ProductID: productID, CustomerID: customerID,
			Rating: rating, Text: rec[4], ReviewDate: reviewDate,
		})
	}
	return reviews, nil
}
