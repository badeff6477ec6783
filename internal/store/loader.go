package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"ecommerce-dataset/internal/database"
	"ecommerce-dataset/internal/dataset"
)

// insertBatchSize bounds how many rows go into one multi-VALUES insert.
const insertBatchSize = 500

// TableNames in dependency order.
var TableNames = []string{"customers", "products", "orders", "order_items", "reviews"}

type Loader struct {
	db  database.Driver
	log *zap.Logger
}

func NewLoader(db database.Driver, log *zap.Logger) *Loader {
	return &Loader{db: db, log: log}
}

// Recreate drops any existing tables in reverse dependency order and
// builds the schema and foreign-key indexes from scratch, so repeated
// runs replace the snapshot instead of appending to it.
func (l *Loader) Recreate(ctx context.Context) error {
	for i := len(tables) - 1; i >= 0; i-- {
		if err := l.db.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s;", tables[i].name)); err != nil {
			return fmt.Errorf("dropping table %s: %w", tables[i].name, err)
		}
	}
	for _, table := range tables {
		l.log.Info("creating table", zap.String("table", table.name))
		if err := l.db.Exec(ctx, table.ddl); err != nil {
			return fmt.Errorf("creating table %s: %w", table.name, err)
		}
	}
	for _, idx := range indexes {
		if err := l.db.Exec(ctx, idx); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}
	return nil
}

// Load inserts the five entity sets in dependency order inside a single
// transaction; any constraint violation rolls back the whole run.
func (l *Loader) Load(ctx context.Context, ds *dataset.Dataset) error {
	return l.db.ExecuteTx(ctx, func(tx database.Tx) error {
		inserts := []struct {
			table   string
			columns []string
			rows    [][]any
		}{
			{"customers", []string{"customer_id", "first_name", "last_name", "email", "phone", "address", "city", "state", "zip_code", "country", "registration_date"}, customerValues(ds.Customers)},
			{"products", []string{"product_id", "product_name", "category", "description", "price", "stock_quantity", "supplier", "created_date"}, productValues(ds.Products)},
			{"orders", []string{"order_id", "customer_id", "order_date", "total_amount", "status", "payment_method"}, orderValues(ds.Orders)},
			{"order_items", []string{"order_item_id", "order_id", "product_id", "quantity", "unit_price", "subtotal"}, itemValues(ds.OrderItems)},
			{"reviews", []string{"review_id", "product_id", "customer_id", "rating", "review_text", "review_date"}, reviewValues(ds.Reviews)},
		}
		for _, ins := range inserts {
			l.log.Info("inserting rows", zap.String("table", ins.table), zap.Int("rows", len(ins.rows)))
			if err := insertRows(ctx, tx, ins.table, ins.columns, ins.rows); err != nil {
				return fmt.Errorf("loading %s: %w", ins.table, err)
			}
		}
		return nil
	})
}

// insertRows issues multi-VALUES inserts in batches.
func insertRows(ctx context.Context, tx database.Tx, table string, columns []string, rows [][]any) error {
	for start := 0; start < len(rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]

		groups := make([]string, len(batch))
		args := make([]any, 0, len(batch)*len(columns))
		for i, row := range batch {
			groups[i] = database.Placeholders(len(columns))
			args = append(args, row...)
		}
		stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s;",
			table, strings.Join(columns, ", "), strings.Join(groups, ", "))
		if err := tx.Exec(ctx, stmt, args...); err != nil {
			return err
		}
	}
	return nil
}

// Counts returns per-table row counts in dependency order.
func (l *Loader) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(TableNames))
	for _, table := range TableNames {
		_, rows, err := l.db.Select(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s;", table))
		if err != nil {
			return nil, fmt.Errorf("counting %s: %w", table, err)
		}
		if len(rows) != 1 || len(rows[0]) != 1 {
			return nil, fmt.Errorf("counting %s: unexpected result shape", table)
		}
		n, err := toInt64(rows[0][0])
		if err != nil {
			return nil, fmt.Errorf("counting %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	case string:
		return strconv.ParseInt(n, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected count type %T", v)
	}
}

func customerValues(customers []dataset.Customer) [][]any {
	rows := make([][]any, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []any{
			c.ID, c.FirstName, c.LastName, c.Email, c.Phone,
			c.Address, c.City, c.State, c.ZipCode, c.Country, c.RegistrationDate,
		})
	}
	return rows
}

func productValues(products []dataset.Product) [][]any {
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		rows = append(rows, []any{
			p.ID, p.Name, p.Category, p.Description,
			p.Price, p.StockQuantity, p.Supplier, p.CreatedDate,
		})
	}
	return rows
}

func orderValues(orders []dataset.Order) [][]any {
	rows := make([][]any, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []any{
			o.ID, o.CustomerID, o.OrderDate, o.TotalAmount,
			string(o.Status), string(o.PaymentMethod),
		})
	}
	return rows
}

func itemValues(items []dataset.OrderItem) [][]any {
	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{
			it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.Subtotal,
		})
	}
	return rows
}

func reviewValues(reviews []dataset.Review) [][]any {
	rows := make([][]any, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, []any{
			r.ID, r.ProductID, r.CustomerID, r.Rating, r.Text, r.ReviewDate,
		})
	}
	return rows
}
