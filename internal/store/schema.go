package store

// Tables in dependency order: loads run forward, drops run backward so
// foreign keys never dangle. The DDL sticks to types both postgres and
// mysql accept.
var tables = []struct {
	name string
	ddl  string
}{
	{
		name: "customers",
		ddl: `
		CREATE TABLE customers (
			customer_id INT PRIMARY KEY,
			first_name VARCHAR(255) NOT NULL,
			last_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			phone VARCHAR(255),
			address VARCHAR(255),
			city VARCHAR(255),
			state VARCHAR(255),
			zip_code VARCHAR(255),
			country VARCHAR(255),
			registration_date DATE
		);
	`,
	},
	{
		name: "products",
		ddl: `
		CREATE TABLE products (
			product_id INT PRIMARY KEY,
			product_name VARCHAR(255) NOT NULL,
			category VARCHAR(255) NOT NULL,
			description TEXT,
			price DECIMAL(10, 2) NOT NULL,
			stock_quantity INT,
			supplier VARCHAR(255),
			created_date DATE
		);
	`,
	},
	{
		name: "orders",
		ddl: `
		CREATE TABLE orders (
			order_id INT PRIMARY KEY,
			customer_id INT NOT NULL,
			order_date DATE NOT NULL,
			total_amount DECIMAL(10, 2),
			status VARCHAR(255),
			payment_method VARCHAR(255),
			FOREIGN KEY (customer_id) REFERENCES customers(customer_id)
		);
	`,
	},
	{
		name: "order_items",
		ddl: `
		CREATE TABLE order_items (
			order_item_id INT PRIMARY KEY,
			order_id INT NOT NULL,
			product_id INT NOT NULL,
			quantity INT NOT NULL,
			unit_price DECIMAL(10, 2) NOT NULL,
			subtotal DECIMAL(10, 2) NOT NULL,
			FOREIGN KEY (order_id) REFERENCES orders(order_id),
			FOREIGN KEY (product_id) REFERENCES products(product_id)
		);
	`,
	},
	{
		name: "reviews",
		ddl: `
		CREATE TABLE reviews (
			review_id INT PRIMARY KEY,
			product_id INT NOT NULL,
			customer_id INT NOT NULL,
			rating INT CHECK (rating BETWEEN 1 AND 5),
			review_text TEXT,
			review_date DATE,
			FOREIGN KEY (product_id) REFERENCES products(product_id),
			FOREIGN KEY (customer_id) REFERENCES customers(customer_id)
		);
	`,
	},
}

// One index per foreign-key column.
var indexes = []string{
	"CREATE INDEX idx_orders_customer ON orders (customer_id);",
	"CREATE INDEX idx_order_items_order ON order_items (order_id);",
	"CREATE INDEX idx_order_items_product ON order_items (product_id);",
	"CREATE INDEX idx_reviews_product ON reviews (product_id);",
	"CREATE INDEX idx_reviews_customer ON reviews (customer_id);",
}
