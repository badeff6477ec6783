package dataset

import (
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "Credit Card"
	PaymentDebitCard      PaymentMethod = "Debit Card"
	PaymentPayPal         PaymentMethod = "PayPal"
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
)

// Categories is the closed set products are drawn from.
var Categories = []string{"Electronics", "Clothing", "Home & Garden", "Sports", "Books"}

var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

var PaymentMethods = []PaymentMethod{
	PaymentCreditCard,
	PaymentDebitCard,
	PaymentPayPal,
	PaymentCashOnDelivery,
}

type Customer struct {
	ID               int
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Address          string
	City             string
	State            string
	ZipCode          string
	Country          string
	RegistrationDate time.Time
}

type Product struct {
	ID            int
	Name          string
	Category      string
	Description   string
	Price         float64
	StockQuantity int
	Supplier      string
	CreatedDate   time.Time
}

type Order struct {
	ID            int
	CustomerID    int
	OrderDate     time.Time
	TotalAmount   float64
	Status        OrderStatus
	PaymentMethod PaymentMethod
}

// OrderItem snapshots the product price at allocation time; UnitPrice
// never changes after the item is written.
type OrderItem struct {
	ID        int
	OrderID   int
	ProductID int
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

type Review struct {
	ID         int
	ProductID  int
	CustomerID int
	Rating     int
	Text       string
	ReviewDate time.Time
}

// Dataset holds the five entity sets in dependency order.
type Dataset struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Reviews    []Review
}
