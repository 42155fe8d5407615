package models

import "time"

// TaxRate is the flat sales tax applied to every order subtotal.
const TaxRate = 0.08

// PaymentStatus tracks how much of a sale has been settled.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentOverdue PaymentStatus = "Overdue"
	PaymentPartial PaymentStatus = "Partial"
)

// ValidPaymentStatus reports whether s is a known payment status.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPaid, PaymentPending, PaymentOverdue, PaymentPartial:
		return true
	}
	return false
}

// OrderStatus tracks the fulfilment state of a sale.
type OrderStatus string

const (
	OrderCompleted  OrderStatus = "Completed"
	OrderProcessing OrderStatus = "Processing"
	OrderPending    OrderStatus = "Pending"
	OrderCancelled  OrderStatus = "Cancelled"
)

// DefaultPaymentMethod is assumed when a sale arrives without one.
const DefaultPaymentMethod = "Cash"

// SaleItem is one order line. Total is always Price times Quantity.
type SaleItem struct {
	ProductID   int     `bson:"product_id" json:"productId"`
	ProductName string  `bson:"product_name" json:"productName"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	Price       float64 `bson:"price" json:"price"`
	Total       float64 `bson:"total" json:"total"`
}

// Sale is one customer order. CustomerName is a denormalized snapshot taken
// at order time; CustomerID is a weak back-reference with no cascade.
type Sale struct {
	ID            int           `bson:"_id" json:"Id"`
	CustomerID    int           `bson:"customer_id" json:"customerId"`
	CustomerName  string        `bson:"customer_name" json:"customerName"`
	Items         []SaleItem    `bson:"items" json:"items"`
	Subtotal      float64       `bson:"subtotal" json:"subtotal"`
	Tax           float64       `bson:"tax" json:"tax"`
	Discount      float64       `bson:"discount" json:"discount"`
	Total         float64       `bson:"total" json:"total"`
	PaymentMethod string        `bson:"payment_method" json:"paymentMethod"`
	PaymentStatus PaymentStatus `bson:"payment_status" json:"paymentStatus"`
	OrderDate     time.Time     `bson:"order_date" json:"orderDate"`
	Status        OrderStatus   `bson:"status" json:"status"`
	Notes         string        `bson:"notes" json:"notes"`
}

// Totalize recomputes every line total plus the order subtotal, tax and
// grand total for the given discount. It must be called whenever the items
// or the discount change.
func Totalize(items []SaleItem, discount float64) (lines []SaleItem, subtotal, tax, total float64) {
	lines = make([]SaleItem, len(items))
	for i, item := range items {
		item.Total = item.Price * float64(item.Quantity)
		lines[i] = item
		subtotal += item.Total
	}
	tax = subtotal * TaxRate
	total = subtotal + tax - discount
	return lines, subtotal, tax, total
}
