package domain

import "time"

// Payment methods accepted at checkout.
const (
	PaymentCreditCard     = "credit_card"
	PaymentDebitCard      = "debit_card"
	PaymentUPI            = "upi"
	PaymentCashOnDelivery = "cash_on_delivery"
)

// OrderStatusPending is the lifecycle start state for every new order. Later
// transitions happen outside this service.
const OrderStatusPending = "pending"

type Order struct {
	ID              int       `json:"id"`
	UserID          int       `json:"userId"`
	TotalAmount     int64     `json:"totalAmount"`
	Status          string    `json:"status"`
	ShippingAddress Address   `json:"shippingAddress"`
	PaymentMethod   string    `json:"paymentMethod"`
	CreatedAt       time.Time `json:"createdAt"`
}

// OrderItem captures the unit price at time of purchase so later catalog
// price changes do not alter historical orders. Product details are re-joined
// from the catalog by productId at read time.
type OrderItem struct {
	ID        int   `json:"id"`
	OrderID   int   `json:"orderId"`
	ProductID int   `json:"productId"`
	Quantity  int   `json:"quantity"`
	Price     int64 `json:"price"`
}

type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

// ValidPaymentMethod reports whether m is one of the accepted payment methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCreditCard, PaymentDebitCard, PaymentUPI, PaymentCashOnDelivery:
		return true
	}
	return false
}
