package order

import "time"

// Status is a free-form label on the wire; the admin endpoint accepts any
// non-empty string. The known progression is published for clients.
type Status string

const (
	StatusPlaced         Status = "Order placed"
	StatusProcessing     Status = "Processing"
	StatusPaid           Status = "Paid"
	StatusPacking        Status = "Packing"
	StatusShipped        Status = "Shipped"
	StatusOutForDelivery Status = "Out for delivery"
	StatusDelivered      Status = "Delivered"
)

type PaymentMethod string

const (
	PaymentCOD      PaymentMethod = "COD"
	PaymentStripe   PaymentMethod = "Stripe"
	PaymentRazorpay PaymentMethod = "Razorpay"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCOD, PaymentStripe, PaymentRazorpay:
		return true
	default:
		return false
	}
}

type Address struct {
	FirstName string
	LastName  string
	Email     string
	Street    string
	City      string
	State     string
	Zipcode   string
	Country   string
	Phone     string
}

// LineItem is a snapshot of a catalog product taken at checkout time.
type LineItem struct {
	ProductID string
	Name      string
	Price     float64
	Size      string
	Quantity  int64
	Image     []string
}

// Order is created once per checkout attempt. Items, Address and Amount are
// fixed at creation; only Payment and Status change afterwards.
type Order struct {
	ID            string
	UserID        string
	Items         []LineItem
	Address       Address
	Amount        float64
	PaymentMethod PaymentMethod
	Payment       bool
	Status        Status
	Date          time.Time
}
