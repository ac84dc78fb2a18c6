package model

import "time"

// OrderStatus tracks an order from placement to delivery.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderShipped, OrderCancelled},
	OrderShipped:   {OrderDelivered},
}

// CanTransition reports whether a seller may move an order from s to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order is one product line purchased by a buyer from a seller.
type Order struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"order_number"`
	BuyerPhone      string      `json:"buyer_phone"`
	SellerPhone     string      `json:"seller_phone"`
	ProductID       int64       `json:"product_id"`
	Quantity        float64     `json:"quantity"`
	UnitPrice       float64     `json:"unit_price"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `json:"status"`
	DeliveryAddress string      `json:"delivery_address"`
	PaymentMethod   string      `json:"payment_method"`
	Notes           string      `json:"notes"`
	CreatedAt       time.Time   `json:"created_at"`
	DeliveredAt     *time.Time  `json:"delivered_at,omitempty"`

	// Populated by listings: the product name and the name of the other party
	// (the buyer for a seller's view, the seller for a buyer's view).
	ProductName      string `json:"product_name,omitempty"`
	CounterpartyName string `json:"counterparty_name,omitempty"`
}

// CheckoutDetails are the buyer-supplied fields copied onto every order.
type CheckoutDetails struct {
	DeliveryAddress string
	PaymentMethod   string
	Notes           string
}
