package model

import "time"

// CartItem is a product in a buyer's cart with display fields joined in.
type CartItem struct {
	ID          int64     `json:"id"`
	BuyerPhone  string    `json:"buyer_phone"`
	ProductID   int64     `json:"product_id"`
	Quantity    float64   `json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Unit        string    `json:"unit"`
	SellerName  string    `json:"seller_name"`
	SellerPhone string    `json:"seller_phone"`
}

// LineTotal is price times quantity.
func (c CartItem) LineTotal() float64 {
	return c.Price * c.Quantity
}
