package model

import "time"

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Categories and Units are the values offered when listing produce.
var (
	Categories = []string{"Vegetables", "Fruits", "Grains", "Pulses", "Spices", "Dairy", "Other"}
	Units      = []string{"kg", "quintal", "ton", "litre", "dozen", "piece", "bundle"}
)

// Product is a seller's listing.
type Product struct {
	ID          int64     `json:"id"`
	SellerPhone string    `json:"seller_phone"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Variety     string    `json:"variety"`
	Unit        string    `json:"unit"`
	Price       float64   `json:"price"`
	StockQty    float64   `json:"stock_qty"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductListing is a product joined with its seller for the marketplace.
type ProductListing struct {
	Product
	SellerName     string `json:"seller_name"`
	SellerLocation string `json:"seller_location"`
}
