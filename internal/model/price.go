package model

import "time"

const (
	DefaultPriceSource   = "market_api"
	DefaultPriceLocation = "Hamirpur"
)

// PricePoint is one recorded market price for a commodity.
type PricePoint struct {
	ID          int64     `json:"id"`
	ProductName string    `json:"product_name"`
	MarketPrice float64   `json:"market_price"`
	Source      string    `json:"source"`
	Location    string    `json:"location"`
	RecordedAt  time.Time `json:"recorded_at"`
}
