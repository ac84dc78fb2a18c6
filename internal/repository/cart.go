package repository

import (
	"context"

	"agrimart/internal/model"
)

type CartRepository interface {
	// Add inserts the product or increments the quantity already in the cart.
	// Add fails with ErrInsufficientStock when the merged quantity would
	// exceed the product's stock.
	Add(ctx context.Context, buyerPhone string, productID int64, qty float64) error
	// Quantity returns what the cart already holds of a product, 0 when absent.
	Quantity(ctx context.Context, buyerPhone string, productID int64) (float64, error)
	Items(ctx context.Context, buyerPhone string) ([]model.CartItem, error)
	Remove(ctx context.Context, buyerPhone string, productID int64) error
	Clear(ctx context.Context, buyerPhone string) error
}
