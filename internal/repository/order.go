package repository

import (
	"context"

	"agrimart/internal/model"
)

type OrderRepository interface {
	// ListForUser returns orders where phone is the seller (role seller) or
	// the buyer (role buyer), newest first.
	ListForUser(ctx context.Context, phone string, role model.Role) ([]model.Order, error)

	// CreateFromCart turns every cart row of the buyer into an order,
	// decrements stock and empties the cart in one transaction.
	CreateFromCart(ctx context.Context, buyerPhone string, d model.CheckoutDetails) ([]model.Order, error)

	FindByNumber(ctx context.Context, orderNumber string) (*model.Order, error)

	// UpdateStatus moves a seller's order from one status to another, stamping
	// delivered_at on delivery. It returns sql.ErrNoRows when the order is no
	// longer in the from status.
	UpdateStatus(ctx context.Context, orderNumber, sellerPhone string, from, to model.OrderStatus) (*model.Order, error)

	// CountForSeller returns the number of orders in each status.
	CountForSeller(ctx context.Context, sellerPhone string) (map[model.OrderStatus]int, error)
}
