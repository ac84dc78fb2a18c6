package repository

import (
	"context"

	"agrimart/internal/model"
)

type PriceRepository interface {
	Record(ctx context.Context, p *model.PricePoint) (*model.PricePoint, error)
	// Latest returns sql.ErrNoRows when nothing was recorded for the product.
	Latest(ctx context.Context, productName string) (*model.PricePoint, error)
	History(ctx context.Context, productName string, limit int) ([]model.PricePoint, error)
	// SellersListing returns the phones of sellers with an active product of that name.
	SellersListing(ctx context.Context, productName string) ([]string, error)
}
