package repository

import (
	"context"

	"agrimart/internal/model"
)

// ProductRepository persists seller listings.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)

	// ListBySeller returns every product of a seller, newest first.
	ListBySeller(ctx context.Context, sellerPhone string) ([]model.Product, error)

	// ListActive returns all active products from all sellers, newest first.
	ListActive(ctx context.Context) ([]model.Product, error)

	// ListAvailable returns active, in-stock products joined with their seller.
	// A limit of zero returns everything.
	ListAvailable(ctx context.Context, limit int) ([]model.ProductListing, error)

	// Search matches term against product name and category, ordered by name.
	Search(ctx context.Context, term string) ([]model.ProductListing, error)

	// Update rewrites the editable fields of a product owned by p.SellerPhone.
	Update(ctx context.Context, p *model.Product) (*model.Product, error)

	SetImagePath(ctx context.Context, id int64, sellerPhone, path string) error

	// Delete deactivates a product owned by sellerPhone. Orders keep referencing it.
	Delete(ctx context.Context, id int64, sellerPhone string) error

	// CountBySeller returns total and active listing counts for the dashboard.
	CountBySeller(ctx context.Context, sellerPhone string) (total, active int, err error)
}
