package repository

import (
	"context"

	"agrimart/internal/model"
)

type AddressRepository interface {
	Create(ctx context.Context, a *model.Address) (*model.Address, error)
	ListByUser(ctx context.Context, userPhone string) ([]model.Address, error)
	// SetDefault marks one address as default and clears the flag on the others.
	SetDefault(ctx context.Context, userPhone string, id int64) error
	Delete(ctx context.Context, userPhone string, id int64) error
}
