package repository

import (
	"context"

	"agrimart/internal/model"
)

// UserRepository persists accounts keyed by phone number.
type UserRepository interface {
	// Create inserts a user. A taken phone number yields ErrDuplicate.
	Create(ctx context.Context, u *model.User) (*model.User, error)

	// FindByPhone returns sql.ErrNoRows when no account uses the phone.
	FindByPhone(ctx context.Context, phone string) (*model.User, error)

	// Update applies the non-nil fields of upd and bumps updated_at.
	// It returns ErrNothingToUpdate for an empty update and sql.ErrNoRows for an unknown phone.
	Update(ctx context.Context, phone string, upd model.UserUpdate) (*model.User, error)

	List(ctx context.Context, pq PageQuery) (*PageResult[model.User], error)
}
