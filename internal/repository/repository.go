// Package repository declares the persistence contracts for the marketplace.
// Implementations live in subpackages (postgres) and hold no business rules
// beyond what the schema enforces.
package repository

import "errors"

var (
	// ErrDuplicate is returned when a unique key (phone, order number) already exists.
	ErrDuplicate = errors.New("record already exists")
	// ErrReferenceNotFound is returned when a foreign key points at a missing row.
	ErrReferenceNotFound = errors.New("referenced record does not exist")
	// ErrConstraint is returned when a CHECK or NOT NULL constraint rejects a value.
	ErrConstraint = errors.New("value violates a constraint")
	// ErrNothingToUpdate is returned by partial updates with no fields set.
	ErrNothingToUpdate = errors.New("nothing to update")
	// ErrEmptyCart is returned by checkout when the buyer's cart has no rows.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInsufficientStock is returned by checkout when a cart quantity exceeds stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}

// Repositories groups one implementation of every contract.
type Repositories struct {
	Users         UserRepository
	Products      ProductRepository
	Cart          CartRepository
	Orders        OrderRepository
	Schemes       SchemeRepository
	Prices        PriceRepository
	Addresses     AddressRepository
	Notifications NotificationRepository
}
