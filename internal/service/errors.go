package service

import (
	"database/sql"
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("not allowed for this account")
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrPhoneTaken         = errors.New("phone number is already registered")
	ErrOwnProduct         = errors.New("you cannot buy your own product")
	ErrUnavailable        = errors.New("product is not available")
	ErrInvalidTransition  = errors.New("order status change not allowed")
	ErrImagesDisabled     = errors.New("image storage is not configured")
	ErrNoImage            = errors.New("product has no image")
	ErrReaderNil          = errors.New("reader is nil")
)

// notFound maps a missing row to ErrNotFound and passes other errors through.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
