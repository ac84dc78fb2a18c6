package postgres

import (
	"fmt"

	"agrimart/internal/repository"
	"agrimart/internal/sqlerr"
)

// translate maps constraint violations onto repository sentinel errors.
// Anything else is returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	e := sqlerr.Classify(err)
	if e == nil {
		return err
	}
	switch e.Code {
	case sqlerr.UniqueViolation:
		return fmt.Errorf("%w: %s", repository.ErrDuplicate, e.FriendlyMessage())
	case sqlerr.ForeignKeyViolation:
		return fmt.Errorf("%w: %s", repository.ErrReferenceNotFound, e.FriendlyMessage())
	case sqlerr.CheckViolation, sqlerr.NotNullViolation:
		return fmt.Errorf("%w: %s", repository.ErrConstraint, e.FriendlyMessage())
	default:
		return err
	}
}
