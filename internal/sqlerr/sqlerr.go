// Package sqlerr classifies PostgreSQL driver errors so repositories can turn
// constraint violations into domain errors and readable messages.
package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Code is a coarse category of SQLSTATE.
type Code string

const (
	Other               Code = "other"
	UniqueViolation     Code = "unique_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	NotNullViolation    Code = "not_null_violation"
	CheckViolation      Code = "check_violation"
)

var sqlStates = map[string]Code{
	"23505": UniqueViolation,
	"23503": ForeignKeyViolation,
	"23502": NotNullViolation,
	"23514": CheckViolation,
}

// Error is a classified database error. It unwraps to the driver error.
type Error struct {
	Code           Code
	SQLState       string
	Message        string
	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s): %s", e.Code, e.SQLState, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// Classify extracts a *pgconn.PgError from err. It returns nil when err did
// not come from the PostgreSQL server.
func Classify(err error) *Error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	code, ok := sqlStates[pgErr.Code]
	if !ok {
		code = Other
	}
	return &Error{
		Code:           code,
		SQLState:       pgErr.Code,
		Message:        pgErr.Message,
		TableName:      pgErr.TableName,
		ColumnName:     pgErr.ColumnName,
		ConstraintName: pgErr.ConstraintName,
		driverErr:      pgErr,
	}
}

// FriendlyMessage renders a message safe to show a user.
func (e *Error) FriendlyMessage() string {
	entity := entityName(e.TableName)
	switch e.Code {
	case UniqueViolation:
		if col := columnFromConstraint(e.ConstraintName); col != "" {
			return fmt.Sprintf("A %s with this %s already exists", entity, humanize(col))
		}
		return fmt.Sprintf("A %s with this identifier already exists", entity)
	case ForeignKeyViolation:
		if col := columnFromConstraint(e.ConstraintName); col != "" {
			return fmt.Sprintf("The referenced %s does not exist", humanize(col))
		}
		return "The referenced record does not exist"
	case NotNullViolation:
		if e.ColumnName != "" {
			return fmt.Sprintf("The %s is required", humanize(e.ColumnName))
		}
		return "A required field is missing"
	case CheckViolation:
		if col := columnFromConstraint(e.ConstraintName); col != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", humanize(col))
		}
		return "One or more values do not meet required conditions"
	default:
		return "An error occurred while processing your request"
	}
}

func entityName(table string) string {
	if table == "" {
		return "record"
	}
	if strings.HasSuffix(table, "s") && len(table) > 1 {
		table = table[:len(table)-1]
	}
	return strings.ToLower(humanize(table))
}

// columnFromConstraint reads the column out of PostgreSQL's default
// constraint names: users_phone_key, products_price_check, orders_buyer_phone_fkey.
func columnFromConstraint(name string) string {
	for _, suffix := range []string{"_key", "_check", "_fkey"} {
		if strings.HasSuffix(name, suffix) {
			trimmed := strings.TrimSuffix(name, suffix)
			if i := strings.Index(trimmed, "_"); i >= 0 && i < len(trimmed)-1 {
				return trimmed[i+1:]
			}
		}
	}
	return ""
}

func humanize(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}
