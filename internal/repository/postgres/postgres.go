// Package postgres implements the repository contracts on PostgreSQL through
// database/sql. Constraint violations are translated to repository errors.
package postgres

import (
	"database/sql"

	"agrimart/internal/repository"
)

// NewRepositories wires every Postgres repository onto one pool.
func NewRepositories(db *sql.DB) *repository.Repositories {
	return &repository.Repositories{
		Users:         NewUserPostgres(db),
		Products:      NewProductPostgres(db),
		Cart:          NewCartPostgres(db),
		Orders:        NewOrderPostgres(db),
		Schemes:       NewSchemePostgres(db),
		Prices:        NewPricePostgres(db),
		Addresses:     NewAddressPostgres(db),
		Notifications: NewNotificationPostgres(db),
	}
}
