package postgres

import (
	"context"
	"database/sql"

	"agrimart/internal/model"
	"agrimart/internal/repository"
)

// AddressPostgres stores delivery addresses.
type AddressPostgres struct {
	db *sql.DB
}

func NewAddressPostgres(db *sql.DB) *AddressPostgres {
	return &AddressPostgres{db: db}
}

var _ repository.AddressRepository = (*AddressPostgres)(nil)

const addressColumns = `id, user_phone, label, address_line1, address_line2, city, state, pincode, is_default, created_at`

func scanAddress(row interface{ Scan(...any) error }) (*model.Address, error) {
	var a model.Address
	if err := row.Scan(
		&a.ID,
		&a.UserPhone,
		&a.Label,
		&a.AddressLine1,
		&a.AddressLine2,
		&a.City,
		&a.State,
		&a.Pincode,
		&a.IsDefault,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AddressPostgres) Create(ctx context.Context, a *model.Address) (*model.Address, error) {
	const q = `
		INSERT INTO addresses (user_phone, label, address_line1, address_line2, city, state, pincode, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + addressColumns
	out, err := scanAddress(r.db.QueryRowContext(ctx, q,
		a.UserPhone,
		a.Label,
		a.AddressLine1,
		a.AddressLine2,
		a.City,
		a.State,
		a.Pincode,
		a.IsDefault,
	))
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// ListByUser returns the default address first.
func (r *AddressPostgres) ListByUser(ctx context.Context, userPhone string) ([]model.Address, error) {
	const q = `
		SELECT ` + addressColumns + `
		FROM addresses
		WHERE user_phone = $1
		ORDER BY is_default DESC, created_at, id
	`
	rows, err := r.db.QueryContext(ctx, q, userPhone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Address, 0)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// SetDefault flips every address of the user in one statement so exactly one
// row ends up as default. sql.ErrNoRows means id is not the user's address.
func (r *AddressPostgres) SetDefault(ctx context.Context, userPhone string, id int64) error {
	const q = `
		UPDATE addresses
		SET is_default = (id = $2)
		WHERE user_phone = $1
		  AND EXISTS (SELECT 1 FROM addresses WHERE id = $2 AND user_phone = $1)
	`
	return expectAffected(r.db.ExecContext(ctx, q, userPhone, id))
}

func (r *AddressPostgres) Delete(ctx context.Context, userPhone string, id int64) error {
	const q = `DELETE FROM addresses WHERE id = $1 AND user_phone = $2`
	return expectAffected(r.db.ExecContext(ctx, q, id, userPhone))
}
