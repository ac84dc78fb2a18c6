package postgres

import (
	"context"
	"database/sql"

	"agrimart/internal/model"
	"agrimart/internal/repository"
)

// PricePostgres stores market price observations.
type PricePostgres struct {
	db *sql.DB
}

func NewPricePostgres(db *sql.DB) *PricePostgres {
	return &PricePostgres{db: db}
}

var _ repository.PriceRepository = (*PricePostgres)(nil)

const priceColumns = `id, product_name, market_price, source, location, recorded_at`

func scanPrice(row interface{ Scan(...any) error }) (*model.PricePoint, error) {
	var p model.PricePoint
	if err := row.Scan(&p.ID, &p.ProductName, &p.MarketPrice, &p.Source, &p.Location, &p.RecordedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// Record inserts an observation, applying the default source and location.
func (r *PricePostgres) Record(ctx context.Context, p *model.PricePoint) (*model.PricePoint, error) {
	const q = `
		INSERT INTO price_history (product_name, market_price, source, location)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + priceColumns
	source := p.Source
	if source == "" {
		source = model.DefaultPriceSource
	}
	location := p.Location
	if location == "" {
		location = model.DefaultPriceLocation
	}
	out, err := scanPrice(r.db.QueryRowContext(ctx, q, p.ProductName, p.MarketPrice, source, location))
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *PricePostgres) Latest(ctx context.Context, productName string) (*model.PricePoint, error) {
	const q = `
		SELECT ` + priceColumns + `
		FROM price_history
		WHERE product_name = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1
	`
	return scanPrice(r.db.QueryRowContext(ctx, q, productName))
}

func (r *PricePostgres) History(ctx context.Context, productName string, limit int) ([]model.PricePoint, error) {
	const q = `
		SELECT ` + priceColumns + `
		FROM price_history
		WHERE product_name = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, productName, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PricePoint, 0)
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func (r *PricePostgres) SellersListing(ctx context.Context, productName string) ([]string, error) {
	const q = `
		SELECT DISTINCT seller_phone
		FROM products
		WHERE status = 'active' AND lower(name) = lower($1)
		ORDER BY seller_phone
	`
	rows, err := r.db.QueryContext(ctx, q, productName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var phones []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		phones = append(phones, p)
	}
	return phones, rows.Err()
}
