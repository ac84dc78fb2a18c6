package postgres

import (
	"context"
	"database/sql"

	"agrimart/internal/model"
	"agrimart/internal/repository"
)

// SchemePostgres reads the government schemes catalogue.
type SchemePostgres struct {
	db *sql.DB
}

func NewSchemePostgres(db *sql.DB) *SchemePostgres {
	return &SchemePostgres{db: db}
}

var _ repository.SchemeRepository = (*SchemePostgres)(nil)

func (r *SchemePostgres) ListActive(ctx context.Context) ([]model.Scheme, error) {
	const q = `
		SELECT id, name, description, benefits, eligibility, how_to_apply, department,
		       website_url, contact_info, is_active, created_at
		FROM govt_schemes
		WHERE is_active
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Scheme, 0)
	for rows.Next() {
		var s model.Scheme
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Description,
			&s.Benefits,
			&s.Eligibility,
			&s.HowToApply,
			&s.Department,
			&s.WebsiteURL,
			&s.ContactInfo,
			&s.IsActive,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
