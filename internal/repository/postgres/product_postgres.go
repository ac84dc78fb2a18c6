package postgres

import (
	"context"
	"database/sql"

	"agrimart/internal/model"
	"agrimart/internal/repository"
)

// ProductPostgres is a PostgreSQL implementation of repository.ProductRepository.
type ProductPostgres struct {
	db *sql.DB
}

// NewProductPostgres creates a new ProductPostgres repository.
func NewProductPostgres(db *sql.DB) *ProductPostgres {
	return &ProductPostgres{db: db}
}

var _ repository.ProductRepository = (*ProductPostgres)(nil)

const productColumns = `id, seller_phone, name, category, variety, unit, price, stock_qty, description, image_path, status, created_at, updated_at`

const listingColumns = `p.id, p.seller_phone, p.name, p.category, p.variety, p.unit, p.price, p.stock_qty,
		p.description, p.image_path, p.status, p.created_at, p.updated_at,
		u.name, COALESCE(u.location, '')`

func productDest(p *model.Product) []any {
	return []any{
		&p.ID,
		&p.SellerPhone,
		&p.Name,
		&p.Category,
		&p.Variety,
		&p.Unit,
		&p.Price,
		&p.StockQty,
		&p.Description,
		&p.ImagePath,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}

func scanProduct(row interface{ Scan(...any) error }) (*model.Product, error) {
	var p model.Product
	if err := row.Scan(productDest(&p)...); err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows *sql.Rows) ([]model.Product, error) {
	defer rows.Close()
	items := make([]model.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

func collectListings(rows *sql.Rows) ([]model.ProductListing, error) {
	defer rows.Close()
	items := make([]model.ProductListing, 0)
	for rows.Next() {
		var l model.ProductListing
		dest := append(productDest(&l.Product), &l.SellerName, &l.SellerLocation)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// Create inserts a new active product and returns the stored record.
func (r *ProductPostgres) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	const q = `
		INSERT INTO products (seller_phone, name, category, variety, unit, price, stock_qty, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + productColumns
	row := r.db.QueryRowContext(ctx, q,
		p.SellerPhone,
		p.Name,
		p.Category,
		p.Variety,
		p.Unit,
		p.Price,
		p.StockQty,
		p.Description,
	)
	out, err := scanProduct(row)
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// FindByID fetches a single product by its ID.
func (r *ProductPostgres) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.db.QueryRowContext(ctx, q, id))
}

func (r *ProductPostgres) ListBySeller(ctx context.Context, sellerPhone string) ([]model.Product, error) {
	const q = `
		SELECT ` + productColumns + `
		FROM products
		WHERE seller_phone = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, sellerPhone)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *ProductPostgres) ListActive(ctx context.Context) ([]model.Product, error) {
	const q = `
		SELECT ` + productColumns + `
		FROM products
		WHERE status = 'active'
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

func (r *ProductPostgres) ListAvailable(ctx context.Context, limit int) ([]model.ProductListing, error) {
	const base = `
		SELECT ` + listingColumns + `
		FROM products p
		JOIN users u ON p.seller_phone = u.phone
		WHERE p.stock_qty > 0 AND p.status = 'active'
		ORDER BY p.created_at DESC, p.id DESC
	`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, base+` LIMIT $1`, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, base)
	}
	if err != nil {
		return nil, err
	}
	return collectListings(rows)
}

func (r *ProductPostgres) Search(ctx context.Context, term string) ([]model.ProductListing, error) {
	const q = `
		SELECT ` + listingColumns + `
		FROM products p
		JOIN users u ON p.seller_phone = u.phone
		WHERE p.stock_qty > 0 AND p.status = 'active'
		  AND (p.name ILIKE $1 OR p.category ILIKE $1)
		ORDER BY p.name, p.id
	`
	rows, err := r.db.QueryContext(ctx, q, "%"+escapeLike(term)+"%")
	if err != nil {
		return nil, err
	}
	return collectListings(rows)
}

// Update rewrites the editable fields; sql.ErrNoRows means the product is
// missing or belongs to another seller.
func (r *ProductPostgres) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	const q = `
		UPDATE products
		SET name = $1, category = $2, variety = $3, unit = $4, price = $5,
		    stock_qty = $6, description = $7, status = $8, updated_at = now()
		WHERE id = $9 AND seller_phone = $10
		RETURNING ` + productColumns
	row := r.db.QueryRowContext(ctx, q,
		p.Name,
		p.Category,
		p.Variety,
		p.Unit,
		p.Price,
		p.StockQty,
		p.Description,
		p.Status,
		p.ID,
		p.SellerPhone,
	)
	out, err := scanProduct(row)
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *ProductPostgres) SetImagePath(ctx context.Context, id int64, sellerPhone, path string) error {
	const q = `UPDATE products SET image_path = $1, updated_at = now() WHERE id = $2 AND seller_phone = $3`
	return expectAffected(r.db.ExecContext(ctx, q, path, id, sellerPhone))
}

func (r *ProductPostgres) Delete(ctx context.Context, id int64, sellerPhone string) error {
	const q = `UPDATE products SET status = 'inactive', updated_at = now() WHERE id = $1 AND seller_phone = $2`
	return expectAffected(r.db.ExecContext(ctx, q, id, sellerPhone))
}

func (r *ProductPostgres) CountBySeller(ctx context.Context, sellerPhone string) (int, int, error) {
	const q = `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'active')
		FROM products
		WHERE seller_phone = $1
	`
	var total, active int
	if err := r.db.QueryRowContext(ctx, q, sellerPhone).Scan(&total, &active); err != nil {
		return 0, 0, err
	}
	return total, active, nil
}
