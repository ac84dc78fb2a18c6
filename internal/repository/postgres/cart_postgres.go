package postgres

import (
	"context"
	"database/sql"
	"errors"

	"agrimart/internal/database"
	"agrimart/internal/model"
	"agrimart/internal/repository"
)

// CartPostgres is a PostgreSQL implementation of repository.CartRepository.
type CartPostgres struct {
	db *sql.DB
}

func NewCartPostgres(db *sql.DB) *CartPostgres {
	return &CartPostgres{db: db}
}

var _ repository.CartRepository = (*CartPostgres)(nil)

// Add relies on UNIQUE (buyer_phone, product_id) to merge repeated adds. The
// merge only happens while the total stays within stock, so concurrent adds
// cannot push the cart past what the seller has.
func (r *CartPostgres) Add(ctx context.Context, buyerPhone string, productID int64, qty float64) error {
	const q = `
		INSERT INTO cart (buyer_phone, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (buyer_phone, product_id)
		DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity
		WHERE cart.quantity + EXCLUDED.quantity <= (SELECT stock_qty FROM products WHERE id = EXCLUDED.product_id)
	`
	res, err := r.db.ExecContext(ctx, q, buyerPhone, productID, qty)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrInsufficientStock
	}
	return nil
}

func (r *CartPostgres) Quantity(ctx context.Context, buyerPhone string, productID int64) (float64, error) {
	const q = `SELECT quantity FROM cart WHERE buyer_phone = $1 AND product_id = $2`
	var qty float64
	err := r.db.QueryRowContext(ctx, q, buyerPhone, productID).Scan(&qty)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return qty, err
}

func (r *CartPostgres) Items(ctx context.Context, buyerPhone string) ([]model.CartItem, error) {
	const q = `
		SELECT c.id, c.buyer_phone, c.product_id, c.quantity, c.added_at,
		       p.name, p.price, p.unit, u.name, u.phone
		FROM cart c
		JOIN products p ON c.product_id = p.id
		JOIN users u ON p.seller_phone = u.phone
		WHERE c.buyer_phone = $1
		ORDER BY c.added_at, c.id
	`
	rows, err := r.db.QueryContext(ctx, q, buyerPhone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CartItem, 0)
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(
			&it.ID,
			&it.BuyerPhone,
			&it.ProductID,
			&it.Quantity,
			&it.AddedAt,
			&it.ProductName,
			&it.Price,
			&it.Unit,
			&it.SellerName,
			&it.SellerPhone,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *CartPostgres) Remove(ctx context.Context, buyerPhone string, productID int64) error {
	const q = `DELETE FROM cart WHERE buyer_phone = $1 AND product_id = $2`
	return expectAffected(r.db.ExecContext(ctx, q, buyerPhone, productID))
}

// Clear empties the cart; an already empty cart is not an error.
func (r *CartPostgres) Clear(ctx context.Context, buyerPhone string) error {
	return clearCart(ctx, r.db, buyerPhone)
}

// clearCart is shared with checkout, which empties the cart inside its
// transaction.
func clearCart(ctx context.Context, ex database.Executor, buyerPhone string) error {
	const q = `DELETE FROM cart WHERE buyer_phone = $1`
	_, err := ex.ExecContext(ctx, q, buyerPhone)
	return err
}
