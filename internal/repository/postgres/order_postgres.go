package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"agrimart/internal/database"
	"agrimart/internal/model"
	"agrimart/internal/repository"
)

// OrderPostgres is a PostgreSQL implementation of repository.OrderRepository.
type OrderPostgres struct {
	db *sql.DB
}

func NewOrderPostgres(db *sql.DB) *OrderPostgres {
	return &OrderPostgres{db: db}
}

var _ repository.OrderRepository = (*OrderPostgres)(nil)

// newOrderNumber yields identifiers like AGM-20261019-3F2A9C1B.
var newOrderNumber = func() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("AGM-%s-%s", time.Now().UTC().Format("20060102"), id[:8])
}

const orderColumns = `id, order_number, buyer_phone, seller_phone, product_id, quantity, unit_price,
		total_amount, status, delivery_address, payment_method, notes, created_at, delivered_at`

func orderDest(o *model.Order) []any {
	return []any{
		&o.ID,
		&o.OrderNumber,
		&o.BuyerPhone,
		&o.SellerPhone,
		&o.ProductID,
		&o.Quantity,
		&o.UnitPrice,
		&o.TotalAmount,
		&o.Status,
		&o.DeliveryAddress,
		&o.PaymentMethod,
		&o.Notes,
		&o.CreatedAt,
		&o.DeliveredAt,
	}
}

func scanOrder(row interface{ Scan(...any) error }) (*model.Order, error) {
	var o model.Order
	if err := row.Scan(orderDest(&o)...); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderPostgres) ListForUser(ctx context.Context, phone string, role model.Role) ([]model.Order, error) {
	const qSeller = `
		SELECT o.id, o.order_number, o.buyer_phone, o.seller_phone, o.product_id, o.quantity, o.unit_price,
		       o.total_amount, o.status, o.delivery_address, o.payment_method, o.notes, o.created_at, o.delivered_at,
		       p.name, u.name
		FROM orders o
		JOIN products p ON o.product_id = p.id
		JOIN users u ON o.buyer_phone = u.phone
		WHERE o.seller_phone = $1
		ORDER BY o.created_at DESC, o.id DESC
	`
	const qBuyer = `
		SELECT o.id, o.order_number, o.buyer_phone, o.seller_phone, o.product_id, o.quantity, o.unit_price,
		       o.total_amount, o.status, o.delivery_address, o.payment_method, o.notes, o.created_at, o.delivered_at,
		       p.name, u.name
		FROM orders o
		JOIN products p ON o.product_id = p.id
		JOIN users u ON o.seller_phone = u.phone
		WHERE o.buyer_phone = $1
		ORDER BY o.created_at DESC, o.id DESC
	`
	q := qBuyer
	if role == model.RoleSeller {
		q = qSeller
	}

	rows, err := r.db.QueryContext(ctx, q, phone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		dest := append(orderDest(&o), &o.ProductName, &o.CounterpartyName)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

type checkoutLine struct {
	productID   int64
	productName string
	sellerPhone string
	quantity    float64
	price       float64
	stock       float64
	status      string
}

func (r *OrderPostgres) CreateFromCart(ctx context.Context, buyerPhone string, d model.CheckoutDetails) ([]model.Order, error) {
	const qLines = `
		SELECT c.product_id, p.name, p.seller_phone, c.quantity, p.price, p.stock_qty, p.status
		FROM cart c
		JOIN products p ON c.product_id = p.id
		WHERE c.buyer_phone = $1
		ORDER BY c.id
		FOR UPDATE OF p
	`
	const qInsert = `
		INSERT INTO orders (order_number, buyer_phone, seller_phone, product_id, quantity, unit_price,
		                    total_amount, delivery_address, payment_method, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + orderColumns
	const qStock = `UPDATE products SET stock_qty = stock_qty - $1, updated_at = now() WHERE id = $2`

	var orders []model.Order
	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		lines, err := readCheckoutLines(ctx, tx, qLines, buyerPhone)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return repository.ErrEmptyCart
		}
		for _, l := range lines {
			if l.status != model.ProductStatusActive || l.quantity > l.stock {
				return fmt.Errorf("%w: %s", repository.ErrInsufficientStock, l.productName)
			}
		}

		orders = make([]model.Order, 0, len(lines))
		for _, l := range lines {
			o, err := scanOrder(tx.QueryRowContext(ctx, qInsert,
				newOrderNumber(),
				buyerPhone,
				l.sellerPhone,
				l.productID,
				l.quantity,
				l.price,
				l.price*l.quantity,
				d.DeliveryAddress,
				d.PaymentMethod,
				d.Notes,
			))
			if err != nil {
				return translate(err)
			}
			o.ProductName = l.productName
			orders = append(orders, *o)

			if _, err := tx.ExecContext(ctx, qStock, l.quantity, l.productID); err != nil {
				return translate(err)
			}
		}

		return clearCart(ctx, tx, buyerPhone)
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func readCheckoutLines(ctx context.Context, ex database.Executor, q, buyerPhone string) ([]checkoutLine, error) {
	rows, err := ex.QueryContext(ctx, q, buyerPhone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []checkoutLine
	for rows.Next() {
		var l checkoutLine
		if err := rows.Scan(&l.productID, &l.productName, &l.sellerPhone, &l.quantity, &l.price, &l.stock, &l.status); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *OrderPostgres) FindByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1`
	return scanOrder(r.db.QueryRowContext(ctx, q, orderNumber))
}

func (r *OrderPostgres) UpdateStatus(ctx context.Context, orderNumber, sellerPhone string, from, to model.OrderStatus) (*model.Order, error) {
	const q = `
		UPDATE orders
		SET status = $1,
		    delivered_at = CASE WHEN $1 = 'delivered' THEN now() ELSE delivered_at END
		WHERE order_number = $2 AND seller_phone = $3 AND status = $4
		RETURNING ` + orderColumns
	return scanOrder(r.db.QueryRowContext(ctx, q, to, orderNumber, sellerPhone, from))
}

func (r *OrderPostgres) CountForSeller(ctx context.Context, sellerPhone string) (map[model.OrderStatus]int, error) {
	const q = `SELECT status, COUNT(*) FROM orders WHERE seller_phone = $1 GROUP BY status`
	rows, err := r.db.QueryContext(ctx, q, sellerPhone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.OrderStatus]int)
	for rows.Next() {
		var (
			s model.OrderStatus
			n int
		)
		if err := rows.Scan(&s, &n); err != nil {
			return nil, err
		}
		counts[s] = n
	}
	return counts, rows.Err()
}
