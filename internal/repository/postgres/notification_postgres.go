package postgres

import (
	"context"
	"database/sql"

	"agrimart/internal/model"
	"agrimart/internal/repository"
)

// NotificationPostgres stores in-app notifications.
type NotificationPostgres struct {
	db *sql.DB
}

func NewNotificationPostgres(db *sql.DB) *NotificationPostgres {
	return &NotificationPostgres{db: db}
}

var _ repository.NotificationRepository = (*NotificationPostgres)(nil)

const notificationColumns = `id, user_phone, title, message, notification_type, is_read, created_at`

func scanNotification(row interface{ Scan(...any) error }) (*model.Notification, error) {
	var n model.Notification
	if err := row.Scan(&n.ID, &n.UserPhone, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationPostgres) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	const q = `
		INSERT INTO notifications (user_phone, title, message, notification_type)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + notificationColumns
	typ := n.Type
	if typ == "" {
		typ = model.NotificationGeneral
	}
	out, err := scanNotification(r.db.QueryRowContext(ctx, q, n.UserPhone, n.Title, n.Message, typ))
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *NotificationPostgres) ListByUser(ctx context.Context, userPhone string, unreadOnly bool) ([]model.Notification, error) {
	const q = `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_phone = $1 AND (NOT $2 OR NOT is_read)
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userPhone, unreadOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *n)
	}
	return items, rows.Err()
}

func (r *NotificationPostgres) MarkRead(ctx context.Context, userPhone string, id int64) error {
	const q = `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_phone = $2`
	return expectAffected(r.db.ExecContext(ctx, q, id, userPhone))
}
