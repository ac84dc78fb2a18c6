package repository

import (
	"context"

	"agrimart/internal/model"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)
	ListByUser(ctx context.Context, userPhone string, unreadOnly bool) ([]model.Notification, error)
	MarkRead(ctx context.Context, userPhone string, id int64) error
}
