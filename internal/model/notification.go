package model

import "time"

const (
	NotificationGeneral     = "general"
	NotificationPriceAlert  = "price_alert"
	NotificationOrderUpdate = "order_update"
)

type Notification struct {
	ID        int64     `json:"id"`
	UserPhone string    `json:"user_phone"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
