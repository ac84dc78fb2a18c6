package service

import (
	"context"
	"fmt"

	"agrimart/internal/model"
	"agrimart/internal/repository"
)

const (
	PriceAlertTitle  = "Price Alert 📈"
	OrderUpdateTitle = "Order Update 📦"
)

// PriceAlertMessage renders "Tomato price increased by 10.0% (₹40.00 → ₹44.00)".
func PriceAlertMessage(product string, oldPrice, newPrice float64) string {
	pct := (newPrice - oldPrice) / oldPrice * 100
	return fmt.Sprintf("%s price increased by %.1f%% (₹%.2f → ₹%.2f)", product, pct, oldPrice, newPrice)
}

// OrderUpdateMessage renders "Order #AGM-... status: shipped".
func OrderUpdateMessage(orderNumber string, status model.OrderStatus) string {
	return fmt.Sprintf("Order #%s status: %s", orderNumber, status)
}

type NotificationService interface {
	Send(ctx context.Context, phone, title, message, typ string) (*model.Notification, error)
	List(ctx context.Context, phone string, unreadOnly bool) ([]model.Notification, error)
	MarkRead(ctx context.Context, phone string, id int64) error
	PriceAlert(ctx context.Context, phone, product string, oldPrice, newPrice float64) error
	OrderUpdate(ctx context.Context, phone, orderNumber string, status model.OrderStatus) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) Send(ctx context.Context, phone, title, message, typ string) (*model.Notification, error) {
	return s.repo.Create(ctx, &model.Notification{
		UserPhone: phone,
		Title:     title,
		Message:   message,
		Type:      typ,
	})
}

func (s *notificationService) List(ctx context.Context, phone string, unreadOnly bool) ([]model.Notification, error) {
	return s.repo.ListByUser(ctx, phone, unreadOnly)
}

func (s *notificationService) MarkRead(ctx context.Context, phone string, id int64) error {
	return notFound(s.repo.MarkRead(ctx, phone, id))
}

func (s *notificationService) PriceAlert(ctx context.Context, phone, product string, oldPrice, newPrice float64) error {
	_, err := s.Send(ctx, phone, PriceAlertTitle, PriceAlertMessage(product, oldPrice, newPrice), model.NotificationPriceAlert)
	return err
}

func (s *notificationService) OrderUpdate(ctx context.Context, phone, orderNumber string, status model.OrderStatus) error {
	_, err := s.Send(ctx, phone, OrderUpdateTitle, OrderUpdateMessage(orderNumber, status), model.NotificationOrderUpdate)
	return err
}
