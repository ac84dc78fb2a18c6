package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"agrimart/internal/model"
	"agrimart/internal/repository"
	"agrimart/internal/validation"
)

// CheckoutInput chooses where and how the cart is paid for. When
// DeliveryAddress is blank the saved address AddressID, or else the buyer's
// default address, is used.
type CheckoutInput struct {
	DeliveryAddress string `json:"delivery_address" validate:"max=300"`
	AddressID       int64  `json:"address_id"`
	PaymentMethod   string `json:"payment_method" validate:"required,oneof=cod upi card netbanking"`
	Notes           string `json:"notes" validate:"max=500"`
}

type OrderService interface {
	// Checkout turns the buyer's cart into one order per line and notifies
	// the buyer and every seller involved.
	Checkout(ctx context.Context, buyerPhone string, in CheckoutInput) ([]model.Order, error)
	List(ctx context.Context, phone string, role model.Role) ([]model.Order, error)
	// UpdateStatus lets the seller of an order move it along
	// pending, confirmed, shipped, delivered, or cancel it before shipping.
	UpdateStatus(ctx context.Context, sellerPhone, orderNumber string, status model.OrderStatus) (*model.Order, error)
}

type orderService struct {
	orders    repository.OrderRepository
	addresses repository.AddressRepository
	notify    NotificationService
	log       zerolog.Logger
}

func NewOrderService(orders repository.OrderRepository, addresses repository.AddressRepository, notify NotificationService, log zerolog.Logger) OrderService {
	return &orderService{orders: orders, addresses: addresses, notify: notify, log: log}
}

func (s *orderService) Checkout(ctx context.Context, buyerPhone string, in CheckoutInput) ([]model.Order, error) {
	in.DeliveryAddress = strings.TrimSpace(in.DeliveryAddress)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	addr, err := s.deliveryAddress(ctx, buyerPhone, in)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.CreateFromCart(ctx, buyerPhone, model.CheckoutDetails{
		DeliveryAddress: addr,
		PaymentMethod:   in.PaymentMethod,
		Notes:           strings.TrimSpace(in.Notes),
	})
	if err != nil {
		return nil, err
	}

	var total float64
	for _, o := range orders {
		total += o.TotalAmount
		s.send(ctx, o.SellerPhone, o.OrderNumber, o.Status)
	}
	msg := fmt.Sprintf("%d order(s) placed, total ₹%.2f", len(orders), total)
	if _, err := s.notify.Send(ctx, buyerPhone, OrderUpdateTitle, msg, model.NotificationOrderUpdate); err != nil {
		s.log.Warn().Err(err).Str("phone", buyerPhone).Msg("order_notification_failed")
	}
	return orders, nil
}

func (s *orderService) deliveryAddress(ctx context.Context, buyerPhone string, in CheckoutInput) (string, error) {
	if in.DeliveryAddress != "" {
		return in.DeliveryAddress, nil
	}
	saved, err := s.addresses.ListByUser(ctx, buyerPhone)
	if err != nil {
		return "", err
	}
	for _, a := range saved {
		if (in.AddressID != 0 && a.ID == in.AddressID) || (in.AddressID == 0 && a.IsDefault) {
			return a.String(), nil
		}
	}
	if in.AddressID != 0 {
		return "", ErrNotFound
	}
	return "", validation.Errors{{Field: "delivery_address", Error: "is required"}}
}

func (s *orderService) List(ctx context.Context, phone string, role model.Role) ([]model.Order, error) {
	return s.orders.ListForUser(ctx, phone, role)
}

func (s *orderService) UpdateStatus(ctx context.Context, sellerPhone, orderNumber string, status model.OrderStatus) (*model.Order, error) {
	o, err := s.orders.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, notFound(err)
	}
	if o.SellerPhone != sellerPhone {
		return nil, ErrForbidden
	}
	if !o.Status.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, o.Status, status)
	}

	updated, err := s.orders.UpdateStatus(ctx, orderNumber, sellerPhone, o.Status, status)
	if errors.Is(err, sql.ErrNoRows) {
		// Another request moved the order after it was read.
		return nil, fmt.Errorf("%w: %s is no longer %s", ErrInvalidTransition, orderNumber, o.Status)
	}
	if err != nil {
		return nil, err
	}
	s.send(ctx, updated.BuyerPhone, updated.OrderNumber, updated.Status)
	return updated, nil
}

// send delivers an order update; a failure is logged and does not undo the order change.
func (s *orderService) send(ctx context.Context, phone, orderNumber string, status model.OrderStatus) {
	if err := s.notify.OrderUpdate(ctx, phone, orderNumber, status); err != nil {
		s.log.Warn().Err(err).Str("phone", phone).Str("order_number", orderNumber).Msg("order_notification_failed")
	}
}
