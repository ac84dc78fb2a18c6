package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrimart/internal/model"
	"agrimart/internal/repository"
	repoMocks "agrimart/internal/repository/mocks"
	"agrimart/internal/validation"
)

type orderFixture struct {
	orders    *repoMocks.MockOrderRepository
	addresses *repoMocks.MockAddressRepository
	notes     *repoMocks.MockNotificationRepository
	logs      *bytes.Buffer
	svc       OrderService
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		orders:    new(repoMocks.MockOrderRepository),
		addresses: new(repoMocks.MockAddressRepository),
		notes:     new(repoMocks.MockNotificationRepository),
		logs:      new(bytes.Buffer),
	}
	f.svc = NewOrderService(f.orders, f.addresses, NewNotificationService(f.notes), zerolog.New(f.logs))
	return f
}

func notification(phone, title, msg, typ string) any {
	return mock.MatchedBy(func(n *model.Notification) bool {
		return n.UserPhone == phone && n.Title == title && n.Message == msg && n.Type == typ
	})
}

func TestOrderService_Checkout(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture()

	details := model.CheckoutDetails{DeliveryAddress: "12 Mall Rd, Hamirpur", PaymentMethod: "cod"}
	f.orders.On("CreateFromCart", ctx, buyerPhone, details).Return([]model.Order{
		{OrderNumber: "AGM-1", SellerPhone: sellerPhone, BuyerPhone: buyerPhone, TotalAmount: 80, Status: model.OrderPending},
		{OrderNumber: "AGM-2", SellerPhone: "9876500000", BuyerPhone: buyerPhone, TotalAmount: 20.5, Status: model.OrderPending},
	}, nil)
	f.notes.On("Create", ctx, notification(sellerPhone, OrderUpdateTitle, "Order #AGM-1 status: pending", model.NotificationOrderUpdate)).
		Return(&model.Notification{}, nil)
	f.notes.On("Create", ctx, notification("9876500000", OrderUpdateTitle, "Order #AGM-2 status: pending", model.NotificationOrderUpdate)).
		Return(nil, errors.New("notify down"))
	f.notes.On("Create", ctx, notification(buyerPhone, OrderUpdateTitle, "2 order(s) placed, total ₹100.50", model.NotificationOrderUpdate)).
		Return(&model.Notification{}, nil)

	orders, err := f.svc.Checkout(ctx, buyerPhone, CheckoutInput{DeliveryAddress: " 12 Mall Rd, Hamirpur ", PaymentMethod: "cod"})
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Contains(t, f.logs.String(), "order_notification_failed")
	f.orders.AssertExpectations(t)
	f.notes.AssertExpectations(t)
	f.addresses.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
}

func TestOrderService_Checkout_AddressSelection(t *testing.T) {
	ctx := context.Background()
	saved := []model.Address{
		{ID: 1, AddressLine1: "12 Mall Rd", City: "Hamirpur", State: "HP", Pincode: "177001", IsDefault: true},
		{ID: 2, AddressLine1: "Plot 4", AddressLine2: "Near school", City: "Una", State: "HP", Pincode: "174303"},
	}

	tests := []struct {
		name      string
		addressID int64
		want      string
		wantErr   error
	}{
		{name: "default address", want: "12 Mall Rd, Hamirpur, HP - 177001"},
		{name: "chosen address", addressID: 2, want: "Plot 4, Near school, Una, HP - 174303"},
		{name: "unknown address", addressID: 99, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture()
			f.addresses.On("ListByUser", ctx, buyerPhone).Return(saved, nil)
			if tt.wantErr == nil {
				f.orders.On("CreateFromCart", ctx, buyerPhone, model.CheckoutDetails{DeliveryAddress: tt.want, PaymentMethod: "upi"}).
					Return([]model.Order{}, nil)
				f.notes.On("Create", ctx, mock.Anything).Return(&model.Notification{}, nil)
			}

			_, err := f.svc.Checkout(ctx, buyerPhone, CheckoutInput{AddressID: tt.addressID, PaymentMethod: "upi"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			f.orders.AssertExpectations(t)
		})
	}
}

func TestOrderService_Checkout_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("no address at all", func(t *testing.T) {
		f := newOrderFixture()
		f.addresses.On("ListByUser", ctx, buyerPhone).Return([]model.Address{}, nil)

		_, err := f.svc.Checkout(ctx, buyerPhone, CheckoutInput{PaymentMethod: "cod"})
		var fe validation.Errors
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "delivery_address", fe[0].Field)
	})

	t.Run("bad payment method", func(t *testing.T) {
		f := newOrderFixture()
		_, err := f.svc.Checkout(ctx, buyerPhone, CheckoutInput{DeliveryAddress: "x", PaymentMethod: "barter"})
		var fe validation.Errors
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "payment_method", fe[0].Field)
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newOrderFixture()
		f.orders.On("CreateFromCart", ctx, buyerPhone, mock.Anything).Return(nil, repository.ErrEmptyCart)

		_, err := f.svc.Checkout(ctx, buyerPhone, CheckoutInput{DeliveryAddress: "x", PaymentMethod: "cod"})
		assert.ErrorIs(t, err, repository.ErrEmptyCart)
		f.notes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		seller     string
		current    model.OrderStatus
		next       model.OrderStatus
		findErr    error
		updateErr  error
		wantErr    error
		wantUpdate bool
	}{
		{name: "confirm", seller: sellerPhone, current: model.OrderPending, next: model.OrderConfirmed, wantUpdate: true},
		{name: "cancel confirmed", seller: sellerPhone, current: model.OrderConfirmed, next: model.OrderCancelled, wantUpdate: true},
		{name: "deliver shipped", seller: sellerPhone, current: model.OrderShipped, next: model.OrderDelivered, wantUpdate: true},
		{name: "skip ahead", seller: sellerPhone, current: model.OrderPending, next: model.OrderDelivered, wantErr: ErrInvalidTransition},
		{name: "cancel shipped", seller: sellerPhone, current: model.OrderShipped, next: model.OrderCancelled, wantErr: ErrInvalidTransition},
		{name: "other seller", seller: "9000000000", current: model.OrderPending, next: model.OrderConfirmed, wantErr: ErrForbidden},
		{name: "missing", seller: sellerPhone, findErr: sql.ErrNoRows, wantErr: ErrNotFound},
		{name: "status moved concurrently", seller: sellerPhone, current: model.OrderConfirmed, next: model.OrderShipped, updateErr: sql.ErrNoRows, wantErr: ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture()
			if tt.findErr != nil {
				f.orders.On("FindByNumber", ctx, "AGM-1").Return(nil, tt.findErr)
			} else {
				f.orders.On("FindByNumber", ctx, "AGM-1").
					Return(&model.Order{OrderNumber: "AGM-1", SellerPhone: sellerPhone, BuyerPhone: buyerPhone, Status: tt.current}, nil)
			}
			if tt.updateErr != nil {
				f.orders.On("UpdateStatus", ctx, "AGM-1", sellerPhone, tt.current, tt.next).Return(nil, tt.updateErr)
			}
			if tt.wantUpdate {
				f.orders.On("UpdateStatus", ctx, "AGM-1", sellerPhone, tt.current, tt.next).
					Return(&model.Order{OrderNumber: "AGM-1", SellerPhone: sellerPhone, BuyerPhone: buyerPhone, Status: tt.next}, nil)
				f.notes.On("Create", ctx, notification(buyerPhone, OrderUpdateTitle, "Order #AGM-1 status: "+string(tt.next), model.NotificationOrderUpdate)).
					Return(&model.Notification{}, nil)
			}

			o, err := f.svc.UpdateStatus(ctx, tt.seller, "AGM-1", tt.next)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, o)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.next, o.Status)
			}
			f.orders.AssertExpectations(t)
			f.notes.AssertExpectations(t)
		})
	}
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture()
	f.orders.On("ListForUser", ctx, sellerPhone, model.RoleSeller).Return([]model.Order{{OrderNumber: "AGM-1"}}, nil)

	orders, err := f.svc.List(ctx, sellerPhone, model.RoleSeller)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
