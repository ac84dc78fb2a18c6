package mocks

import (
	"context"

	"agrimart/internal/model"
	"agrimart/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) Add(ctx context.Context, phone string, in service.AddressInput) (*model.Address, error) {
	args := m.Called(ctx, phone, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Address), args.Error(1)
}

func (m *MockAddressService) List(ctx context.Context, phone string) ([]model.Address, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Address), args.Error(1)
}

func (m *MockAddressService) SetDefault(ctx context.Context, phone string, id int64) error {
	args := m.Called(ctx, phone, id)
	return args.Error(0)
}

func (m *MockAddressService) Delete(ctx context.Context, phone string, id int64) error {
	args := m.Called(ctx, phone, id)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Send(ctx context.Context, phone, title, message, typ string) (*model.Notification, error) {
	args := m.Called(ctx, phone, title, message, typ)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Notification), args.Error(1)
}

func (m *MockNotificationService) List(ctx context.Context, phone string, unreadOnly bool) ([]model.Notification, error) {
	args := m.Called(ctx, phone, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, phone string, id int64) error {
	args := m.Called(ctx, phone, id)
	return args.Error(0)
}

func (m *MockNotificationService) PriceAlert(ctx context.Context, phone, product string, oldPrice, newPrice float64) error {
	args := m.Called(ctx, phone, product, oldPrice, newPrice)
	return args.Error(0)
}

func (m *MockNotificationService) OrderUpdate(ctx context.Context, phone, orderNumber string, status model.OrderStatus) error {
	args := m.Called(ctx, phone, orderNumber, status)
	return args.Error(0)
}
