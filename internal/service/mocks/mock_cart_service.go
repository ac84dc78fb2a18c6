package mocks

import (
	"context"

	"agrimart/internal/model"
	"agrimart/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Add(ctx context.Context, buyerPhone string, productID int64, qty float64) error {
	args := m.Called(ctx, buyerPhone, productID, qty)
	return args.Error(0)
}

func (m *MockCartService) Items(ctx context.Context, buyerPhone string) (*service.CartView, error) {
	args := m.Called(ctx, buyerPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}

func (m *MockCartService) Remove(ctx context.Context, buyerPhone string, productID int64) error {
	args := m.Called(ctx, buyerPhone, productID)
	return args.Error(0)
}

func (m *MockCartService) Clear(ctx context.Context, buyerPhone string) error {
	args := m.Called(ctx, buyerPhone)
	return args.Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, buyerPhone string, in service.CheckoutInput) ([]model.Order, error) {
	args := m.Called(ctx, buyerPhone, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, phone string, role model.Role) ([]model.Order, error) {
	args := m.Called(ctx, phone, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, sellerPhone, orderNumber string, status model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, sellerPhone, orderNumber, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}
