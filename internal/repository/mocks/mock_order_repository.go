package mocks

import (
	"context"

	"agrimart/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) ListForUser(ctx context.Context, phone string, role model.Role) ([]model.Order, error) {
	args := m.Called(ctx, phone, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) CreateFromCart(ctx context.Context, buyerPhone string, d model.CheckoutDetails) ([]model.Order, error) {
	args := m.Called(ctx, buyerPhone, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderNumber, sellerPhone string, from, to model.OrderStatus) (*model.Order, error) {
	args := m.Called(ctx, orderNumber, sellerPhone, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) CountForSeller(ctx context.Context, sellerPhone string) (map[model.OrderStatus]int, error) {
	args := m.Called(ctx, sellerPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[model.OrderStatus]int), args.Error(1)
}
