package mocks

import (
	"context"

	"agrimart/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Add(ctx context.Context, buyerPhone string, productID int64, qty float64) error {
	args := m.Called(ctx, buyerPhone, productID, qty)
	return args.Error(0)
}

func (m *MockCartRepository) Quantity(ctx context.Context, buyerPhone string, productID int64) (float64, error) {
	args := m.Called(ctx, buyerPhone, productID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockCartRepository) Items(ctx context.Context, buyerPhone string) ([]model.CartItem, error) {
	args := m.Called(ctx, buyerPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *MockCartRepository) Remove(ctx context.Context, buyerPhone string, productID int64) error {
	args := m.Called(ctx, buyerPhone, productID)
	return args.Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, buyerPhone string) error {
	args := m.Called(ctx, buyerPhone)
	return args.Error(0)
}
