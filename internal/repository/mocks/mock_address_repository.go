package mocks

import (
	"context"

	"agrimart/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) Create(ctx context.Context, a *model.Address) (*model.Address, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Address), args.Error(1)
}

func (m *MockAddressRepository) ListByUser(ctx context.Context, userPhone string) ([]model.Address, error) {
	args := m.Called(ctx, userPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Address), args.Error(1)
}

func (m *MockAddressRepository) SetDefault(ctx context.Context, userPhone string, id int64) error {
	args := m.Called(ctx, userPhone, id)
	return args.Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, userPhone string, id int64) error {
	args := m.Called(ctx, userPhone, id)
	return args.Error(0)
}
