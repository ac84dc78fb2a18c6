package mocks

import (
	"context"

	"agrimart/internal/model"
	"agrimart/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockSchemeService struct {
	mock.Mock
}

func (m *MockSchemeService) List(ctx context.Context) ([]model.Scheme, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Scheme), args.Error(1)
}

type MockPriceService struct {
	mock.Mock
}

func (m *MockPriceService) Record(ctx context.Context, in service.PriceInput) (*model.PricePoint, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PricePoint), args.Error(1)
}

func (m *MockPriceService) History(ctx context.Context, productName string, limit int) ([]model.PricePoint, error) {
	args := m.Called(ctx, productName, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PricePoint), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Seller(ctx context.Context, phone string) (*service.SellerStats, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SellerStats), args.Error(1)
}
