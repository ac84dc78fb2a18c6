package mocks

import (
	"context"

	"agrimart/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockSchemeRepository struct {
	mock.Mock
}

func (m *MockSchemeRepository) ListActive(ctx context.Context) ([]model.Scheme, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Scheme), args.Error(1)
}

type MockPriceRepository struct {
	mock.Mock
}

func (m *MockPriceRepository) Record(ctx context.Context, p *model.PricePoint) (*model.PricePoint, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PricePoint), args.Error(1)
}

func (m *MockPriceRepository) Latest(ctx context.Context, productName string) (*model.PricePoint, error) {
	args := m.Called(ctx, productName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PricePoint), args.Error(1)
}

func (m *MockPriceRepository) History(ctx context.Context, productName string, limit int) ([]model.PricePoint, error) {
	args := m.Called(ctx, productName, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PricePoint), args.Error(1)
}

func (m *MockPriceRepository) SellersListing(ctx context.Context, productName string) ([]string, error) {
	args := m.Called(ctx, productName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
