package mocks

import (
	"context"

	"agrimart/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) ListBySeller(ctx context.Context, sellerPhone string) ([]model.Product, error) {
	args := m.Called(ctx, sellerPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) ListActive(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) ListAvailable(ctx context.Context, limit int) ([]model.ProductListing, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductListing), args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, term string) ([]model.ProductListing, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductListing), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) SetImagePath(ctx context.Context, id int64, sellerPhone, path string) error {
	args := m.Called(ctx, id, sellerPhone, path)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64, sellerPhone string) error {
	args := m.Called(ctx, id, sellerPhone)
	return args.Error(0)
}

func (m *MockProductRepository) CountBySeller(ctx context.Context, sellerPhone string) (int, int, error) {
	args := m.Called(ctx, sellerPhone)
	return args.Int(0), args.Int(1), args.Error(2)
}
