package mocks

import (
	"context"

	"agrimart/internal/model"
	"agrimart/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Add(ctx context.Context, sellerPhone string, in service.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, sellerPhone, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, sellerPhone string, id int64, in service.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, sellerPhone, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, sellerPhone string, id int64) error {
	args := m.Called(ctx, sellerPhone, id)
	return args.Error(0)
}

func (m *MockProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Mine(ctx context.Context, sellerPhone string) ([]model.Product, error) {
	args := m.Called(ctx, sellerPhone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) All(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) Marketplace(ctx context.Context, limit int) ([]model.ProductListing, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductListing), args.Error(1)
}

func (m *MockProductService) Search(ctx context.Context, term string) ([]model.ProductListing, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductListing), args.Error(1)
}

func (m *MockProductService) UploadImage(ctx context.Context, sellerPhone string, id int64, img service.ImageUpload) (*model.Product, error) {
	args := m.Called(ctx, sellerPhone, id, img)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) ImageURL(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
