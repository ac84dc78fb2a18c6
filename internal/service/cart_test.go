package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agrimart/internal/model"
	"agrimart/internal/repository"
	repoMocks "agrimart/internal/repository/mocks"
	"agrimart/internal/validation"
)

func TestCartService_Add(t *testing.T) {
	ctx := context.Background()
	active := &model.Product{ID: 7, SellerPhone: sellerPhone, Status: model.ProductStatusActive, StockQty: 10}

	tests := []struct {
		name       string
		buyer      string
		qty        float64
		setupMocks func(mCart *repoMocks.MockCartRepository, mProducts *repoMocks.MockProductRepository)
		wantErr    error
	}{
		{
			name:  "default quantity",
			buyer: buyerPhone,
			qty:   0,
			setupMocks: func(mCart *repoMocks.MockCartRepository, mProducts *repoMocks.MockProductRepository) {
				mProducts.On("FindByID", ctx, int64(7)).Return(active, nil)
				mCart.On("Quantity", ctx, buyerPhone, int64(7)).Return(0.0, nil)
				mCart.On("Add", ctx, buyerPhone, int64(7), 1.0).Return(nil)
			},
		},
		{
			name:  "explicit quantity",
			buyer: buyerPhone,
			qty:   2.5,
			setupMocks: func(mCart *repoMocks.MockCartRepository, mProducts *repoMocks.MockProductRepository) {
				mProducts.On("FindByID", ctx, int64(7)).Return(active, nil)
				mCart.On("Quantity", ctx, buyerPhone, int64(7)).Return(0.0, nil)
				mCart.On("Add", ctx, buyerPhone, int64(7), 2.5).Return(nil)
			},
		},
		{
			name:  "own product",
			buyer: sellerPhone,
			qty:   1,
			setupMocks: func(mCart *repoMocks.MockCartRepository, mProducts *repoMocks.MockProductRepository) {
				mProducts.On("FindByID", ctx, int64(7)).Return(active, nil)
			},
			wantErr: ErrOwnProduct,
		},
		{
			name:  "inactive product",
			buyer: buyerPhone,
			qty:   1,
			setupMocks: func(mCart *repoMocks.MockCartRepository, mProducts *repoMocks.MockProductRepository) {
				mProducts.On("FindByID", ctx, int64(7)).
					Return(&model.Product{ID: 7, SellerPhone: sellerPhone, Status: model.ProductStatusInactive, StockQty: 10}, nil)
			},
			wantErr: ErrUnavailable,
		},
		{
			name:  "out of stock",
			buyer: buyerPhone,
			qty:   1,
			setupMocks: func(mCart *repoMocks.MockCartRepository, mProducts *repoMocks.MockProductRepository) {
				mProducts.On("FindByID", ctx, int64(7)).
					Return(&model.Product{ID: 7, SellerPhone: sellerPhone, Status: model.ProductStatusActive}, nil)
			},
			wantErr: ErrUnavailable,
		},
		{
			name:  "more than stock",
			buyer: buyerPhone,
			qty:   11,
			setupMocks: func(mCart *repoMocks.MockCartRepository, mProducts *repoMocks.MockProductRepository) {
				mProducts.On("FindByID", ctx, int64(7)).Return(active, nil)
				mCart.On("Quantity", ctx, buyerPhone, int64(7)).Return(0.0, nil)
			},
			wantErr: repository.ErrInsufficientStock,
		},
		{
			name:  "existing quantity pushes past stock",
			buyer: buyerPhone,
			qty:   5,
			setupMocks: func(mCart *repoMocks.MockCartRepository, mProducts *repoMocks.MockProductRepository) {
				mProducts.On("FindByID", ctx, int64(7)).
					Return(&model.Product{ID: 7, SellerPhone: sellerPhone, Status: model.ProductStatusActive, StockQty: 6}, nil)
				mCart.On("Quantity", ctx, buyerPhone, int64(7)).Return(5.0, nil)
			},
			wantErr: repository.ErrInsufficientStock,
		},
		{
			name:  "existing quantity fills stock exactly",
			buyer: buyerPhone,
			qty:   1,
			setupMocks: func(mCart *repoMocks.MockCartRepository, mProducts *repoMocks.MockProductRepository) {
				mProducts.On("FindByID", ctx, int64(7)).
					Return(&model.Product{ID: 7, SellerPhone: sellerPhone, Status: model.ProductStatusActive, StockQty: 6}, nil)
				mCart.On("Quantity", ctx, buyerPhone, int64(7)).Return(5.0, nil)
				mCart.On("Add", ctx, buyerPhone, int64(7), 1.0).Return(nil)
			},
		},
		{
			name:  "concurrent add rejected by store",
			buyer: buyerPhone,
			qty:   2,
			setupMocks: func(mCart *repoMocks.MockCartRepository, mProducts *repoMocks.MockProductRepository) {
				mProducts.On("FindByID", ctx, int64(7)).Return(active, nil)
				mCart.On("Quantity", ctx, buyerPhone, int64(7)).Return(0.0, nil)
				mCart.On("Add", ctx, buyerPhone, int64(7), 2.0).Return(repository.ErrInsufficientStock)
			},
			wantErr: repository.ErrInsufficientStock,
		},
		{
			name:  "missing product",
			buyer: buyerPhone,
			qty:   1,
			setupMocks: func(mCart *repoMocks.MockCartRepository, mProducts *repoMocks.MockProductRepository) {
				mProducts.On("FindByID", ctx, int64(7)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mCart := new(repoMocks.MockCartRepository)
			mProducts := new(repoMocks.MockProductRepository)
			tt.setupMocks(mCart, mProducts)

			err := NewCartService(mCart, mProducts).Add(ctx, tt.buyer, 7, tt.qty)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mCart.AssertExpectations(t)
			mProducts.AssertExpectations(t)
		})
	}
}

func TestCartService_Add_NegativeQuantity(t *testing.T) {
	err := NewCartService(new(repoMocks.MockCartRepository), new(repoMocks.MockProductRepository)).
		Add(context.Background(), buyerPhone, 7, -1)
	var fe validation.Errors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "quantity", fe[0].Field)
}

func TestCartService_Items(t *testing.T) {
	ctx := context.Background()
	mCart := new(repoMocks.MockCartRepository)
	mCart.On("Items", ctx, buyerPhone).Return([]model.CartItem{
		{ProductID: 7, ProductName: "Tomato", Price: 40, Quantity: 2},
		{ProductID: 8, ProductName: "Rice", Price: 55.5, Quantity: 2},
	}, nil)

	view, err := NewCartService(mCart, nil).Items(ctx, buyerPhone)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 80.0, view.Items[0].LineTotal)
	assert.Equal(t, 111.0, view.Items[1].LineTotal)
	assert.Equal(t, 191.0, view.Total)
}

func TestCartService_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	mCart := new(repoMocks.MockCartRepository)
	mCart.On("Remove", ctx, buyerPhone, int64(7)).Return(nil)
	mCart.On("Remove", ctx, buyerPhone, int64(8)).Return(sql.ErrNoRows)
	mCart.On("Clear", ctx, buyerPhone).Return(nil)
	svc := NewCartService(mCart, nil)

	assert.NoError(t, svc.Remove(ctx, buyerPhone, 7))
	assert.ErrorIs(t, svc.Remove(ctx, buyerPhone, 8), ErrNotFound)
	assert.NoError(t, svc.Clear(ctx, buyerPhone))
	mCart.AssertExpectations(t)
}
