package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agrimart/internal/model"
	repoMocks "agrimart/internal/repository/mocks"
	"agrimart/internal/validation"
)

func TestSchemeService_List(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockSchemeRepository)
	mRepo.On("ListActive", ctx).Return([]model.Scheme{{Name: "PM-KISAN", IsActive: true}}, nil)

	schemes, err := NewSchemeService(mRepo).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PM-KISAN", schemes[0].Name)
}

func TestPriceService_Record(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		previous  *model.PricePoint
		latestErr error
		price     float64
		wantAlert bool
	}{
		{name: "first observation", latestErr: sql.ErrNoRows, price: 40},
		{name: "small rise", previous: &model.PricePoint{MarketPrice: 40}, price: 41},
		{name: "drop", previous: &model.PricePoint{MarketPrice: 40}, price: 30},
		{name: "sharp rise", previous: &model.PricePoint{MarketPrice: 40}, price: 44, wantAlert: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mPrices := new(repoMocks.MockPriceRepository)
			mNotes := new(repoMocks.MockNotificationRepository)
			svc := NewPriceService(mPrices, NewNotificationService(mNotes), zerolog.Nop())

			mPrices.On("Latest", ctx, "Tomato").Return(tt.previous, tt.latestErr)
			mPrices.On("Record", ctx, mock.MatchedBy(func(p *model.PricePoint) bool {
				return p.ProductName == "Tomato" && p.MarketPrice == tt.price
			})).Return(&model.PricePoint{ID: 1, ProductName: "Tomato", MarketPrice: tt.price}, nil)
			if tt.wantAlert {
				mPrices.On("SellersListing", ctx, "Tomato").Return([]string{sellerPhone, "9876500000"}, nil)
				msg := "Tomato price increased by 10.0% (₹40.00 → ₹44.00)"
				mNotes.On("Create", ctx, notification(sellerPhone, PriceAlertTitle, msg, model.NotificationPriceAlert)).
					Return(&model.Notification{}, nil)
				mNotes.On("Create", ctx, notification("9876500000", PriceAlertTitle, msg, model.NotificationPriceAlert)).
					Return(&model.Notification{}, nil)
			}

			rec, err := svc.Record(ctx, PriceInput{ProductName: " Tomato ", MarketPrice: tt.price})
			require.NoError(t, err)
			assert.Equal(t, int64(1), rec.ID)
			mPrices.AssertExpectations(t)
			mNotes.AssertExpectations(t)
			if !tt.wantAlert {
				mPrices.AssertNotCalled(t, "SellersListing", mock.Anything, mock.Anything)
				mNotes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestPriceService_Record_AlertFailuresAreLogged(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	mPrices := new(repoMocks.MockPriceRepository)
	mNotes := new(repoMocks.MockNotificationRepository)
	svc := NewPriceService(mPrices, NewNotificationService(mNotes), zerolog.New(&logs))

	mPrices.On("Latest", ctx, "Onion").Return(&model.PricePoint{MarketPrice: 20}, nil)
	mPrices.On("Record", ctx, mock.Anything).Return(&model.PricePoint{ID: 2, ProductName: "Onion", MarketPrice: 30}, nil)
	mPrices.On("SellersListing", ctx, "Onion").Return([]string{sellerPhone}, nil)
	mNotes.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Record(ctx, PriceInput{ProductName: "Onion", MarketPrice: 30})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "price_alert_failed")
}

func TestPriceService_Record_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid input", func(t *testing.T) {
		_, err := NewPriceService(nil, nil, zerolog.Nop()).Record(ctx, PriceInput{ProductName: "T", MarketPrice: 0})
		var fe validation.Errors
		require.True(t, errors.As(err, &fe))
		assert.Len(t, fe, 2)
	})

	t.Run("latest lookup fails", func(t *testing.T) {
		mPrices := new(repoMocks.MockPriceRepository)
		mPrices.On("Latest", ctx, "Tomato").Return(nil, errors.New("timeout"))

		_, err := NewPriceService(mPrices, nil, zerolog.Nop()).Record(ctx, PriceInput{ProductName: "Tomato", MarketPrice: 40})
		assert.EqualError(t, err, "timeout")
		mPrices.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
	})
}

func TestPriceService_History(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: 30},
		{name: "explicit", limit: 7, want: 7},
		{name: "capped", limit: 1000, want: 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mPrices := new(repoMocks.MockPriceRepository)
			mPrices.On("History", ctx, "Tomato", tt.want).Return([]model.PricePoint{}, nil)

			_, err := NewPriceService(mPrices, nil, zerolog.Nop()).History(ctx, "Tomato ", tt.limit)
			assert.NoError(t, err)
			mPrices.AssertExpectations(t)
		})
	}
}
