package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"agrimart/internal/model"
	"agrimart/internal/repository"
	"agrimart/internal/validation"
)

// PriceAlertThreshold is the percentage rise above which sellers are alerted.
const PriceAlertThreshold = 5.0

const (
	defaultHistoryLimit = 30
	maxHistoryLimit     = 365
)

type SchemeService interface {
	List(ctx context.Context) ([]model.Scheme, error)
}

type schemeService struct {
	repo repository.SchemeRepository
}

func NewSchemeService(repo repository.SchemeRepository) SchemeService {
	return &schemeService{repo: repo}
}

func (s *schemeService) List(ctx context.Context) ([]model.Scheme, error) {
	return s.repo.ListActive(ctx)
}

type PriceInput struct {
	ProductName string  `json:"product_name" validate:"required,min=2,max=100"`
	MarketPrice float64 `json:"market_price" validate:"gt=0"`
	Source      string  `json:"source" validate:"max=50"`
	Location    string  `json:"location" validate:"max=100"`
}

type PriceService interface {
	// Record stores an observation and alerts every seller listing the
	// product when it is more than PriceAlertThreshold percent above the
	// previous one.
	Record(ctx context.Context, in PriceInput) (*model.PricePoint, error)
	History(ctx context.Context, productName string, limit int) ([]model.PricePoint, error)
}

type priceService struct {
	prices repository.PriceRepository
	notify NotificationService
	log    zerolog.Logger
}

func NewPriceService(prices repository.PriceRepository, notify NotificationService, log zerolog.Logger) PriceService {
	return &priceService{prices: prices, notify: notify, log: log}
}

func (s *priceService) Record(ctx context.Context, in PriceInput) (*model.PricePoint, error) {
	in.ProductName = strings.TrimSpace(in.ProductName)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	prev, err := s.prices.Latest(ctx, in.ProductName)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	rec, err := s.prices.Record(ctx, &model.PricePoint{
		ProductName: in.ProductName,
		MarketPrice: in.MarketPrice,
		Source:      strings.TrimSpace(in.Source),
		Location:    strings.TrimSpace(in.Location),
	})
	if err != nil {
		return nil, err
	}

	if prev != nil && prev.MarketPrice > 0 && increase(prev.MarketPrice, rec.MarketPrice) > PriceAlertThreshold {
		s.alert(ctx, rec.ProductName, prev.MarketPrice, rec.MarketPrice)
	}
	return rec, nil
}

func increase(oldPrice, newPrice float64) float64 {
	return (newPrice - oldPrice) / oldPrice * 100
}

func (s *priceService) alert(ctx context.Context, product string, oldPrice, newPrice float64) {
	sellers, err := s.prices.SellersListing(ctx, product)
	if err != nil {
		s.log.Warn().Err(err).Str("product", product).Msg("price_alert_lookup_failed")
		return
	}
	for _, phone := range sellers {
		if err := s.notify.PriceAlert(ctx, phone, product, oldPrice, newPrice); err != nil {
			s.log.Warn().Err(err).Str("phone", phone).Str("product", product).Msg("price_alert_failed")
		}
	}
}

func (s *priceService) History(ctx context.Context, productName string, limit int) ([]model.PricePoint, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return s.prices.History(ctx, strings.TrimSpace(productName), limit)
}
