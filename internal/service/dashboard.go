package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"agrimart/internal/model"
	"agrimart/internal/repository"
)

// SellerStats summarises a seller's listings and orders.
type SellerStats struct {
	TotalProducts       int                       `json:"total_products"`
	ActiveProducts      int                       `json:"active_products"`
	Orders              map[model.OrderStatus]int `json:"orders"`
	PendingOrders       int                       `json:"pending_orders"`
	UnreadNotifications int                       `json:"unread_notifications"`
}

type DashboardService interface {
	Seller(ctx context.Context, phone string) (*SellerStats, error)
}

type dashboardService struct {
	products      repository.ProductRepository
	orders        repository.OrderRepository
	notifications repository.NotificationRepository
}

func NewDashboardService(products repository.ProductRepository, orders repository.OrderRepository, notifications repository.NotificationRepository) DashboardService {
	return &dashboardService{products: products, orders: orders, notifications: notifications}
}

// Seller runs the three lookups concurrently; the first failure cancels the rest.
func (s *dashboardService) Seller(ctx context.Context, phone string) (*SellerStats, error) {
	var stats SellerStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, active, err := s.products.CountBySeller(gctx, phone)
		stats.TotalProducts, stats.ActiveProducts = total, active
		return err
	})
	g.Go(func() error {
		counts, err := s.orders.CountForSeller(gctx, phone)
		stats.Orders = counts
		return err
	})
	g.Go(func() error {
		unread, err := s.notifications.ListByUser(gctx, phone, true)
		stats.UnreadNotifications = len(unread)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if stats.Orders == nil {
		stats.Orders = map[model.OrderStatus]int{}
	}
	stats.PendingOrders = stats.Orders[model.OrderPending]
	return &stats, nil
}
