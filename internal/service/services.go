// Package service holds the marketplace use cases. It validates input,
// enforces ownership and role rules, and translates repository errors into
// the sentinel errors declared in errors.go.
package service

import (
	"time"

	"github.com/rs/zerolog"

	"agrimart/internal/auth"
	"agrimart/internal/repository"
	"agrimart/internal/storage"
)

type Services struct {
	Auth          AuthService
	Users         UserService
	Products      ProductService
	Cart          CartService
	Orders        OrderService
	Schemes       SchemeService
	Prices        PriceService
	Addresses     AddressService
	Notifications NotificationService
	Dashboard     DashboardService
}

// Deps are the collaborators New needs. Store may be nil.
type Deps struct {
	Repos         *repository.Repositories
	Tokens        *auth.Tokens
	Store         storage.ObjectStore
	PresignExpiry time.Duration
	Logger        zerolog.Logger
}

func New(d Deps) *Services {
	r := d.Repos
	notify := NewNotificationService(r.Notifications)
	return &Services{
		Auth:          NewAuthService(r.Users, d.Tokens),
		Users:         NewUserService(r.Users),
		Products:      NewProductService(r.Products, d.Store, d.PresignExpiry),
		Cart:          NewCartService(r.Cart, r.Products),
		Orders:        NewOrderService(r.Orders, r.Addresses, notify, d.Logger),
		Schemes:       NewSchemeService(r.Schemes),
		Prices:        NewPriceService(r.Prices, notify, d.Logger),
		Addresses:     NewAddressService(r.Addresses),
		Notifications: notify,
		Dashboard:     NewDashboardService(r.Products, r.Orders, r.Notifications),
	}
}
