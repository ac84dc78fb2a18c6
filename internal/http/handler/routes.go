package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"agrimart/internal/http/middleware"
	"agrimart/internal/model"
	"agrimart/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Auth
// middleware is attached per route so unknown paths still answer 404.
// limiter guards the auth endpoints and may be nil.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc *service.Services, limiter *middleware.RateLimiter) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	authGuard := []fiber.Handler{}
	if limiter != nil {
		authGuard = append(authGuard, limiter.Handler())
	}
	app.Post("/auth/register", append(authGuard, Register(svc.Auth))...)
	app.Post("/auth/login", append(authGuard, Login(svc.Auth))...)

	app.Get("/schemes", ListSchemes(svc.Schemes))
	app.Get("/products", ListProducts(svc.Products))
	app.Get("/products/:id", GetProduct(svc.Products))
	app.Get("/products/:id/image", ProductImageURL(svc.Products))
	app.Get("/prices/:name", PriceHistory(svc.Prices))

	authn := middleware.Authenticate(svc.Auth)
	seller := middleware.RequireRole(model.RoleSeller)
	buyer := middleware.RequireRole(model.RoleBuyer)

	app.Get("/me", authn, GetProfile(svc.Users))
	app.Patch("/me", authn, UpdateProfile(svc.Users))
	app.Get("/sellers/:phone/contact", authn, SellerContact(svc.Users))

	app.Get("/addresses", authn, ListAddresses(svc.Addresses))
	app.Post("/addresses", authn, AddAddress(svc.Addresses))
	app.Post("/addresses/:id/default", authn, SetDefaultAddress(svc.Addresses))
	app.Delete("/addresses/:id", authn, DeleteAddress(svc.Addresses))

	app.Get("/notifications", authn, ListNotifications(svc.Notifications))
	app.Post("/notifications/:id/read", authn, MarkNotificationRead(svc.Notifications))

	app.Get("/orders", authn, ListOrders(svc.Orders))
	app.Post("/orders/checkout", authn, buyer, Checkout(svc.Orders))
	app.Patch("/orders/:number/status", authn, seller, UpdateOrderStatus(svc.Orders))

	app.Get("/seller/dashboard", authn, seller, SellerDashboard(svc.Dashboard))
	app.Get("/seller/products", authn, seller, MyProducts(svc.Products))
	app.Post("/seller/products", authn, seller, CreateProduct(svc.Products))
	app.Put("/seller/products/:id", authn, seller, UpdateProduct(svc.Products))
	app.Delete("/seller/products/:id", authn, seller, DeleteProduct(svc.Products))
	app.Put("/seller/products/:id/image", authn, seller, UploadProductImage(svc.Products))
	app.Post("/prices", authn, seller, RecordPrice(svc.Prices))

	app.Get("/cart", authn, buyer, GetCart(svc.Cart))
	app.Post("/cart", authn, buyer, AddToCart(svc.Cart))
	app.Delete("/cart", authn, buyer, ClearCart(svc.Cart))
	app.Delete("/cart/:productId", authn, buyer, RemoveFromCart(svc.Cart))
}
