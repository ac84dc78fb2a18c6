package handler

import (
	"github.com/gofiber/fiber/v2"

	"agrimart/internal/http/middleware"
	"agrimart/internal/service"
)

type addToCartRequest struct {
	ProductID int64   `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// GetCart returns the buyer's cart with line totals.
//
//	@Summary	View cart
//	@Tags		buyer
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	service.CartView
//	@Router		/cart [get]
func GetCart(svc service.CartService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := svc.Items(c.UserContext(), middleware.Phone(c))
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(view)
	}
}

// AddToCart adds quantity (default 1) of a product to the buyer's cart.
//
//	@Summary	Add to cart
//	@Tags		buyer
//	@Security	BearerAuth
//	@Accept		json
//	@Param		body	body	addToCartRequest	true	"line"
//	@Success	204
//	@Failure	409	{object}	errorPayload
//	@Router		/cart [post]
func AddToCart(svc service.CartService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req addToCartRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		if req.ProductID <= 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "product_id is required")
		}
		if err := svc.Add(c.UserContext(), middleware.Phone(c), req.ProductID, req.Quantity); err != nil {
			return fromError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// RemoveFromCart drops one product from the buyer's cart.
//
//	@Summary	Remove from cart
//	@Tags		buyer
//	@Security	BearerAuth
//	@Param		productId	path	int	true	"product id"
//	@Success	204
//	@Failure	404	{object}	errorPayload
//	@Router		/cart/{productId} [delete]
func RemoveFromCart(svc service.CartService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "productId")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Remove(c.UserContext(), middleware.Phone(c), id); err != nil {
			return fromError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ClearCart empties the buyer's cart.
//
//	@Summary	Clear cart
//	@Tags		buyer
//	@Security	BearerAuth
//	@Success	204
//	@Router		/cart [delete]
func ClearCart(svc service.CartService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Clear(c.UserContext(), middleware.Phone(c)); err != nil {
			return fromError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
