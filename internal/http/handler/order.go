package handler

import (
	"github.com/gofiber/fiber/v2"

	"agrimart/internal/http/middleware"
	"agrimart/internal/model"
	"agrimart/internal/service"
)

type statusRequest struct {
	Status model.OrderStatus `json:"status"`
}

// ListOrders returns the orders the caller sold or bought, depending on role.
//
//	@Summary	Orders sold or bought by the caller
//	@Tags		orders
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	model.Order
//	@Router		/orders [get]
func ListOrders(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := middleware.Claims(c)
		orders, err := svc.List(c.UserContext(), claims.Phone(), claims.Role)
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(orders)
	}
}

// Checkout places one order per cart line.
//
//	@Summary	Check out the cart
//	@Tags		buyer
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.CheckoutInput	true	"delivery and payment"
//	@Success	201		{array}		model.Order
//	@Failure	400		{object}	errorPayload
//	@Failure	409		{object}	errorPayload
//	@Router		/orders/checkout [post]
func Checkout(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CheckoutInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		orders, err := svc.Checkout(c.UserContext(), middleware.Phone(c), in)
		if err != nil {
			return fromError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(orders)
	}
}

// UpdateOrderStatus moves one of the caller's sales to its next status.
//
//	@Summary	Change order status
//	@Tags		seller
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		number	path		string			true	"order number"
//	@Param		body	body		statusRequest	true	"new status"
//	@Success	200		{object}	model.Order
//	@Failure	409		{object}	errorPayload
//	@Router		/orders/{number}/status [patch]
func UpdateOrderStatus(svc service.OrderService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req statusRequest
		if err := c.BodyParser(&req); err != nil {
			return badBody(c)
		}
		if req.Status == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_STATUS", "status is required")
		}
		o, err := svc.UpdateStatus(c.UserContext(), middleware.Phone(c), c.Params("number"), req.Status)
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(o)
	}
}
