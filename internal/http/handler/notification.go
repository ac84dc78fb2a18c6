package handler

import (
	"github.com/gofiber/fiber/v2"

	"agrimart/internal/http/middleware"
	"agrimart/internal/service"
)

// ListNotifications returns the caller's notifications, newest first.
// ?unread=true limits the list to unread ones.
//
//	@Summary	List notifications
//	@Tags		notifications
//	@Security	BearerAuth
//	@Produce	json
//	@Param		unread	query		bool	false	"only unread"
//	@Success	200		{array}	model.Notification
//	@Router		/notifications [get]
func ListNotifications(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext(), middleware.Phone(c), c.QueryBool("unread", false))
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(res)
	}
}

// MarkNotificationRead flags one of the caller's notifications as read.
//
//	@Summary	Mark a notification read
//	@Tags		notifications
//	@Security	BearerAuth
//	@Param		id	path	int	true	"notification id"
//	@Success	204
//	@Router		/notifications/{id}/read [post]
func MarkNotificationRead(svc service.NotificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.MarkRead(c.UserContext(), middleware.Phone(c), id); err != nil {
			return fromError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// SellerDashboard summarises the calling seller's listings, orders and
// unread notifications.
//
//	@Summary	Seller dashboard
//	@Tags		seller
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	service.SellerStats
//	@Router		/seller/dashboard [get]
func SellerDashboard(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Seller(c.UserContext(), middleware.Phone(c))
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(stats)
	}
}
