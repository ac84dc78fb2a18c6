package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"agrimart/internal/service"
)

// ListSchemes returns the active government schemes.
//
//	@Summary	Government schemes
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	model.Scheme
//	@Router		/schemes [get]
func ListSchemes(svc service.SchemeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		schemes, err := svc.List(c.UserContext())
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(schemes)
	}
}

// PriceHistory returns recent market prices for a commodity, newest first.
//
//	@Summary	Market price history
//	@Tags		catalog
//	@Produce	json
//	@Param		name	path		string	true	"commodity name"
//	@Param		limit	query		int		false	"number of points, default 30"
//	@Success	200		{array}	model.PricePoint
//	@Router		/prices/{name} [get]
func PriceHistory(svc service.PriceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name, err := url.PathUnescape(c.Params("name"))
		if err != nil || name == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_NAME", "invalid product name")
		}
		limit, ok := intQuery(c, "limit", 0)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		points, err := svc.History(c.UserContext(), name, limit)
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(points)
	}
}

// RecordPrice stores a market price observation.
//
//	@Summary	Record a market price
//	@Tags		seller
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.PriceInput	true	"observation"
//	@Success	201		{object}	model.PricePoint
//	@Failure	422		{object}	errorPayload
//	@Router		/prices [post]
func RecordPrice(svc service.PriceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.PriceInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		p, err := svc.Record(c.UserContext(), in)
		if err != nil {
			return fromError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}
