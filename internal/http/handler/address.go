package handler

import (
	"github.com/gofiber/fiber/v2"

	"agrimart/internal/http/middleware"
	"agrimart/internal/service"
)

// ListAddresses returns the caller's saved addresses.
//
//	@Summary	List addresses
//	@Tags		addresses
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	model.Address
//	@Router		/addresses [get]
func ListAddresses(svc service.AddressService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext(), middleware.Phone(c))
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(res)
	}
}

// AddAddress saves a delivery address; the first one becomes the default.
//
//	@Summary	Add an address
//	@Tags		addresses
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.AddressInput	true	"address"
//	@Success	201		{object}	model.Address
//	@Failure	422		{object}	errorPayload
//	@Router		/addresses [post]
func AddAddress(svc service.AddressService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.AddressInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		a, err := svc.Add(c.UserContext(), middleware.Phone(c), in)
		if err != nil {
			return fromError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	}
}

// SetDefaultAddress makes one of the caller's addresses the default.
//
//	@Summary	Make an address the default
//	@Tags		addresses
//	@Security	BearerAuth
//	@Param		id	path	int	true	"address id"
//	@Success	204
//	@Failure	404	{object}	errorPayload
//	@Router		/addresses/{id}/default [post]
func SetDefaultAddress(svc service.AddressService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.SetDefault(c.UserContext(), middleware.Phone(c), id); err != nil {
			return fromError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// DeleteAddress removes one of the caller's addresses.
//
//	@Summary	Delete an address
//	@Tags		addresses
//	@Security	BearerAuth
//	@Param		id	path	int	true	"address id"
//	@Success	204
//	@Failure	404	{object}	errorPayload
//	@Router		/addresses/{id} [delete]
func DeleteAddress(svc service.AddressService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), middleware.Phone(c), id); err != nil {
			return fromError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
