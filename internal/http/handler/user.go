package handler

import (
	"github.com/gofiber/fiber/v2"

	"agrimart/internal/http/middleware"
	"agrimart/internal/service"
	"agrimart/internal/validation"
)

// GetProfile returns the caller's account.
//
//	@Summary	Current user
//	@Tags		users
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	model.User
//	@Router		/me [get]
func GetProfile(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.Profile(c.UserContext(), middleware.Phone(c))
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(u)
	}
}

// UpdateProfile changes the caller's name, email or location.
//
//	@Summary	Update profile
//	@Tags		users
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.ProfileUpdate	true	"fields to change"
//	@Success	200		{object}	model.User
//	@Router		/me [patch]
func UpdateProfile(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var upd service.ProfileUpdate
		if err := c.BodyParser(&upd); err != nil {
			return badBody(c)
		}
		u, err := svc.UpdateProfile(c.UserContext(), middleware.Phone(c), upd)
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(u)
	}
}

// SellerContact returns a seller's name and phone for buyers to call.
//
//	@Summary	Seller contact
//	@Tags		users
//	@Security	BearerAuth
//	@Produce	json
//	@Param		phone	path		string	true	"seller phone"
//	@Success	200		{object}	model.SellerContact
//	@Router		/sellers/{phone}/contact [get]
func SellerContact(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		phone, ok := validation.NormalizePhone(c.Params("phone"))
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PHONE", "invalid phone number")
		}
		contact, err := svc.SellerContact(c.UserContext(), phone)
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(contact)
	}
}
