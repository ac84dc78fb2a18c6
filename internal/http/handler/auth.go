package handler

import (
	"github.com/gofiber/fiber/v2"

	"agrimart/internal/service"
)

// Register creates an account and returns a session token.
//
//	@Summary	Register a seller or buyer
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.RegisterInput	true	"account"
//	@Success	201		{object}	service.Session
//	@Failure	409		{object}	errorPayload
//	@Failure	422		{object}	errorPayload
//	@Router		/auth/register [post]
func Register(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.RegisterInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		sess, err := svc.Register(c.UserContext(), in)
		if err != nil {
			return fromError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(sess)
	}
}

// Login exchanges a phone number and password for a session token.
//
//	@Summary	Log in
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.LoginInput	true	"credentials"
//	@Success	200		{object}	service.Session
//	@Failure	401		{object}	errorPayload
//	@Router		/auth/login [post]
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.LoginInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		sess, err := svc.Login(c.UserContext(), in)
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(sess)
	}
}
