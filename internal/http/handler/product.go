package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"agrimart/internal/http/middleware"
	"agrimart/internal/service"
)

// ListProducts serves the marketplace: active, in-stock products with their
// sellers, optionally filtered by ?q= and capped by ?limit=.
//
//	@Summary	Marketplace listing and search
//	@Tags		products
//	@Produce	json
//	@Param		q		query		string	false	"search term"
//	@Param		limit	query		int		false	"maximum results, 0 for all"
//	@Success	200		{array}		model.ProductListing
//	@Router		/products [get]
func ListProducts(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if q := strings.TrimSpace(c.Query("q")); q != "" {
			res, err := svc.Search(c.UserContext(), q)
			if err != nil {
				return fromError(c, err)
			}
			return c.JSON(res)
		}

		limit, ok := intQuery(c, "limit", 0)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		res, err := svc.Marketplace(c.UserContext(), limit)
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(res)
	}
}

// GetProduct returns one product by id.
//
//	@Summary	Get a product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"product id"
//	@Success	200	{object}	model.Product
//	@Failure	404	{object}	errorPayload
//	@Router		/products/{id} [get]
func GetProduct(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(p)
	}
}

// ProductImageURL returns a short-lived download URL for the product photo.
//
//	@Summary	Presigned product image URL
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"product id"
//	@Success	200	{object}	map[string]string
//	@Failure	404	{object}	errorPayload
//	@Router		/products/{id}/image [get]
func ProductImageURL(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		url, err := svc.ImageURL(c.UserContext(), id)
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// MyProducts lists the calling seller's products in every status.
//
//	@Summary	Own products
//	@Tags		seller
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}	model.Product
//	@Router		/seller/products [get]
func MyProducts(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Mine(c.UserContext(), middleware.Phone(c))
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateProduct lists new produce for the calling seller.
//
//	@Summary	Add a product
//	@Tags		seller
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		service.ProductInput	true	"product"
//	@Success	201		{object}	model.Product
//	@Failure	422		{object}	errorPayload
//	@Router		/seller/products [post]
func CreateProduct(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ProductInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		p, err := svc.Add(c.UserContext(), middleware.Phone(c), in)
		if err != nil {
			return fromError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// UpdateProduct replaces the editable fields of one of the caller's products.
//
//	@Summary	Update a product
//	@Tags		seller
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"product id"
//	@Param		body	body		service.ProductInput	true	"product"
//	@Success	200		{object}	model.Product
//	@Router		/seller/products/{id} [put]
func UpdateProduct(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in service.ProductInput
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
		p, err := svc.Update(c.UserContext(), middleware.Phone(c), id, in)
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(p)
	}
}

// DeleteProduct takes a product off the marketplace.
//
//	@Summary	Deactivate a product
//	@Tags		seller
//	@Security	BearerAuth
//	@Param		id	path	int	true	"product id"
//	@Success	204
//	@Router		/seller/products/{id} [delete]
func DeleteProduct(svc service.ProductService) fiber.Handler {
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

// UploadProductImage stores a photo sent as multipart/form-data field "image".
//
//	@Summary	Upload a product image
//	@Tags		seller
//	@Security	BearerAuth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id		path		int		true	"product id"
//	@Param		image	formData	file	true	"photo"
//	@Success	200		{object}	model.Product
//	@Failure	503		{object}	errorPayload
//	@Router		/seller/products/{id}/image [put]
func UploadProductImage(svc service.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "id")
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		fh, err := c.FormFile("image")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "image is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		p, err := svc.UploadImage(c.UserContext(), middleware.Phone(c), id, service.ImageUpload{
			Reader:   f,
			Filename: fh.Filename,
			Size:     fh.Size,
		})
		if err != nil {
			return fromError(c, err)
		}
		return c.JSON(p)
	}
}
