package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fulfillment-api/internal/application/dto"
	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
)

// ShelfHandler directorio de estantes por producto.
type ShelfHandler struct {
	uc *fulfillment.ShelfUseCase
}

// NewShelfHandler construye el handler.
func NewShelfHandler(uc *fulfillment.ShelfUseCase) *ShelfHandler {
	return &ShelfHandler{uc: uc}
}

// List godoc
// @Summary      Estantes de varios productos
// @Tags         shelves
// @Security     Bearer
// @Produce      json
// @Param        products  query  string  false  "Códigos de producto separados por coma"
// @Success      200  {array}  dto.ShelfResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/shelves [get]
func (h *ShelfHandler) List(c *fiber.Ctx) error {
	var codes []string
	for _, p := range strings.Split(c.Query("products"), ",") {
		if p = strings.TrimSpace(p); p != "" {
			codes = append(codes, p)
		}
	}
	out, err := h.uc.List(c.UserContext(), codes)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Estante de un producto
// @Tags         shelves
// @Security     Bearer
// @Produce      json
// @Param        productCode  path  string  true  "Código de producto"
// @Success      200  {object}  dto.ShelfResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/shelves/{productCode} [get]
func (h *ShelfHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), param(c, "productCode"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Asignar estante a un producto
// @Tags         shelves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productCode  path  string  true  "Código de producto"
// @Param        body  body  dto.UpsertShelfRequest  true  "Código de estante"
// @Success      200  {object}  dto.ShelfResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/shelves/{productCode} [put]
func (h *ShelfHandler) Upsert(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.UpsertShelfRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Upsert(c.UserContext(), param(c, "productCode"), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Quitar el estante de un producto
// @Tags         shelves
// @Security     Bearer
// @Produce      json
// @Param        productCode  path  string  true  "Código de producto"
// @Success      204  "No Content"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/shelves/{productCode} [delete]
func (h *ShelfHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), param(c, "productCode")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
