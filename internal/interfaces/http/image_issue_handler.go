package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fulfillment-api/internal/application/dto"
	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
)

// ImageIssueHandler reportes de imagen de producto incorrecta.
type ImageIssueHandler struct {
	uc *fulfillment.ImageIssueUseCase
}

// NewImageIssueHandler construye el handler.
func NewImageIssueHandler(uc *fulfillment.ImageIssueUseCase) *ImageIssueHandler {
	return &ImageIssueHandler{uc: uc}
}

// Report godoc
// @Summary      Reportar imagen de producto incorrecta
// @Description  Si ya hay un reporte abierto para la línea se devuelve ese mismo.
// @Tags         image-issues
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReportImageIssueRequest  true  "Pedido, línea y nota"
// @Success      200  {object}  dto.ImageIssueResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/image-issues [post]
func (h *ImageIssueHandler) Report(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.ReportImageIssueRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Report(c.UserContext(), userID, GetUserName(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar reportes de imagen
// @Tags         image-issues
// @Security     Bearer
// @Produce      json
// @Param        order_number  query  string  false  "Número de pedido"
// @Param        product_code  query  string  false  "Código de producto"
// @Param        status  query  string  false  "Estado del reporte"  Enums(OPEN,REVIEWED,FIXED)
// @Param        limit  query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {array}  dto.ImageIssueResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/image-issues [get]
func (h *ImageIssueHandler) List(c *fiber.Ctx) error {
	var f dto.ImageIssueFilter
	if ok, err := bindQueryAndValidate(c, &f); !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de un reporte de imagen
// @Tags         image-issues
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "ID del reporte"
// @Param        body  body  dto.UpdateImageIssueStatusRequest  true  "Nuevo estado y nota"
// @Success      200  {object}  dto.ImageIssueResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/image-issues/{id} [patch]
func (h *ImageIssueHandler) UpdateStatus(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateImageIssueStatusRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
