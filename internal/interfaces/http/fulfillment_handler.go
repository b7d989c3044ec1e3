package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fulfillment-api/internal/application/dto"
	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
)

// FulfillmentHandler tablero, detalle y máquina de estados del picking.
type FulfillmentHandler struct {
	uc *fulfillment.WorkflowUseCase
}

// NewFulfillmentHandler construye el handler.
func NewFulfillmentHandler(uc *fulfillment.WorkflowUseCase) *FulfillmentHandler {
	return &FulfillmentHandler{uc: uc}
}

// Overview godoc
// @Summary      Tablero de pedidos pendientes
// @Tags         fulfillment
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por pedido, código o nombre de cliente"
// @Param        status  query  string  false  "Estado del workflow"  Enums(PENDING,PICKING,LOADED,PARTIALLY_LOADED,DISPATCHED)
// @Param        coverage  query  string  false  "Cobertura de stock"  Enums(FULL,PARTIAL,NONE)
// @Param        customer_code  query  string  false  "Código de cliente"
// @Param        limit  query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.OverviewResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/orders [get]
func (h *FulfillmentHandler) Overview(c *fiber.Ctx) error {
	var f dto.OverviewFilter
	if ok, err := bindQueryAndValidate(c, &f); !ok {
		return err
	}
	out, err := h.uc.GetOverview(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Detalle del pedido con cobertura, reservas y progreso
// @Tags         fulfillment
// @Security     Bearer
// @Produce      json
// @Param        order  path  string  true  "Número de pedido"
// @Success      200  {object}  dto.OrderDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/orders/{order} [get]
func (h *FulfillmentHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.GetOrderDetail(c.UserContext(), param(c, "order"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Start godoc
// @Summary      Iniciar o refrescar el picking
// @Tags         fulfillment
// @Security     Bearer
// @Produce      json
// @Param        order  path  string  true  "Número de pedido"
// @Success      200  {object}  dto.WorkflowResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/orders/{order}/start [post]
func (h *FulfillmentHandler) Start(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.StartPicking(c.UserContext(), param(c, "order"), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateItem godoc
// @Summary      Registrar recogido, extra o estante de una línea
// @Tags         fulfillment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        order  path  string  true  "Número de pedido"
// @Param        lineKey  path  string  true  "Clave de la línea"
// @Param        body  body  dto.UpdateItemRequest  true  "Cambios de la línea"
// @Success      200  {object}  dto.UpdateItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/orders/{order}/items/{lineKey} [patch]
func (h *FulfillmentHandler) UpdateItem(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateItemRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateItem(c.UserContext(), param(c, "order"), param(c, "lineKey"), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Dispatch godoc
// @Summary      Despachar lo recogido con irsaliye
// @Tags         fulfillment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        order  path  string  true  "Número de pedido"
// @Param        body  body  dto.DispatchRequest  true  "Serie y datos de transporte"
// @Success      201  {object}  dto.DispatchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/orders/{order}/dispatch [post]
func (h *FulfillmentHandler) Dispatch(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.DispatchRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Dispatch(c.UserContext(), param(c, "order"), userID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// StatusMap godoc
// @Summary      Estado del workflow por pedido
// @Tags         fulfillment
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StatusMapRequest  true  "Números de pedido"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/status-map [post]
func (h *FulfillmentHandler) StatusMap(c *fiber.Ctx) error {
	var in dto.StatusMapRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.GetWorkflowStatusMap(c.UserContext(), in.OrderNumbers)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// param valor de ruta decodificado; los códigos del ERP pueden traer espacios o barras.
func param(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
