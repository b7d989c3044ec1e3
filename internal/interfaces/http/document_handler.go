package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fulfillment-api/internal/application/fulfillment"
)

// HeaderDocumentDigest SHA-256 (base64) de la forma canónica del DespatchAdvice.
const HeaderDocumentDigest = "X-Document-Digest"

// DocumentHandler descarga de irsaliyes emitidas.
type DocumentHandler struct {
	uc *fulfillment.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *fulfillment.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// ListByOrder godoc
// @Summary      Irsaliyes emitidas para un pedido
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        order  path  string  true  "Número de pedido"
// @Success      200  {array}  dto.DeliveryNoteSummary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/orders/{order}/delivery-notes [get]
func (h *DocumentHandler) ListByOrder(c *fiber.Ctx) error {
	out, err := h.uc.ListByOrder(c.UserContext(), param(c, "order"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      PDF de la irsaliye
// @Tags         documents
// @Security     Bearer
// @Produce      application/pdf
// @Param        documentNo  path  string  true  "Número de documento (serie-secuencia)"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/delivery-notes/{documentNo}/pdf [get]
func (h *DocumentHandler) PDF(c *fiber.Ctx) error {
	b, filename, err := h.uc.DeliveryNotePDF(c.UserContext(), param(c, "documentNo"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(b)
}

// XML godoc
// @Summary      DespatchAdvice UBL de la irsaliye
// @Tags         documents
// @Security     Bearer
// @Produce      application/xml
// @Param        documentNo  path  string  true  "Número de documento (serie-secuencia)"
// @Success      200  {file}  file
// @Header       200  {string}  X-Document-Digest  "SHA-256 (base64) de la forma canónica"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fulfillment/delivery-notes/{documentNo}/xml [get]
func (h *DocumentHandler) XML(c *fiber.Ctx) error {
	documentNo := param(c, "documentNo")
	b, digest, err := h.uc.DeliveryNoteXML(c.UserContext(), documentNo)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="irsaliye_%s.xml"`, documentNo))
	c.Set(HeaderDocumentDigest, digest)
	return c.Send(b)
}
