package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/fk219/Send-My-Invoice/internal/application/billing"
	"github.com/fk219/Send-My-Invoice/internal/application/dto"
)

// InvoiceHandler maneja las peticiones HTTP de facturas.
type InvoiceHandler struct {
	uc      *billing.InvoiceUseCase
	pdf     *billing.PDFUseCase
	payLink *billing.PaymentLinkUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdf *billing.PDFUseCase, payLink *billing.PaymentLinkUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf, payLink: payLink}
}

// NewDraft GET /api/invoices/new
// Borrador con el siguiente número, fecha de hoy, vencimiento a 14 días y la moneda del perfil. No se guarda.
func (h *InvoiceHandler) NewDraft(c *fiber.Ctx) error {
	draft, err := h.uc.NewDraft(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(draft)
}

// Preview POST /api/invoices/preview
// Recalcula los totales sin guardar; es lo que consulta el editor en cada cambio.
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	t, err := h.uc.Preview(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(t)
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	inv, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// Update PUT /api/invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	inv, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(inv)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(inv)
}

// List GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ListResponse[*dto.InvoiceResponse]{Items: list, Total: len(list)})
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPDF GET /api/invoices/:id/pdf
// Responde application/pdf como adjunto "<número>.pdf".
func (h *InvoiceHandler) GetPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// CreatePaymentLink POST /api/invoices/:id/payment-link
func (h *InvoiceHandler) CreatePaymentLink(c *fiber.Ctx) error {
	res, err := h.payLink.Create(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}
