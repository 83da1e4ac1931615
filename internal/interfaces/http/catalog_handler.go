package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fk219/Send-My-Invoice/internal/application/billing"
	"github.com/fk219/Send-My-Invoice/internal/application/usecase"
)

// CatalogHandler numeración, plantillas y monedas disponibles.
type CatalogHandler struct {
	catalog  *usecase.CatalogUseCase
	invoices *billing.InvoiceUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalog *usecase.CatalogUseCase, invoices *billing.InvoiceUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, invoices: invoices}
}

// NextNumber GET /api/numbering/next?format=INV-{YYYY}-
// Sin format usa el formato del perfil.
func (h *CatalogHandler) NextNumber(c *fiber.Ctx) error {
	res, err := h.invoices.NextNumber(c.Context(), c.Query("format"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// Presets GET /api/numbering/presets
func (h *CatalogHandler) Presets(c *fiber.Ctx) error {
	return c.JSON(h.catalog.NumberingPresets())
}

// Templates GET /api/templates
func (h *CatalogHandler) Templates(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Templates())
}

// Currencies GET /api/currencies
func (h *CatalogHandler) Currencies(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Currencies())
}
