package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/fk219/Send-My-Invoice/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary GET /api/dashboard
//
// Respuesta: DashboardDTO (invoice_count, counts_by_status, currencies[] con
// total_revenue, outstanding, overdue y monthly_revenue).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
