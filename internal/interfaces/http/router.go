package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/fk219/Send-My-Invoice/internal/application/analytics"
	"github.com/fk219/Send-My-Invoice/internal/application/billing"
	"github.com/fk219/Send-My-Invoice/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProfileUC     *usecase.ProfileUseCase
	ClientUC      *billing.ClientUseCase
	InvoiceUC     *billing.InvoiceUseCase
	InvoicePDF    *billing.PDFUseCase
	PaymentLinkUC *billing.PaymentLinkUseCase
	CatalogUC     *usecase.CatalogUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	AIUC          *usecase.AIUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Perfil del emisor
	profileHandler := NewProfileHandler(deps.ProfileUC)
	api.Get("/profile", profileHandler.Get)
	api.Put("/profile", profileHandler.Update)

	// Clientes
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Facturas (las rutas fijas van antes de /:id)
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDF, deps.PaymentLinkUC)
	invoices.Get("/new", invoiceHandler.NewDraft)
	invoices.Post("/preview", invoiceHandler.Preview)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.GetPDF)
	invoices.Post("/:id/payment-link", invoiceHandler.CreatePaymentLink)

	// Numeración, plantillas y monedas
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.InvoiceUC)
	api.Get("/numbering/next", catalogHandler.NextNumber)
	api.Get("/numbering/presets", catalogHandler.Presets)
	api.Get("/templates", catalogHandler.Templates)
	api.Get("/currencies", catalogHandler.Currencies)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.GetSummary)

	// IA
	aiGroup := api.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	aiGroup.Post("/enhance-description", aiHandler.EnhanceDescription)
	aiGroup.Post("/brand", aiHandler.AnalyzeBrand)
}
