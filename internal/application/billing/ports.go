package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/domain/totals"
)

// InvoiceDocument todo lo que necesita una plantilla para renderizar la factura.
// Summary ya viene calculado; el renderizador no recalcula cifras.
type InvoiceDocument struct {
	Invoice entity.Invoice
	Client  *entity.Client // nil si el cliente fue eliminado
	Profile entity.Profile
	Summary totals.Summary
}

// InvoicePDFGenerator puerto de salida para exportar la factura a PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc InvoiceDocument) ([]byte, error)
}

// PaymentLinkRequest datos para crear un link de cobro del saldo pendiente.
type PaymentLinkRequest struct {
	InvoiceID   string
	Number      string
	Currency    string
	Amount      decimal.Decimal // saldo pendiente ya redondeado a la escala de la moneda
	ClientEmail string
	Description string
}

// PaymentLinkProvider puerto de salida para pasarelas de pago.
type PaymentLinkProvider interface {
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (string, error)
	// Simulated indica si el link no corresponde a un cobro real.
	Simulated() bool
}
