package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/fk219/Send-My-Invoice/internal/domain"
	"github.com/fk219/Send-My-Invoice/internal/domain/repository"
	"github.com/fk219/Send-My-Invoice/internal/domain/totals"
)

// PDFUseCase exporta la factura a PDF con la plantilla elegida.
type PDFUseCase struct {
	invoices  repository.InvoiceRepository
	clients   repository.ClientRepository
	profiles  repository.ProfileRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoices repository.InvoiceRepository,
	clients repository.ClientRepository,
	profiles repository.ProfileRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{invoices: invoices, clients: clients, profiles: profiles, generator: generator}
}

// DownloadInvoicePDF reúne factura, cliente, perfil y totales y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien; filename = "<número>.pdf".
//   - domain.ErrNotFound         si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	// ── 1. Cargar factura ─────────────────────────────────────────────────────
	inv, err := uc.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	// ── 2. Perfil emisor y cliente (puede haber sido eliminado) ───────────────
	profile, err := currentProfile(ctx, uc.profiles)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: %w", err)
	}
	doc := InvoiceDocument{Invoice: *inv, Profile: profile, Summary: totals.ForInvoice(*inv)}
	if inv.ClientID != "" {
		client, err := uc.clients.GetByID(ctx, inv.ClientID)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
		}
		doc.Client = client
	}

	// ── 3. Generar PDF ────────────────────────────────────────────────────────
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, PDFFilename(inv.Number), nil
}

// PDFFilename "<número>.pdf" sin separadores de ruta ni comillas.
func PDFFilename(number string) string {
	name := strings.NewReplacer("/", "-", "\\", "-", "\"", "", "\n", "", "\r", "").Replace(strings.TrimSpace(number))
	if name == "" {
		name = "invoice"
	}
	return name + ".pdf"
}
