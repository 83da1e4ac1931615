package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/fk219/Send-My-Invoice/internal/application/dto"
	"github.com/fk219/Send-My-Invoice/internal/domain"
	"github.com/fk219/Send-My-Invoice/internal/domain/repository"
	"github.com/fk219/Send-My-Invoice/internal/domain/totals"
	"github.com/fk219/Send-My-Invoice/pkg/currency"
	"github.com/fk219/Send-My-Invoice/pkg/logger"
)

// PaymentLinkUseCase crea un link de cobro por el saldo pendiente y lo guarda en la factura.
type PaymentLinkUseCase struct {
	invoices repository.InvoiceRepository
	clients  repository.ClientRepository
	provider PaymentLinkProvider
	now      func() time.Time
	log      *logger.Logger
}

// NewPaymentLinkUseCase construye el caso de uso.
func NewPaymentLinkUseCase(
	invoices repository.InvoiceRepository,
	clients repository.ClientRepository,
	provider PaymentLinkProvider,
	log *logger.Logger,
) *PaymentLinkUseCase {
	return &PaymentLinkUseCase{
		invoices: invoices,
		clients:  clients,
		provider: provider,
		now:      time.Now,
		log:      log.Component("payment_link"),
	}
}

// Create genera el link. El monto es el saldo pendiente redondeado a la escala de la moneda,
// el mismo que se muestra en pantalla y en el PDF.
func (uc *PaymentLinkUseCase) Create(ctx context.Context, invoiceID string) (*dto.PaymentLinkResponse, error) {
	inv, err := uc.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	summary := totals.ForInvoice(*inv)
	req := PaymentLinkRequest{
		InvoiceID:   inv.ID,
		Number:      inv.Number,
		Currency:    inv.Currency,
		Amount:      currency.Round(summary.BalanceDue, inv.Currency),
		Description: fmt.Sprintf("Balance due %s", currency.Format(summary.BalanceDue, inv.Currency)),
	}
	if req.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: la factura %s no tiene saldo pendiente", domain.ErrInvalidInput, inv.Number)
	}
	if inv.ClientID != "" {
		if c, err := uc.clients.GetByID(ctx, inv.ClientID); err == nil && c != nil {
			req.ClientEmail = c.Email
		}
	}

	link, err := uc.provider.CreatePaymentLink(ctx, req)
	if err != nil {
		uc.log.Error().Err(err).Str("invoice_id", inv.ID).Msg("no se pudo crear el link de pago")
		return nil, fmt.Errorf("crear link de pago: %w", err)
	}

	updated := inv.Clone()
	updated.PaymentLink = link
	updated.UpdatedAt = uc.now()
	if err := uc.invoices.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("guardar link de pago: %w", err)
	}

	uc.log.Info().
		Str("invoice_id", inv.ID).
		Str("amount", req.Amount.String()).
		Bool("simulated", uc.provider.Simulated()).
		Msg("link de pago creado")

	return &dto.PaymentLinkResponse{InvoiceID: inv.ID, PaymentLink: link, Simulated: uc.provider.Simulated()}, nil
}
