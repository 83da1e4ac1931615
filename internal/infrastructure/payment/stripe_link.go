// Package payment implementa los proveedores de links de cobro.
package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v82"

	appbilling "github.com/fk219/Send-My-Invoice/internal/application/billing"
	"github.com/fk219/Send-My-Invoice/internal/domain"
	"github.com/fk219/Send-My-Invoice/pkg/config"
	"github.com/fk219/Send-My-Invoice/pkg/currency"
)

var _ appbilling.PaymentLinkProvider = (*StripeLinkProvider)(nil)

// StripeLinkProvider crea una sesión de Stripe Checkout por el saldo pendiente.
type StripeLinkProvider struct {
	client     *stripe.Client
	successURL string
	cancelURL  string
}

// NewStripeLinkProvider construye el proveedor con la clave secreta de la cuenta.
func NewStripeLinkProvider(cfg config.StripeConfig) *StripeLinkProvider {
	return &StripeLinkProvider{
		client:     stripe.NewClient(cfg.SecretKey, nil),
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
}

func (p *StripeLinkProvider) Simulated() bool { return false }

func (p *StripeLinkProvider) CreatePaymentLink(ctx context.Context, req appbilling.PaymentLinkRequest) (string, error) {
	params, err := checkoutParams(req, p.successURL, p.cancelURL)
	if err != nil {
		return "", err
	}
	session, err := p.client.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: stripe checkout: %v", domain.ErrUnavailable, err)
	}
	return session.URL, nil
}

// checkoutParams arma una sola línea por el monto exacto en unidades menores de la moneda.
func checkoutParams(req appbilling.PaymentLinkRequest, successURL, cancelURL string) (*stripe.CheckoutSessionCreateParams, error) {
	minor := currency.MinorUnits(req.Amount, req.Currency)
	if minor <= 0 {
		return nil, fmt.Errorf("%w: el saldo pendiente debe ser mayor que cero", domain.ErrInvalidInput)
	}

	name := "Invoice " + req.Number
	product := &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
		Name: stripe.String(name),
	}
	if req.Description != "" {
		product.Description = stripe.String(req.Description)
	}

	params := &stripe.CheckoutSessionCreateParams{
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
					Currency:    stripe.String(strings.ToLower(currency.Normalize(req.Currency))),
					ProductData: product,
					UnitAmount:  stripe.Int64(minor),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String("payment"),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		Metadata: map[string]string{
			"invoice_id":     req.InvoiceID,
			"invoice_number": req.Number,
		},
	}
	if req.ClientEmail != "" {
		params.CustomerEmail = stripe.String(req.ClientEmail)
	}
	return params, nil
}
