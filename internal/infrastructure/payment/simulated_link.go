package payment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	appbilling "github.com/fk219/Send-My-Invoice/internal/application/billing"
)

// SimulatedCheckoutBase prefijo de los links simulados.
const SimulatedCheckoutBase = "https://checkout.stripe.com/pay/inv_"

var _ appbilling.PaymentLinkProvider = (*SimulatedLinkProvider)(nil)

// SimulatedLinkProvider genera links con forma de Stripe sin cobro real.
// Se usa cuando no hay STRIPE_SECRET_KEY.
type SimulatedLinkProvider struct{}

func NewSimulatedLinkProvider() *SimulatedLinkProvider { return &SimulatedLinkProvider{} }

func (p *SimulatedLinkProvider) Simulated() bool { return true }

func (p *SimulatedLinkProvider) CreatePaymentLink(_ context.Context, _ appbilling.PaymentLinkRequest) (string, error) {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	return SimulatedCheckoutBase + token, nil
}
