package billing_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fk219/Send-My-Invoice/internal/application/billing"
	"github.com/fk219/Send-My-Invoice/internal/application/dto"
	"github.com/fk219/Send-My-Invoice/internal/domain"
	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/domain/numbering"
	"github.com/fk219/Send-My-Invoice/internal/infrastructure/kv"
	"github.com/fk219/Send-My-Invoice/pkg/logger"
)

var fixedNow = time.Date(2024, 10, 24, 15, 30, 0, 0, time.UTC)

type fixture struct {
	store    *kv.MemoryStore
	invoices *kv.InvoiceRepository
	clients  *kv.ClientRepository
	profiles *kv.ProfileRepository
	uc       *billing.InvoiceUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := kv.NewMemoryStore()
	f := &fixture{
		store:    store,
		invoices: kv.NewInvoiceRepository(store),
		clients:  kv.NewClientRepository(store),
		profiles: kv.NewProfileRepository(store),
	}
	gen := numbering.NewGenerator(numbering.WithClock(func() time.Time { return fixedNow }))
	f.uc = billing.NewInvoiceUseCase(f.invoices, f.clients, f.profiles, gen, "", logger.NewNop()).
		WithClock(func() time.Time { return fixedNow })
	return f
}

func body(number string) dto.InvoiceRequest {
	return dto.InvoiceRequest{
		Number:    number,
		IssueDate: "2024-10-24",
		Items: []dto.LineItemDTO{
			{Description: "Design", Quantity: decimal.NewFromInt(40), UnitPrice: decimal.NewFromInt(100)},
			{Description: "Build", Quantity: decimal.NewFromInt(20), UnitPrice: decimal.NewFromInt(120)},
		},
		TaxType:  "percent",
		TaxValue: decimal.NewFromInt(10),
	}
}

func TestNewDraft_ValoresPorDefecto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	draft, err := f.uc.NewDraft(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-2024-0001", draft.Number)
	assert.Equal(t, "2024-10-24", draft.IssueDate)
	assert.Equal(t, "2024-11-07", draft.DueDate)
	assert.Equal(t, "draft", draft.Status)
	assert.Equal(t, "modern", draft.Template)
	assert.Equal(t, "portrait", draft.Layout)
	assert.Equal(t, "USD", draft.Currency)
	assert.Equal(t, "Thank you for your business!", draft.Notes)
	assert.Equal(t, "https://paypal.me/acmestudio", draft.PaymentLink)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, "Consultation", draft.Items[0].Description)
	assert.NotEmpty(t, draft.ID)

	list, err := f.uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "el borrador no se persiste")
}

func TestNewDraft_AvanzaSobreElMaximoYUsaFormatoDelPerfil(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := entity.DefaultProfile()
	p.InvoiceFormat = "#{NNNN}"
	require.NoError(t, f.profiles.Save(ctx, p))

	_, err := f.uc.Create(ctx, body("#0001"))
	require.NoError(t, err)
	_, err = f.uc.Create(ctx, body("#0007"))
	require.NoError(t, err)

	draft, err := f.uc.NewDraft(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#0008", draft.Number)
}

func TestCreate_CalculaTotales(t *testing.T) {
	f := newFixture(t)
	got, err := f.uc.Create(context.Background(), body("INV-2024-0001"))
	require.NoError(t, err)

	assert.True(t, got.Totals.Subtotal.Equal(decimal.NewFromInt(6400)))
	assert.True(t, got.Totals.TaxAmount.Equal(decimal.NewFromInt(640)))
	assert.True(t, got.Totals.Total.Equal(decimal.NewFromInt(7040)))
	assert.Equal(t, "$7,040.00", got.Totals.Formatted.Total)
	assert.Equal(t, "$7,040.00", got.Totals.Formatted.BalanceDue)
	assert.Equal(t, "2024-11-07", got.DueDate)
	for _, it := range got.Items {
		assert.NotEmpty(t, it.ID)
	}
}

func TestCreate_NumeroDuplicado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.Create(ctx, body("INV-2024-0001"))
	require.NoError(t, err)

	_, err = f.uc.Create(ctx, body("INV-2024-0001"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_SinNumeroOClienteInexistente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, body(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	b := body("INV-2024-0001")
	b.ClientID = "no-existe"
	_, err = f.uc.Create(ctx, b)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ConservaCreatedAtYMismoNumero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created, err := f.uc.Create(ctx, body("INV-2024-0001"))
	require.NoError(t, err)

	b := body("INV-2024-0001")
	b.Status = "paid"
	b.AmountPaid = decimal.NewFromInt(7040)
	updated, err := f.uc.Update(ctx, created.ID, b)
	require.NoError(t, err)
	assert.Equal(t, "paid", updated.Status)
	assert.True(t, updated.Totals.BalanceDue.IsZero())

	_, err = f.uc.Update(ctx, "otro", b)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPreview_NoPersisteYUsaMonedaDelPerfil(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := body("")
	b.Items = nil
	b.Shipping = decimal.NewFromInt(15)
	b.AmountPaid = decimal.NewFromInt(5)
	got, err := f.uc.Preview(ctx, b)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(15)))
	assert.True(t, got.BalanceDue.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "$10.00", got.Formatted.BalanceDue)

	b.Currency = "jpy"
	got, err = f.uc.Preview(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, "¥10", got.Formatted.BalanceDue)
}

func TestPreview_CoincideConFacturaGuardada(t *testing.T) {
	cases := []struct {
		name         string
		discountType string
		taxType      string
	}{
		{"modos omitidos", "", ""},
		{"porcentaje explícito", "percent", "percent"},
		{"montos", "amount", "amount"},
		{"mixto", "", "amount"},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()

			b := body(fmt.Sprintf("INV-2024-%04d", i+1))
			b.DiscountType = tc.discountType
			b.DiscountValue = decimal.NewFromInt(10)
			b.TaxType = tc.taxType
			b.Shipping = decimal.RequireFromString("12.5")
			b.AmountPaid = decimal.NewFromInt(100)

			preview, err := f.uc.Preview(ctx, b)
			require.NoError(t, err)
			saved, err := f.uc.Create(ctx, b)
			require.NoError(t, err)

			assert.True(t, preview.Total.Equal(saved.Totals.Total), "preview=%s guardada=%s", preview.Total, saved.Totals.Total)
			assert.True(t, preview.BalanceDue.Equal(saved.Totals.BalanceDue))
			assert.Equal(t, saved.Totals.Formatted, preview.Formatted)
		})
	}
}

func TestPreview_ModosOmitidosSonPorcentaje(t *testing.T) {
	f := newFixture(t)

	b := body("")
	b.DiscountValue = decimal.NewFromInt(10)
	b.TaxType = ""
	got, err := f.uc.Preview(context.Background(), b)
	require.NoError(t, err)

	// 6400 - 10% = 5760; +10% = 6336
	assert.True(t, got.DiscountAmount.Equal(decimal.NewFromInt(640)))
	assert.True(t, got.Total.Equal(decimal.NewFromInt(6336)))
}

func TestDelete_SiguienteNumeroSaleDelMaximoVigente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.uc.Create(ctx, body("INV-2024-0001"))
	require.NoError(t, err)
	last, err := f.uc.Create(ctx, body("INV-2024-0002"))
	require.NoError(t, err)
	require.NoError(t, f.uc.Delete(ctx, last.ID))

	assert.ErrorIs(t, f.uc.Delete(ctx, last.ID), domain.ErrNotFound)

	next, err := f.uc.NextNumber(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "INV-2024-0002", next.Next)
	assert.Equal(t, "INV-2024-", next.Prefix)
}

func TestList_IncluyeNombreDeCliente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	clients := billing.NewClientUseCase(f.clients)
	c, err := clients.Create(ctx, dto.ClientRequest{Name: "TechFlow Inc.", Email: "billing@techflow.io"})
	require.NoError(t, err)

	b := body("INV-2024-0001")
	b.ClientID = c.ID
	_, err = f.uc.Create(ctx, b)
	require.NoError(t, err)

	list, err := f.uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "TechFlow Inc.", list[0].ClientName)
}

// ── PDF ───────────────────────────────────────────────────────────────────────

type fakePDF struct{ got billing.InvoiceDocument }

func (f *fakePDF) GenerateInvoicePDF(_ context.Context, doc billing.InvoiceDocument) ([]byte, error) {
	f.got = doc
	return []byte("%PDF-fake"), nil
}

func TestDownloadInvoicePDF(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv, err := f.uc.Create(ctx, body("INV-2024-0001"))
	require.NoError(t, err)

	gen := &fakePDF{}
	uc := billing.NewPDFUseCase(f.invoices, f.clients, f.profiles, gen)
	out, name, err := uc.DownloadInvoicePDF(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-2024-0001.pdf", name)
	assert.Equal(t, []byte("%PDF-fake"), out)
	assert.True(t, gen.got.Summary.Total.Equal(decimal.NewFromInt(7040)))
	assert.Nil(t, gen.got.Client)
	assert.Equal(t, "Acme Creative Studio", gen.got.Profile.Name)

	_, _, err = uc.DownloadInvoicePDF(ctx, "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPDFFilename(t *testing.T) {
	assert.Equal(t, "#0001.pdf", billing.PDFFilename("#0001"))
	assert.Equal(t, "2024-10-0001.pdf", billing.PDFFilename("2024/10/0001"))
	assert.Equal(t, "invoice.pdf", billing.PDFFilename(" "))
}

// ── Link de pago ──────────────────────────────────────────────────────────────

type fakeProvider struct {
	req billing.PaymentLinkRequest
	err error
}

func (p *fakeProvider) CreatePaymentLink(_ context.Context, req billing.PaymentLinkRequest) (string, error) {
	p.req = req
	if p.err != nil {
		return "", p.err
	}
	return "https://pay.example/" + req.Number, nil
}

func (p *fakeProvider) Simulated() bool { return true }

func TestPaymentLink_GuardaLinkPorSaldoPendiente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := body("INV-2024-0001")
	b.AmountPaid = decimal.RequireFromString("1040.005")
	inv, err := f.uc.Create(ctx, b)
	require.NoError(t, err)

	prov := &fakeProvider{}
	uc := billing.NewPaymentLinkUseCase(f.invoices, f.clients, prov, logger.NewNop())
	res, err := uc.Create(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/INV-2024-0001", res.PaymentLink)
	assert.True(t, res.Simulated)
	assert.Equal(t, "6000", prov.req.Amount.String())

	saved, err := f.uc.Get(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, res.PaymentLink, saved.PaymentLink)
}

func TestPaymentLink_ErrorDelProveedorNoModificaFactura(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	inv, err := f.uc.Create(ctx, body("INV-2024-0001"))
	require.NoError(t, err)

	uc := billing.NewPaymentLinkUseCase(f.invoices, f.clients, &fakeProvider{err: errors.New("caído")}, logger.NewNop())
	_, err = uc.Create(ctx, inv.ID)
	require.Error(t, err)

	saved, _ := f.uc.Get(ctx, inv.ID)
	assert.Empty(t, saved.PaymentLink)
}

func TestPaymentLink_SaldoCeroNoLlamaAlProveedor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := body("INV-2024-0001")
	b.AmountPaid = decimal.NewFromInt(7040)
	inv, err := f.uc.Create(ctx, b)
	require.NoError(t, err)

	prov := &fakeProvider{}
	uc := billing.NewPaymentLinkUseCase(f.invoices, f.clients, prov, logger.NewNop())
	_, err = uc.Create(ctx, inv.ID)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, prov.req.InvoiceID, "el proveedor no debe recibir la petición")

	saved, err := f.uc.Get(ctx, inv.ID)
	require.NoError(t, err)
	assert.Empty(t, saved.PaymentLink)
}

// ── Migración taxRate ─────────────────────────────────────────────────────────

func TestLegacyTaxMigration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	raw := `[
	{"id":"old","number":"INV-2023-0001","issueDate":"2023-01-05","dueDate":"2023-01-19","status":"paid",
	 "items":[{"id":"x","description":"d","quantity":1,"unitPrice":100}],"taxRate":8,"template":"classic","layout":"portrait"},
	{"id":"new","number":"INV-2024-0001","issueDate":"2024-01-05","dueDate":"2024-01-19","status":"paid",
	 "items":[{"id":"y","description":"d","quantity":1,"unitPrice":100}],"taxRate":5,"taxType":"amount","taxValue":3,
	 "template":"modern","layout":"portrait"}]`
	require.NoError(t, f.store.Set(ctx, kv.KeyInvoices, []byte(raw)))

	m := billing.NewLegacyTaxMigration(f.invoices, logger.NewNop())

	dry, err := m.Run(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"old"}, dry.Migrated)
	before, _ := f.invoices.GetByID(ctx, "old")
	assert.True(t, before.NeedsTaxMigration(), "dry run no escribe")

	res, err := m.Run(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Scanned)
	assert.Equal(t, []string{"old"}, res.Migrated)

	old, _ := f.invoices.GetByID(ctx, "old")
	assert.Equal(t, entity.AdjustmentPercent, old.TaxType)
	assert.True(t, old.TaxValue.Equal(decimal.NewFromInt(8)))
	assert.Nil(t, old.LegacyTaxRate)

	untouched, _ := f.invoices.GetByID(ctx, "new")
	assert.Equal(t, entity.AdjustmentAmount, untouched.TaxType)
	assert.True(t, untouched.TaxValue.Equal(decimal.NewFromInt(3)))

	again, err := m.Run(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, again.Migrated)
}
