// Package pdf exporta la factura a PDF con Maroto v2.
//
// Layout de la página (A4 vertical u horizontal):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor (nombre + contacto)  │  Título + N° + fechas │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FACTURAR A: cliente                                         │
//	│  TABLA: Item | Cantidad | Tarifa | Importe                   │
//	│  TOTALES: subtotal / descuento / impuesto / envío / total    │
//	│           pagado / saldo                                     │
//	│  NOTAS + link de pago                                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/fk219/Send-My-Invoice/internal/application/billing"
	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/domain/totals"
	"github.com/fk219/Send-My-Invoice/pkg/currency"
)

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

const dateFormat = "Jan 02, 2006"

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renderiza el documento con el tema de su plantilla.
// Todas las cifras salen de doc.Summary formateadas con pkg/currency.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, doc appbilling.InvoiceDocument) ([]byte, error) {
	inv := doc.Invoice
	tmpl := entity.ParseTemplate(string(inv.Template))
	th := themeFor(tmpl, doc.Profile.BrandColor).withProfileFont(tmpl, doc.Profile.FontFamily)
	labels := inv.Labels.WithDefaults()

	orient := orientation.Vertical
	if inv.Layout == entity.LayoutLandscape {
		orient = orientation.Horizontal
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orient).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: th.family, Size: 9}).
		WithTitle(labels.Title+" "+inv.Number, true).
		WithAuthor(doc.Profile.Name, true).
		Build()

	m := maroto.New(cfg)
	r := renderer{th: th, labels: labels, code: inv.Currency}

	m.AddRows(r.header(inv, doc.Profile)...)
	m.AddRows(row.New(4))
	m.AddRows(r.billTo(doc.Client))
	m.AddRows(row.New(4))
	m.AddRows(r.tableHeader())
	m.AddRows(r.itemRows(inv.Items)...)
	m.AddRows(line.NewRow(2, props.Line{Color: th.accent, Thickness: 0.3}))
	m.AddRows(r.totalRows(inv, doc.Summary)...)
	m.AddRows(r.footerRows(inv)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// renderer agrupa el tema y los textos de una exportación.
type renderer struct {
	th     theme
	labels entity.Labels
	code   string
}

func (r renderer) money(d decimal.Decimal) string { return currency.Format(d, r.code) }

// ── Secciones ─────────────────────────────────────────────────────────────────

// header: emisor a la izquierda, título + número + fechas a la derecha.
func (r renderer) header(inv entity.Invoice, p entity.Profile) []core.Row {
	titleColor := r.th.accent
	var style *props.Cell
	if r.th.header == headerBanner {
		titleColor = colorWhite
		style = &props.Cell{BackgroundColor: r.th.accent}
	}
	nameColor := colorBlack
	mutedColor := r.th.muted
	if style != nil {
		nameColor, mutedColor = colorWhite, colorWhite
	}

	contact := joinNonEmpty(" · ", p.Email, p.Phone, p.Website)
	if p.TaxID != "" {
		contact = joinNonEmpty(" · ", contact, "Tax ID: "+p.TaxID)
	}

	head := row.New(30).Add(
		col.New(7).Add(
			text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 13, Color: nameColor, Top: 3, Left: 2}),
			text.New(p.Address, props.Text{Size: 8, Color: mutedColor, Top: 11, Left: 2}),
			text.New(contact, props.Text{Size: 8, Color: mutedColor, Top: 16, Left: 2}),
		),
		col.New(5).Add(
			text.New(r.labels.Title, props.Text{
				Style: fontstyle.Bold, Size: r.th.titleSize, Align: align.Right, Color: titleColor, Top: 2, Right: 2,
			}),
			text.New("# "+inv.Number, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: nameColor, Top: 13, Right: 2}),
			text.New(r.labels.Date+": "+formatDate(inv.IssueDate), props.Text{Size: 8, Align: align.Right, Color: mutedColor, Top: 19, Right: 2}),
			text.New(r.labels.DueDate+": "+formatDate(inv.DueDate), props.Text{Size: 8, Align: align.Right, Color: mutedColor, Top: 24, Right: 2}),
		),
	)
	if style != nil {
		head = head.WithStyle(style)
	}

	rows := []core.Row{head}
	if r.th.header == headerRule {
		rows = append(rows, line.NewRow(2, props.Line{Color: r.th.accent, Thickness: 0.8}))
	}
	return rows
}

// billTo: datos del cliente o un guion si fue eliminado.
func (r renderer) billTo(c *entity.Client) core.Row {
	name, detail := "-", ""
	if c != nil {
		name = c.Name
		detail = joinNonEmpty(" · ", c.Email, c.Address)
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New(r.labels.BillTo, props.Text{Style: fontstyle.Bold, Size: 8, Color: r.th.accent, Top: 1}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(detail, props.Text{Size: 8, Color: r.th.muted, Top: 11}),
		),
	)
}

// tableHeader: cabecera de la tabla de líneas.
func (r renderer) tableHeader() core.Row {
	fg := r.th.accent
	if r.th.filledTable {
		fg = colorWhite
	}
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: fg, Top: 2, Left: 1, Right: 1,
		}))
	}
	hr := row.New(8).Add(
		h(r.labels.Item, 6, align.Left),
		h(r.labels.Quantity, 2, align.Center),
		h(r.labels.Rate, 2, align.Right),
		h(r.labels.Amount, 2, align.Right),
	)
	if r.th.filledTable {
		hr = hr.WithStyle(&props.Cell{BackgroundColor: r.th.accent})
	}
	return hr
}

// itemRows: una fila por línea; el importe se recalcula siempre (cantidad × tarifa).
func (r renderer) itemRows(items []entity.LineItem) []core.Row {
	out := make([]core.Row, 0, len(items))
	for _, it := range items {
		out = append(out, row.New(7).Add(
			col.New(6).Add(text.New(it.Description, props.Text{Size: 8, Top: 1.5, Left: 1})),
			col.New(2).Add(text.New(it.Quantity.String(), props.Text{Size: 8, Align: align.Center, Top: 1.5})),
			col.New(2).Add(text.New(r.money(it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1.5, Right: 1})),
			col.New(2).Add(text.New(r.money(it.Amount()), props.Text{Size: 8, Align: align.Right, Top: 1.5, Right: 1})),
		))
	}
	return out
}

// totalRows: bloque alineado a la derecha. Descuento, envío y pagado se omiten en cero.
func (r renderer) totalRows(inv entity.Invoice, s totals.Summary) []core.Row {
	entry := func(label, value string, strong bool) core.Row {
		p := props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1}
		if strong {
			p.Style = fontstyle.Bold
			p.Size = 11
			p.Color = r.th.accent
		}
		lp := p
		lp.Style = fontstyle.Bold
		return row.New(7).Add(
			col.New(6),
			col.New(3).Add(text.New(label, lp)),
			col.New(3).Add(text.New(value, p)),
		)
	}

	rows := []core.Row{entry(r.labels.Subtotal, r.money(s.Subtotal), false)}
	if !s.DiscountAmount.IsZero() {
		rows = append(rows, entry(modeLabel(r.labels.Discount, inv.DiscountType, inv.DiscountValue), r.money(s.DiscountAmount.Neg()), false))
	}
	rows = append(rows, entry(modeLabel(r.labels.Tax, inv.TaxType, inv.TaxValue), r.money(s.TaxAmount), false))
	if !s.ShippingAmount.IsZero() {
		rows = append(rows, entry(r.labels.Shipping, r.money(s.ShippingAmount), false))
	}
	rows = append(rows, entry(r.labels.Total, r.money(s.Total), true))
	if !s.AmountPaid.IsZero() {
		rows = append(rows, entry(r.labels.AmountPaid, r.money(s.AmountPaid), false))
	}
	rows = append(rows, entry(r.labels.BalanceDue, r.money(s.BalanceDue), true))
	return rows
}

// footerRows: notas y link de pago clicable.
func (r renderer) footerRows(inv entity.Invoice) []core.Row {
	var rows []core.Row
	if inv.Notes != "" {
		rows = append(rows,
			row.New(6),
			row.New(6).Add(col.New(12).Add(
				text.New(r.labels.Notes, props.Text{Style: fontstyle.Bold, Size: 8, Color: r.th.accent}),
			)),
			row.New(12).Add(col.New(12).Add(
				text.New(inv.Notes, props.Text{Size: 8, Color: r.th.muted}),
			)),
		)
	}
	if inv.PaymentLink != "" {
		link := inv.PaymentLink
		rows = append(rows, row.New(10).Add(col.New(12).Add(
			text.New("Pay online: "+link, props.Text{
				Size: 9, Style: fontstyle.Bold, Color: r.th.accent, Top: 3, Hyperlink: &link,
			}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func modeLabel(label string, mode entity.AdjustmentMode, value decimal.Decimal) string {
	if mode == entity.AdjustmentPercent {
		return fmt.Sprintf("%s (%s%%)", label, value.String())
	}
	return label
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateFormat)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
