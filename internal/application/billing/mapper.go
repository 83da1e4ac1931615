package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/fk219/Send-My-Invoice/internal/application/dto"
	"github.com/fk219/Send-My-Invoice/internal/domain"
	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/domain/totals"
	"github.com/fk219/Send-My-Invoice/pkg/currency"
)

const dateLayout = "2006-01-02"

// ToTotalsDTO expone el resumen exacto y su versión formateada para la moneda.
func ToTotalsDTO(s totals.Summary, code string) dto.TotalsDTO {
	return dto.TotalsDTO{
		Subtotal:       s.Subtotal,
		DiscountAmount: s.DiscountAmount,
		TaxableBase:    s.TaxableBase,
		TaxAmount:      s.TaxAmount,
		ShippingAmount: s.ShippingAmount,
		Total:          s.Total,
		AmountPaid:     s.AmountPaid,
		BalanceDue:     s.BalanceDue,
		Formatted: dto.FormattedTotals{
			Subtotal:       currency.Format(s.Subtotal, code),
			DiscountAmount: currency.Format(s.DiscountAmount, code),
			TaxAmount:      currency.Format(s.TaxAmount, code),
			ShippingAmount: currency.Format(s.ShippingAmount, code),
			Total:          currency.Format(s.Total, code),
			AmountPaid:     currency.Format(s.AmountPaid, code),
			BalanceDue:     currency.Format(s.BalanceDue, code),
		},
	}
}

func toInvoiceResponse(inv entity.Invoice, client *entity.Client) *dto.InvoiceResponse {
	out := &dto.InvoiceResponse{
		ID:            inv.ID,
		Number:        inv.Number,
		ClientID:      inv.ClientID,
		IssueDate:     formatDate(inv.IssueDate),
		DueDate:       formatDate(inv.DueDate),
		Status:        string(inv.Status),
		Items:         lo.Map(inv.Items, func(it entity.LineItem, _ int) dto.LineItemDTO { return toLineItemDTO(it) }),
		Notes:         inv.Notes,
		DiscountType:  string(inv.DiscountType),
		DiscountValue: inv.DiscountValue,
		TaxType:       string(inv.TaxType),
		TaxValue:      inv.TaxValue,
		Shipping:      inv.Shipping,
		AmountPaid:    inv.AmountPaid,
		Currency:      inv.Currency,
		Template:      string(inv.Template),
		Layout:        string(inv.Layout),
		PaymentLink:   inv.PaymentLink,
		Labels:        toLabelsDTO(inv.Labels.WithDefaults()),
		Totals:        ToTotalsDTO(totals.ForInvoice(inv), inv.Currency),
	}
	if client != nil {
		out.ClientName = client.Name
	}
	return out
}

func toLineItemDTO(it entity.LineItem) dto.LineItemDTO {
	return dto.LineItemDTO{ID: it.ID, Description: it.Description, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
}

// fromInvoiceRequest construye la entidad a partir del body. Los campos vacíos
// toman los valores por defecto del editor; las líneas sin id reciben uno nuevo.
func fromInvoiceRequest(in dto.InvoiceRequest, defaultCurrency string) (entity.Invoice, error) {
	issue, err := parseDate(in.IssueDate)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("%w: issue_date: %v", domain.ErrInvalidInput, err)
	}
	due, err := parseDate(in.DueDate)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("%w: due_date: %v", domain.ErrInvalidInput, err)
	}

	inv := entity.Invoice{
		ID:            in.ID,
		Number:        in.Number,
		ClientID:      in.ClientID,
		IssueDate:     issue,
		DueDate:       due,
		Status:        entity.InvoiceStatus(in.Status),
		Items:         fromLineItems(in.Items),
		Notes:         in.Notes,
		DiscountType:  modeOrPercent(in.DiscountType),
		DiscountValue: in.DiscountValue,
		TaxType:       modeOrPercent(in.TaxType),
		TaxValue:      in.TaxValue,
		Shipping:      in.Shipping,
		AmountPaid:    in.AmountPaid,
		Currency:      currency.Normalize(in.Currency),
		Template:      entity.ParseTemplate(in.Template),
		Layout:        entity.Layout(in.Layout),
		PaymentLink:   in.PaymentLink,
	}
	if in.Labels != nil {
		inv.Labels = fromLabelsDTO(*in.Labels)
	}
	if inv.Status == "" {
		inv.Status = entity.InvoiceStatusDraft
	}
	if inv.Layout != entity.LayoutLandscape {
		inv.Layout = entity.LayoutPortrait
	}
	if inv.Currency == "" {
		inv.Currency = currency.Normalize(defaultCurrency)
	}
	return inv, nil
}

func fromLineItems(items []dto.LineItemDTO) []entity.LineItem {
	return lo.Map(items, func(it dto.LineItemDTO, _ int) entity.LineItem {
		id := it.ID
		if id == "" {
			id = uuid.NewString()
		}
		return entity.LineItem{ID: id, Description: it.Description, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	})
}

// adjustmentsOf arma los ajustes de un body sin pasar por la entidad (preview).
// Los modos se normalizan igual que en fromInvoiceRequest: preview y factura guardada coinciden.
func adjustmentsOf(in dto.InvoiceRequest) totals.Adjustments {
	return totals.Adjustments{
		DiscountType:  modeOrPercent(in.DiscountType),
		DiscountValue: in.DiscountValue,
		TaxType:       modeOrPercent(in.TaxType),
		TaxValue:      in.TaxValue,
		Shipping:      in.Shipping,
		AmountPaid:    in.AmountPaid,
	}
}

// modeOrPercent interpreta el modo de un ajuste; vacío o desconocido es porcentaje.
func modeOrPercent(s string) entity.AdjustmentMode {
	if m := entity.AdjustmentMode(s); m.Valid() {
		return m
	}
	return entity.AdjustmentPercent
}

func toLabelsDTO(l entity.Labels) dto.LabelsDTO {
	return dto.LabelsDTO{
		Title: l.Title, Subtitle: l.Subtitle, BillTo: l.BillTo, ShipTo: l.ShipTo,
		Date: l.Date, DueDate: l.DueDate, PONumber: l.PONumber, PaymentTerms: l.PaymentTerms,
		Item: l.Item, Quantity: l.Quantity, Rate: l.Rate, Amount: l.Amount,
		Subtotal: l.Subtotal, Discount: l.Discount, Tax: l.Tax, Shipping: l.Shipping,
		Total: l.Total, AmountPaid: l.AmountPaid, BalanceDue: l.BalanceDue,
		Notes: l.Notes, Terms: l.Terms,
	}
}

func fromLabelsDTO(l dto.LabelsDTO) entity.Labels {
	return entity.Labels{
		Title: l.Title, Subtitle: l.Subtitle, BillTo: l.BillTo, ShipTo: l.ShipTo,
		Date: l.Date, DueDate: l.DueDate, PONumber: l.PONumber, PaymentTerms: l.PaymentTerms,
		Item: l.Item, Quantity: l.Quantity, Rate: l.Rate, Amount: l.Amount,
		Subtotal: l.Subtotal, Discount: l.Discount, Tax: l.Tax, Shipping: l.Shipping,
		Total: l.Total, AmountPaid: l.AmountPaid, BalanceDue: l.BalanceDue,
		Notes: l.Notes, Terms: l.Terms,
	}
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
