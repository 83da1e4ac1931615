// Package kv implementa los repositorios sobre un repository.KVStore.
// Cada colección es un único blob JSON bajo las claves clarity_*, con el mismo
// esquema camelCase que escribe el editor en el dispositivo.
package kv

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
)

// Claves del almacén.
const (
	KeyProfile  = "clarity_profile"
	KeyClients  = "clarity_clients"
	KeyInvoices = "clarity_invoices"
)

const dateLayout = "2006-01-02"

// number serializa decimal como número JSON (sin comillas), igual que el editor.
type number struct{ decimal.Decimal }

func (n number) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}

func num(d decimal.Decimal) number { return number{d} }

type lineItemRecord struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    number `json:"quantity"`
	UnitPrice   number `json:"unitPrice"`
}

type labelsRecord struct {
	Title        string `json:"title,omitempty"`
	Subtitle     string `json:"subtitle,omitempty"`
	BillTo       string `json:"billTo,omitempty"`
	ShipTo       string `json:"shipTo,omitempty"`
	Date         string `json:"date,omitempty"`
	DueDate      string `json:"dueDate,omitempty"`
	PONumber     string `json:"poNumber,omitempty"`
	PaymentTerms string `json:"paymentTerms,omitempty"`
	Item         string `json:"item,omitempty"`
	Quantity     string `json:"quantity,omitempty"`
	Rate         string `json:"rate,omitempty"`
	Amount       string `json:"amount,omitempty"`
	Subtotal     string `json:"subtotal,omitempty"`
	Discount     string `json:"discount,omitempty"`
	Tax          string `json:"tax,omitempty"`
	Shipping     string `json:"shipping,omitempty"`
	Total        string `json:"total,omitempty"`
	AmountPaid   string `json:"amountPaid,omitempty"`
	BalanceDue   string `json:"balanceDue,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Terms        string `json:"terms,omitempty"`
}

type invoiceRecord struct {
	ID            string           `json:"id"`
	Number        string           `json:"number"`
	ClientID      string           `json:"clientId"`
	IssueDate     string           `json:"issueDate"`
	DueDate       string           `json:"dueDate"`
	Status        string           `json:"status"`
	Items         []lineItemRecord `json:"items"`
	Notes         string           `json:"notes,omitempty"`
	TaxRate       *number          `json:"taxRate,omitempty"`
	TaxType       string           `json:"taxType,omitempty"`
	TaxValue      number           `json:"taxValue"`
	DiscountType  string           `json:"discountType,omitempty"`
	DiscountValue number           `json:"discountValue"`
	Shipping      number           `json:"shipping"`
	AmountPaid    number           `json:"amountPaid"`
	Currency      string           `json:"currency,omitempty"`
	Template      string           `json:"template"`
	Layout        string           `json:"layout"`
	PaymentLink   string           `json:"paymentLink,omitempty"`
	Labels        *labelsRecord    `json:"labels,omitempty"`
	CreatedAt     *time.Time       `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time       `json:"updatedAt,omitempty"`
}

type clientRecord struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Address   string     `json:"address"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type profileRecord struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Address            string `json:"address"`
	PhoneNumber        string `json:"phoneNumber,omitempty"`
	LogoURL            string `json:"logoUrl"`
	BrandColor         string `json:"brandColor"`
	TaxID              string `json:"taxId,omitempty"`
	Currency           string `json:"currency"`
	DefaultPaymentLink string `json:"defaultPaymentLink,omitempty"`
	InvoiceFormat      string `json:"invoiceFormat"`
	FontFamily         string `json:"fontFamily,omitempty"`
	Website            string `json:"website,omitempty"`
}

// ── Invoice ──────────────────────────────────────────────────────────────────

func toInvoiceRecord(inv entity.Invoice) invoiceRecord {
	items := make([]lineItemRecord, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, lineItemRecord{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    num(it.Quantity),
			UnitPrice:   num(it.UnitPrice),
		})
	}
	rec := invoiceRecord{
		ID:            inv.ID,
		Number:        inv.Number,
		ClientID:      inv.ClientID,
		IssueDate:     formatDate(inv.IssueDate),
		DueDate:       formatDate(inv.DueDate),
		Status:        string(inv.Status),
		Items:         items,
		Notes:         inv.Notes,
		TaxType:       string(inv.TaxType),
		TaxValue:      num(inv.TaxValue),
		DiscountType:  string(inv.DiscountType),
		DiscountValue: num(inv.DiscountValue),
		Shipping:      num(inv.Shipping),
		AmountPaid:    num(inv.AmountPaid),
		Currency:      inv.Currency,
		Template:      string(inv.Template),
		Layout:        string(inv.Layout),
		PaymentLink:   inv.PaymentLink,
		Labels:        toLabelsRecord(inv.Labels),
		CreatedAt:     timePtr(inv.CreatedAt),
		UpdatedAt:     timePtr(inv.UpdatedAt),
	}
	if inv.LegacyTaxRate != nil {
		rate := num(*inv.LegacyTaxRate)
		rec.TaxRate = &rate
	}
	return rec
}

func (r invoiceRecord) toEntity() entity.Invoice {
	items := make([]entity.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entity.LineItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity.Decimal,
			UnitPrice:   it.UnitPrice.Decimal,
		})
	}
	inv := entity.Invoice{
		ID:            r.ID,
		Number:        r.Number,
		ClientID:      r.ClientID,
		IssueDate:     parseDate(r.IssueDate),
		DueDate:       parseDate(r.DueDate),
		Status:        entity.InvoiceStatus(r.Status),
		Items:         items,
		Notes:         r.Notes,
		DiscountType:  entity.AdjustmentMode(r.DiscountType),
		DiscountValue: r.DiscountValue.Decimal,
		TaxType:       entity.AdjustmentMode(r.TaxType),
		TaxValue:      r.TaxValue.Decimal,
		Shipping:      r.Shipping.Decimal,
		AmountPaid:    r.AmountPaid.Decimal,
		Currency:      r.Currency,
		Template:      entity.ParseTemplate(r.Template),
		Layout:        entity.Layout(r.Layout),
		PaymentLink:   r.PaymentLink,
		CreatedAt:     timeValue(r.CreatedAt),
		UpdatedAt:     timeValue(r.UpdatedAt),
	}
	if r.Labels != nil {
		inv.Labels = r.Labels.toEntity()
	}
	if r.TaxRate != nil {
		rate := r.TaxRate.Decimal
		inv.LegacyTaxRate = &rate
	}
	return inv
}

func toLabelsRecord(l entity.Labels) *labelsRecord {
	if l == (entity.Labels{}) {
		return nil
	}
	return &labelsRecord{
		Title: l.Title, Subtitle: l.Subtitle, BillTo: l.BillTo, ShipTo: l.ShipTo,
		Date: l.Date, DueDate: l.DueDate, PONumber: l.PONumber, PaymentTerms: l.PaymentTerms,
		Item: l.Item, Quantity: l.Quantity, Rate: l.Rate, Amount: l.Amount,
		Subtotal: l.Subtotal, Discount: l.Discount, Tax: l.Tax, Shipping: l.Shipping,
		Total: l.Total, AmountPaid: l.AmountPaid, BalanceDue: l.BalanceDue,
		Notes: l.Notes, Terms: l.Terms,
	}
}

func (r labelsRecord) toEntity() entity.Labels {
	return entity.Labels{
		Title: r.Title, Subtitle: r.Subtitle, BillTo: r.BillTo, ShipTo: r.ShipTo,
		Date: r.Date, DueDate: r.DueDate, PONumber: r.PONumber, PaymentTerms: r.PaymentTerms,
		Item: r.Item, Quantity: r.Quantity, Rate: r.Rate, Amount: r.Amount,
		Subtotal: r.Subtotal, Discount: r.Discount, Tax: r.Tax, Shipping: r.Shipping,
		Total: r.Total, AmountPaid: r.AmountPaid, BalanceDue: r.BalanceDue,
		Notes: r.Notes, Terms: r.Terms,
	}
}

// ── Client / Profile ─────────────────────────────────────────────────────────

func toClientRecord(c entity.Client) clientRecord {
	return clientRecord{
		ID: c.ID, Name: c.Name, Email: c.Email, Address: c.Address,
		CreatedAt: timePtr(c.CreatedAt), UpdatedAt: timePtr(c.UpdatedAt),
	}
}

func (r clientRecord) toEntity() entity.Client {
	return entity.Client{
		ID: r.ID, Name: r.Name, Email: r.Email, Address: r.Address,
		CreatedAt: timeValue(r.CreatedAt), UpdatedAt: timeValue(r.UpdatedAt),
	}
}

func toProfileRecord(p entity.Profile) profileRecord {
	return profileRecord{
		ID:                 p.ID,
		Name:               p.Name,
		Email:              p.Email,
		Address:            p.Address,
		PhoneNumber:        p.Phone,
		LogoURL:            p.LogoURL,
		BrandColor:         p.BrandColor,
		TaxID:              p.TaxID,
		Currency:           p.Currency,
		DefaultPaymentLink: p.DefaultPaymentLink,
		InvoiceFormat:      p.InvoiceFormat,
		FontFamily:         string(p.FontFamily),
		Website:            p.Website,
	}
}

func (r profileRecord) toEntity() entity.Profile {
	return entity.Profile{
		ID:                 r.ID,
		Name:               r.Name,
		Email:              r.Email,
		Address:            r.Address,
		Phone:              r.PhoneNumber,
		LogoURL:            r.LogoURL,
		BrandColor:         r.BrandColor,
		TaxID:              r.TaxID,
		Currency:           r.Currency,
		DefaultPaymentLink: r.DefaultPaymentLink,
		InvoiceFormat:      r.InvoiceFormat,
		FontFamily:         entity.FontFamily(r.FontFamily),
		Website:            r.Website,
	}
}

// ── helpers ──────────────────────────────────────────────────────────────────

func decodeList[T any](raw []byte, key string) ([]T, error) {
	var out []T
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", key, err)
	}
	return out, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// parseDate tolera fechas vacías o corruptas (fecha cero) para no bloquear la carga.
func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
