package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentMode indica cómo se interpretan discountValue y taxValue.
type AdjustmentMode string

const (
	AdjustmentPercent AdjustmentMode = "percent"
	AdjustmentAmount  AdjustmentMode = "amount"
)

// Valid indica si el modo pertenece al catálogo.
func (m AdjustmentMode) Valid() bool {
	return m == AdjustmentPercent || m == AdjustmentAmount
}

// InvoiceStatus estado de la factura en el ciclo de cobro.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Layout orientación de la página exportada.
type Layout string

const (
	LayoutPortrait  Layout = "portrait"
	LayoutLandscape Layout = "landscape"
)

// Invoice representa una factura completa tal como la edita el usuario.
// Es un valor: los casos de uso copian y reemplazan, nunca mutan la instancia recibida.
type Invoice struct {
	ID            string
	Number        string
	ClientID      string
	IssueDate     time.Time
	DueDate       time.Time
	Status        InvoiceStatus
	Items         []LineItem
	Notes         string
	DiscountType  AdjustmentMode
	DiscountValue decimal.Decimal
	TaxType       AdjustmentMode
	TaxValue      decimal.Decimal
	Shipping      decimal.Decimal
	AmountPaid    decimal.Decimal
	Currency      string
	Template      TemplateType
	Layout        Layout
	PaymentLink   string
	Labels        Labels

	// LegacyTaxRate es el campo taxRate (solo porcentaje) anterior a la separación
	// taxType/taxValue. Solo lo consume la migración explícita de cmd/migrate_tax.
	LegacyTaxRate *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone devuelve una copia independiente (las líneas no comparten backing array).
func (inv Invoice) Clone() Invoice {
	out := inv
	out.Items = append([]LineItem(nil), inv.Items...)
	if inv.LegacyTaxRate != nil {
		rate := *inv.LegacyTaxRate
		out.LegacyTaxRate = &rate
	}
	return out
}

// NeedsTaxMigration indica si el registro solo trae el campo taxRate heredado.
func (inv Invoice) NeedsTaxMigration() bool {
	return inv.LegacyTaxRate != nil && inv.TaxType == ""
}
