package dto

import "github.com/shopspring/decimal"

// LineItemDTO línea editable de la factura.
type LineItemDTO struct {
	ID          string          `json:"id"`
	Description string          `json:"description" validate:"max=500"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gte=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

// LabelsDTO textos personalizados; los vacíos toman el valor por defecto al renderizar.
type LabelsDTO struct {
	Title        string `json:"title,omitempty"`
	Subtitle     string `json:"subtitle,omitempty"`
	BillTo       string `json:"bill_to,omitempty"`
	ShipTo       string `json:"ship_to,omitempty"`
	Date         string `json:"date,omitempty"`
	DueDate      string `json:"due_date,omitempty"`
	PONumber     string `json:"po_number,omitempty"`
	PaymentTerms string `json:"payment_terms,omitempty"`
	Item         string `json:"item,omitempty"`
	Quantity     string `json:"quantity,omitempty"`
	Rate         string `json:"rate,omitempty"`
	Amount       string `json:"amount,omitempty"`
	Subtotal     string `json:"subtotal,omitempty"`
	Discount     string `json:"discount,omitempty"`
	Tax          string `json:"tax,omitempty"`
	Shipping     string `json:"shipping,omitempty"`
	Total        string `json:"total,omitempty"`
	AmountPaid   string `json:"amount_paid,omitempty"`
	BalanceDue   string `json:"balance_due,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Terms        string `json:"terms,omitempty"`
}

// InvoiceRequest body para POST /api/invoices, PUT /api/invoices/:id y POST /api/invoices/preview.
// En preview solo importan items, ajustes y currency.
type InvoiceRequest struct {
	ID            string          `json:"id,omitempty"`
	Number        string          `json:"number" validate:"max=64"`
	ClientID      string          `json:"client_id"`
	IssueDate     string          `json:"issue_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate       string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Status        string          `json:"status" validate:"omitempty,oneof=draft sent paid overdue"`
	Items         []LineItemDTO   `json:"items" validate:"dive"`
	Notes         string          `json:"notes"`
	DiscountType  string          `json:"discount_type" validate:"omitempty,oneof=percent amount"`
	DiscountValue decimal.Decimal `json:"discount_value" validate:"gte=0"`
	TaxType       string          `json:"tax_type" validate:"omitempty,oneof=percent amount"`
	TaxValue      decimal.Decimal `json:"tax_value" validate:"gte=0"`
	Shipping      decimal.Decimal `json:"shipping" validate:"gte=0"`
	AmountPaid    decimal.Decimal `json:"amount_paid" validate:"gte=0"`
	Currency      string          `json:"currency" validate:"omitempty,len=3,alpha"`
	Template      string          `json:"template"`
	Layout        string          `json:"layout" validate:"omitempty,oneof=portrait landscape"`
	PaymentLink   string          `json:"payment_link" validate:"omitempty,url"`
	Labels        *LabelsDTO      `json:"labels,omitempty"`
}

// TotalsDTO resumen de totales: valores exactos y su versión formateada con la moneda.
type TotalsDTO struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxableBase    decimal.Decimal `json:"taxable_base"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	ShippingAmount decimal.Decimal `json:"shipping_amount"`
	Total          decimal.Decimal `json:"total"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	BalanceDue     decimal.Decimal `json:"balance_due"`
	Formatted      FormattedTotals `json:"formatted"`
}

// FormattedTotals cifras tal como se muestran en pantalla y en el PDF.
type FormattedTotals struct {
	Subtotal       string `json:"subtotal"`
	DiscountAmount string `json:"discount_amount"`
	TaxAmount      string `json:"tax_amount"`
	ShippingAmount string `json:"shipping_amount"`
	Total          string `json:"total"`
	AmountPaid     string `json:"amount_paid"`
	BalanceDue     string `json:"balance_due"`
}

// InvoiceResponse factura completa con totales derivados.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	Number        string          `json:"number"`
	ClientID      string          `json:"client_id"`
	ClientName    string          `json:"client_name,omitempty"`
	IssueDate     string          `json:"issue_date"`
	DueDate       string          `json:"due_date"`
	Status        string          `json:"status"`
	Items         []LineItemDTO   `json:"items"`
	Notes         string          `json:"notes"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	TaxType       string          `json:"tax_type"`
	TaxValue      decimal.Decimal `json:"tax_value"`
	Shipping      decimal.Decimal `json:"shipping"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Currency      string          `json:"currency"`
	Template      string          `json:"template"`
	Layout        string          `json:"layout"`
	PaymentLink   string          `json:"payment_link,omitempty"`
	Labels        LabelsDTO       `json:"labels"`
	Totals        TotalsDTO       `json:"totals"`
}

// PaymentLinkResponse respuesta de POST /api/invoices/:id/payment-link.
type PaymentLinkResponse struct {
	InvoiceID   string `json:"invoice_id"`
	PaymentLink string `json:"payment_link"`
	Simulated   bool   `json:"simulated"`
}
