package dto

// ProfileRequest body para PUT /api/profile.
type ProfileRequest struct {
	Name               string `json:"name" validate:"required,max=200"`
	Email              string `json:"email" validate:"omitempty,email"`
	Address            string `json:"address"`
	Phone              string `json:"phone"`
	LogoURL            string `json:"logo_url" validate:"omitempty,url"`
	BrandColor         string `json:"brand_color" validate:"omitempty,hexcolor"`
	TaxID              string `json:"tax_id"`
	Currency           string `json:"currency" validate:"required,len=3,alpha"`
	DefaultPaymentLink string `json:"default_payment_link" validate:"omitempty,url"`
	InvoiceFormat      string `json:"invoice_format" validate:"max=64"`
	FontFamily         string `json:"font_family" validate:"omitempty,oneof=sans serif mono"`
	Website            string `json:"website" validate:"omitempty,url"`
}

// ProfileResponse perfil del negocio emisor.
type ProfileResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Address            string `json:"address"`
	Phone              string `json:"phone,omitempty"`
	LogoURL            string `json:"logo_url"`
	BrandColor         string `json:"brand_color"`
	TaxID              string `json:"tax_id,omitempty"`
	Currency           string `json:"currency"`
	CurrencySymbol     string `json:"currency_symbol"`
	DefaultPaymentLink string `json:"default_payment_link,omitempty"`
	InvoiceFormat      string `json:"invoice_format"`
	FontFamily         string `json:"font_family"`
	Website            string `json:"website,omitempty"`
}
