package dto

// NextNumberResponse respuesta de GET /api/numbering/next.
type NextNumberResponse struct {
	Format string `json:"format"`
	Prefix string `json:"prefix"`
	Next   string `json:"next"`
}

// PresetDTO formato de numeración sugerido.
type PresetDTO struct {
	Label  string `json:"label"`
	Format string `json:"format"`
}

// TemplateDTO plantilla disponible para el PDF.
type TemplateDTO struct {
	ID      string `json:"id"`
	Default bool   `json:"default,omitempty"`
}

// CurrencyDTO moneda del catálogo.
type CurrencyDTO struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Scale  int32  `json:"scale"`
}
