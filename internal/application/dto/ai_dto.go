package dto

// EnhanceDescriptionRequest body para POST /api/ai/enhance-description.
type EnhanceDescriptionRequest struct {
	Description string `json:"description" validate:"required,max=1000"`
}

// EnhanceDescriptionResponse texto reescrito; Enhanced=false si se devolvió el original.
type EnhanceDescriptionResponse struct {
	Description string `json:"description"`
	Enhanced    bool   `json:"enhanced"`
}

// BrandAnalysisRequest body para POST /api/ai/brand.
type BrandAnalysisRequest struct {
	WebsiteURL string `json:"website_url" validate:"required,url"`
}

// BrandAnalysisDTO identidad visual sugerida para el perfil. Campos vacíos = sin dato.
type BrandAnalysisDTO struct {
	Color     string `json:"color,omitempty"`
	Font      string `json:"font,omitempty"` // sans | serif
	LogoURL   string `json:"logo_url,omitempty"`
	SourceURL string `json:"source_url,omitempty"`
}
