package entity

import "strings"

// TemplateType identificador del diseño visual de la factura.
type TemplateType string

const (
	TemplateModern   TemplateType = "modern"
	TemplateClassic  TemplateType = "classic"
	TemplateMinimal  TemplateType = "minimal"
	TemplateBold     TemplateType = "bold"
	TemplateAgency   TemplateType = "agency"
	TemplateBoutique TemplateType = "boutique"
	TemplateTech     TemplateType = "tech"
	TemplateFinance  TemplateType = "finance"
	TemplateCreative TemplateType = "creative"
	TemplateSimple   TemplateType = "simple"
)

// DefaultTemplate se usa cuando el identificador no se reconoce.
const DefaultTemplate = TemplateModern

// Templates catálogo cerrado en el orden en que lo muestra el editor.
func Templates() []TemplateType {
	return []TemplateType{
		TemplateModern, TemplateClassic, TemplateMinimal, TemplateBold, TemplateAgency,
		TemplateBoutique, TemplateTech, TemplateFinance, TemplateCreative, TemplateSimple,
	}
}

// ParseTemplate normaliza el identificador; lo desconocido cae en DefaultTemplate.
func ParseTemplate(s string) TemplateType {
	switch t := TemplateType(strings.ToLower(strings.TrimSpace(s))); t {
	case TemplateModern, TemplateClassic, TemplateMinimal, TemplateBold, TemplateAgency,
		TemplateBoutique, TemplateTech, TemplateFinance, TemplateCreative, TemplateSimple:
		return t
	default:
		return DefaultTemplate
	}
}
