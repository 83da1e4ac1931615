package usecase

import (
	"github.com/samber/lo"

	"github.com/fk219/Send-My-Invoice/internal/application/dto"
	"github.com/fk219/Send-My-Invoice/internal/domain/entity"
	"github.com/fk219/Send-My-Invoice/internal/domain/numbering"
	"github.com/fk219/Send-My-Invoice/pkg/currency"
)

// CatalogUseCase catálogos fijos que ofrece el editor: plantillas, formatos y monedas.
type CatalogUseCase struct{}

func NewCatalogUseCase() *CatalogUseCase { return &CatalogUseCase{} }

func (uc *CatalogUseCase) Templates() []dto.TemplateDTO {
	return lo.Map(entity.Templates(), func(t entity.TemplateType, _ int) dto.TemplateDTO {
		return dto.TemplateDTO{ID: string(t), Default: t == entity.DefaultTemplate}
	})
}

func (uc *CatalogUseCase) NumberingPresets() []dto.PresetDTO {
	return lo.Map(numbering.Presets(), func(p numbering.Preset, _ int) dto.PresetDTO {
		return dto.PresetDTO{Label: p.Label, Format: p.Format}
	})
}

func (uc *CatalogUseCase) Currencies() []dto.CurrencyDTO {
	return lo.Map(currency.Catalog(), func(c currency.Info, _ int) dto.CurrencyDTO {
		return dto.CurrencyDTO{Code: c.Code, Symbol: c.Symbol, Name: c.Name, Scale: currency.Scale(c.Code)}
	})
}
