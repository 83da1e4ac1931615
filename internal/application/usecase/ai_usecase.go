package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fk219/Send-My-Invoice/internal/application/dto"
	"github.com/fk219/Send-My-Invoice/internal/application/ports"
	"github.com/fk219/Send-My-Invoice/pkg/logger"
)

const aiTimeout = 10 * time.Second

// AIUseCase asistentes de IA del editor. Nunca bloquea la edición: ante cualquier
// fallo del proveedor devuelve el texto original o un análisis vacío.
type AIUseCase struct {
	llm ports.LLMService
	log *logger.Logger
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService, log *logger.Logger) *AIUseCase {
	return &AIUseCase{llm: llm, log: log.Component("ai")}
}

// EnhanceDescription reescribe la descripción; Enhanced=false si se devolvió el texto recibido.
func (uc *AIUseCase) EnhanceDescription(ctx context.Context, req dto.EnhanceDescriptionRequest) dto.EnhanceDescriptionResponse {
	original := dto.EnhanceDescriptionResponse{Description: req.Description}
	if strings.TrimSpace(req.Description) == "" {
		return original
	}

	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	text, err := uc.llm.EnhanceDescription(ctx, req.Description)
	if err != nil {
		uc.log.Warn().Err(err).Msg("mejora de descripción no disponible, se conserva el original")
		return original
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return original
	}
	return dto.EnhanceDescriptionResponse{Description: text, Enhanced: text != req.Description}
}

// AnalyzeBrand sugiere color, tipografía y logo. Negro y blanco se descartan como color
// de marca y la tipografía se reduce a sans|serif.
func (uc *AIUseCase) AnalyzeBrand(ctx context.Context, req dto.BrandAnalysisRequest) dto.BrandAnalysisDTO {
	if strings.TrimSpace(req.WebsiteURL) == "" {
		return dto.BrandAnalysisDTO{}
	}

	ctx, cancel := context.WithTimeout(ctx, aiTimeout)
	defer cancel()

	res, err := uc.llm.AnalyzeBrand(ctx, req.WebsiteURL)
	if err != nil || res == nil {
		uc.log.Warn().Err(err).Str("website", req.WebsiteURL).Msg("análisis de marca no disponible")
		return dto.BrandAnalysisDTO{}
	}

	out := dto.BrandAnalysisDTO{Font: "sans", LogoURL: res.LogoURL, SourceURL: res.SourceURL}
	if c := strings.ToLower(res.Color); c != "" && c != "#000000" && c != "#ffffff" {
		out.Color = res.Color
	}
	if strings.EqualFold(res.Font, "serif") {
		out.Font = "serif"
	}
	return out
}
