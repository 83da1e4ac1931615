package ports

import (
	"context"

	"github.com/fk219/Send-My-Invoice/internal/application/dto"
)

// LLMService define el puerto de salida para los asistentes de IA del editor.
// Cualquier adaptador (Gemini, OpenAI, mock) debe implementar esta interfaz.
// El contexto debe llevar un timeout; el caso de uso decide qué hacer ante errores.
type LLMService interface {
	// EnhanceDescription reescribe la descripción de una línea con tono profesional
	// sin cambiar su significado.
	EnhanceDescription(ctx context.Context, draft string) (string, error)

	// AnalyzeBrand sugiere color de marca, tipografía y logo a partir del sitio web.
	AnalyzeBrand(ctx context.Context, websiteURL string) (*dto.BrandAnalysisDTO, error)
}
