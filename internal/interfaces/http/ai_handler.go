package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fk219/Send-My-Invoice/internal/application/dto"
	"github.com/fk219/Send-My-Invoice/internal/application/usecase"
)

// AIHandler maneja los endpoints asistidos por IA.
// Nunca responden error por fallas del proveedor: el caso de uso degrada al valor original.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// EnhanceDescription godoc
// @Summary      Mejorar la descripción de una línea
// @Description  Reescribe el texto de forma profesional. Si el proveedor falla o no está
//               configurado devuelve el texto original con enhanced=false. Timeout interno de 10 s.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EnhanceDescriptionRequest  true  "description (obligatorio)"
// @Success      200   {object}  dto.EnhanceDescriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ai/enhance-description [post]
func (h *AIHandler) EnhanceDescription(c *fiber.Ctx) error {
	var req dto.EnhanceDescriptionRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return c.JSON(h.uc.EnhanceDescription(c.Context(), req))
}

// AnalyzeBrand godoc
// @Summary      Sugerir identidad visual a partir del sitio web
// @Description  Devuelve color, tipografía y logo sugeridos. Campos vacíos si no hay dato.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BrandAnalysisRequest  true  "website_url (obligatorio)"
// @Success      200   {object}  dto.BrandAnalysisDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ai/brand [post]
func (h *AIHandler) AnalyzeBrand(c *fiber.Ctx) error {
	var req dto.BrandAnalysisRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	return c.JSON(h.uc.AnalyzeBrand(c.Context(), req))
}
