package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fk219/Send-My-Invoice/internal/application/dto"
	"github.com/fk219/Send-My-Invoice/internal/application/usecase"
)

// ProfileHandler perfil del negocio emisor.
type ProfileHandler struct {
	uc *usecase.ProfileUseCase
}

// NewProfileHandler construye el handler.
func NewProfileHandler(uc *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get GET /api/profile
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	p, err := h.uc.Get(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(p)
}

// Update PUT /api/profile
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.ProfileRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	p, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(p)
}
