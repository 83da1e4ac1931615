package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/fk219/Send-My-Invoice/internal/application/dto"
	"github.com/fk219/Send-My-Invoice/internal/domain"
)

func errorBody(code, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Code: code, Message: msg}
}

// writeError traduce los errores de dominio a su código HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorBody("NOT_FOUND", err.Error()))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("VALIDATION", err.Error()))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(errorBody("DUPLICATE", err.Error()))
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(errorBody("CONFLICT", err.Error()))
	case errors.Is(err, domain.ErrUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(errorBody("UNAVAILABLE", err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody("INTERNAL", err.Error()))
	}
}
