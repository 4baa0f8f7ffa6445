package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
)

// bodyHasKey informa si el body JSON incluye la clave, sin importar su valor.
// La presencia de la clave es semánticamente distinta de su valor: los
// updates rechazan la presencia de campos inmutables (code, id).
func bodyHasKey(c *fiber.Ctx, key string) bool {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return false
	}
	_, ok := raw[key]
	return ok
}

// respondError mapea el portador de error del dominio a un status HTTP.
// Cualquier error no clasificado (fallos del almacén) se propaga como 500.
func respondError(c *fiber.Ctx, err error) error {
	var apiErr *domain.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case domain.StatusNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: apiErr.Message})
		case domain.StatusBadRequest:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: apiErr.Message})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
