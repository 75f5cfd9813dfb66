package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sossoukouame/kousossou-bot-be/internal/apperrors"
	"github.com/sossoukouame/kousossou-bot-be/internal/utils"
)

// respondError maps service errors to HTTP responses. Unexpected errors are
// logged and surfaced as a generic 500 with no internals.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Resource not found"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	case apperrors.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		utils.LogError("request failed", err, map[string]interface{}{
			"path": c.Path(),
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
}
