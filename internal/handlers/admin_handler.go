package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// AdminHandler checks the shared admin secret.
type AdminHandler struct {
	password string
}

func NewAdminHandler(password string) *AdminHandler {
	return &AdminHandler{password: password}
}

type LoginRequest struct {
	Password string `json:"password"`
}

// Login godoc
// @Summary Admin login
// @Description Validates the shared admin password
// @Tags Admin
// @Accept json
// @Produce json
// @Param data body LoginRequest true "Credentials"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request format"})
	}

	if req.Password != h.password {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Mot de passe incorrect"})
	}
	return c.JSON(fiber.Map{"success": true})
}
