package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sossoukouame/kousossou-bot-be/internal/services"
)

type UnansweredHandler struct {
	unansweredService *services.UnansweredService
}

func NewUnansweredHandler(unansweredService *services.UnansweredService) *UnansweredHandler {
	return &UnansweredHandler{unansweredService: unansweredService}
}

type ResolveRequest struct {
	ID         int    `json:"id"`
	Answer     string `json:"answer"`
	CategoryID int    `json:"categoryId"`
}

// List godoc
// @Summary List unanswered questions, newest first
// @Tags Unanswered
// @Produce json
// @Success 200 {array} models.UnansweredQuestion
// @Router /api/unanswered [get]
func (h *UnansweredHandler) List(c *fiber.Ctx) error {
	questions, err := h.unansweredService.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(questions)
}

// Resolve godoc
// @Summary Resolve an unanswered question into a knowledge entry
// @Tags Unanswered
// @Accept json
// @Produce json
// @Param data body ResolveRequest true "Resolution"
// @Success 200 {object} models.Knowledge
// @Failure 404 {object} map[string]string
// @Router /api/unanswered/resolve [post]
func (h *UnansweredHandler) Resolve(c *fiber.Ctx) error {
	var req ResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request format"})
	}
	if strings.TrimSpace(req.Answer) == "" || req.CategoryID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "answer and categoryId are required"})
	}

	entry, err := h.unansweredService.Resolve(req.ID, req.Answer, req.CategoryID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entry)
}
