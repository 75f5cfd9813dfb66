package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sossoukouame/kousossou-bot-be/internal/services"
	"github.com/sossoukouame/kousossou-bot-be/internal/utils"
)

type KnowledgeHandler struct {
	importService *services.ImportService
}

func NewKnowledgeHandler(importService *services.ImportService) *KnowledgeHandler {
	return &KnowledgeHandler{importService: importService}
}

// ImportRequest carries newline-delimited knowledge lines in the
// "question=answer||alternative||intention||ton" format.
type ImportRequest struct {
	CategoryID int    `json:"categoryId"`
	Content    string `json:"content"`
}

// Import godoc
// @Summary Bulk-import knowledge entries
// @Description Each line is "question=answer||alternative||intention||ton"; malformed lines are skipped, existing questions are counted as duplicates
// @Tags Knowledge
// @Accept json
// @Produce json
// @Param data body ImportRequest true "Import payload"
// @Success 200 {object} services.ImportResult
// @Failure 400 {object} map[string]string
// @Router /api/knowledge/import [post]
func (h *KnowledgeHandler) Import(c *fiber.Ctx) error {
	var req ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request format"})
	}
	if req.CategoryID <= 0 || req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "categoryId and content are required"})
	}

	result, err := h.importService.Import(req.CategoryID, req.Content)
	if err != nil {
		utils.LogError("knowledge import failed", err, map[string]interface{}{
			"category_id": req.CategoryID,
		})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Import failed"})
	}
	return c.JSON(result)
}
