package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sossoukouame/kousossou-bot-be/internal/core/engine"
	"github.com/sossoukouame/kousossou-bot-be/internal/services"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// AskRequest is the chat request body. The last exchange is an optional hint
// for contextual matching.
type AskRequest struct {
	Question     string `json:"question" example:"Bonjour"`
	LastQuestion string `json:"lastQuestion,omitempty"`
	LastAnswer   string `json:"lastAnswer,omitempty"`
}

type AskResponse struct {
	Answer     string `json:"answer"`
	Found      bool   `json:"found"`
	Confidence int    `json:"confidence,omitempty"`
}

// Ask godoc
// @Summary Ask the chatbot a question
// @Description Matches the question against the knowledge base, falling back to web search and the unanswered log
// @Tags Chat
// @Accept json
// @Produce json
// @Param data body AskRequest true "Question"
// @Success 200 {object} AskResponse
// @Failure 400 {object} map[string]string
// @Router /api/chat/ask [post]
func (h *ChatHandler) Ask(c *fiber.Ctx) error {
	var req AskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request format"})
	}
	if strings.TrimSpace(req.Question) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request format"})
	}

	var conv *engine.Context
	if req.LastQuestion != "" || req.LastAnswer != "" {
		conv = &engine.Context{
			LastQuestion: req.LastQuestion,
			LastAnswer:   req.LastAnswer,
		}
	}

	result, err := h.chatService.Ask(c.UserContext(), req.Question, conv)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(AskResponse{
		Answer:     result.Answer,
		Found:      result.Found,
		Confidence: result.Confidence,
	})
}
