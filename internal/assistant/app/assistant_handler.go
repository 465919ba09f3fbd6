package app

import (
	"github.com/gofiber/fiber/v2"

	"guidelight/internal/assistant/domain"
)

// AssistantHandler exposes the assistant usecase over REST.
type AssistantHandler struct {
	Usecase AssistantUseCase
}

// NewAssistantHandler create an AssistantHandler
func NewAssistantHandler(usecase AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{Usecase: usecase}
}

// Ask handles POST /assistant/ask
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	type request struct {
		Question string            `json:"question"`
		History  []domain.ChatTurn `json:"history"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil || req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "question is required"})
	}

	answer := h.Usecase.Ask(c.UserContext(), req.Question, req.History)
	return c.JSON(fiber.Map{"answer": answer})
}

// SuggestPaths handles POST /assistant/suggest
func (h *AssistantHandler) SuggestPaths(c *fiber.Ctx) error {
	type request struct {
		Interests []string `json:"interests"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil || len(req.Interests) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "interests is required"})
	}

	suggestions := h.Usecase.SuggestPaths(c.UserContext(), req.Interests)
	if suggestions == nil {
		suggestions = []domain.PathSuggestion{}
	}
	return c.JSON(fiber.Map{"suggestions": suggestions})
}

// ListPaths handles GET /assistant/paths?category=&search=
func (h *AssistantHandler) ListPaths(c *fiber.Ctx) error {
	paths, err := h.Usecase.ListPaths(c.UserContext(), c.Query("category"), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"paths": paths})
}
