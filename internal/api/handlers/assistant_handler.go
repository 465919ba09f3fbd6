package handlers

import (
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"guidelight/internal/api/client"
	"guidelight/pkg/logger"
)

// AssistantHandler proxies AI assistant endpoints to the assistant
// service.
type AssistantHandler struct {
	Assistant *client.ServiceClient
}

// NewAssistantHandler create an AssistantHandler
func NewAssistantHandler(assistant *client.ServiceClient) *AssistantHandler {
	return &AssistantHandler{Assistant: assistant}
}

func (h *AssistantHandler) relay(c *fiber.Ctx, method, path string, body interface{}) error {
	var reply map[string]interface{}
	status, err := h.Assistant.Call(c.UserContext(), method, path, tokenFrom(c), body, &reply)
	if err != nil {
		logger.Log.Error("assistant service call failed", zap.String("path", path), zap.String("err", err.Error()))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "assistant service unavailable"})
	}
	return c.Status(status).JSON(reply)
}

// Ask ask the AI assistant
// @Summary Ask the AI career assistant
// @Description Web-grounded answer from the education and career counselor
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body object true "question and optional history"
// @Success 200 {object} string "answer"
// @Router /assistant/ask [post]
func (h *AssistantHandler) Ask(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	return h.relay(c, http.MethodPost, "/assistant/ask", body)
}

// SuggestPaths ask for structured path suggestions
// @Summary Suggest career paths for interests
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body object true "interests"
// @Success 200 {object} string "suggestions"
// @Router /assistant/suggest [post]
func (h *AssistantHandler) SuggestPaths(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}
	return h.relay(c, http.MethodPost, "/assistant/suggest", body)
}

// ListPaths browse the career catalog
// @Summary List career paths
// @Tags Assistant
// @Produce json
// @Param category query string false "category filter"
// @Param search query string false "keyword"
// @Success 200 {object} string "paths"
// @Router /assistant/paths [get]
func (h *AssistantHandler) ListPaths(c *fiber.Ctx) error {
	path := "/assistant/paths?category=" + url.QueryEscape(c.Query("category")) +
		"&search=" + url.QueryEscape(c.Query("search"))
	return h.relay(c, http.MethodGet, path, nil)
}
