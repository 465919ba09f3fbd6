package router

import (
	"github.com/gofiber/fiber/v2"

	"guidelight/internal/assistant/app"
)

// RegisterRoutes register assistant routes. Auth lives on the
// gateway; this service sits behind it.
func RegisterRoutes(r *fiber.App, assistantHandler *app.AssistantHandler) {
	assistantRoutes := r.Group("/assistant")
	assistantRoutes.Post("/ask", assistantHandler.Ask)
	assistantRoutes.Post("/suggest", assistantHandler.SuggestPaths)
	assistantRoutes.Get("/paths", assistantHandler.ListPaths)
}
