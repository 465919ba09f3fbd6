package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"guidelight/internal/api/handlers"
	"guidelight/pkg/middlewares"
)

// RegisterRoutes register gateway routes
// @title Guide Light API
// @version 1.0
// @description API documentation for the Guide Light gateway
// @host localhost:8080
// @BasePath /
func RegisterRoutes(app *fiber.App, memberHandler *handlers.MemberHandler, assistantHandler *handlers.AssistantHandler) {
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/", handlers.ConnectCheck)
	app.Post("/debug", handlers.DebugLogFlag)

	memberRoutes := app.Group("/member")
	memberRoutes.Post("/register", memberHandler.Register)
	memberRoutes.Post("/login", memberHandler.Login)
	memberRoutes.Post("/password/reset", memberHandler.RequestPasswordReset)
	memberRoutes.Post("/password/confirm", memberHandler.ConfirmPasswordReset)

	memberRoutes.Use(middlewares.JWTMiddleware())
	memberRoutes.Post("/logout", memberHandler.Logout)
	memberRoutes.Post("/role", memberHandler.UpdateRole)
	memberRoutes.Get("/profile/:id", memberHandler.GetProfile)
	memberRoutes.Get("/mentors", memberHandler.ListMentors)

	assistantRoutes := app.Group("/assistant", middlewares.JWTMiddleware())
	assistantRoutes.Post("/ask", assistantHandler.Ask)
	assistantRoutes.Post("/suggest", assistantHandler.SuggestPaths)
	assistantRoutes.Get("/paths", assistantHandler.ListPaths)
}
