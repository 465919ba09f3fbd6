package router

import (
	"github.com/gofiber/fiber/v2"

	"guidelight/internal/member/app"
	"guidelight/pkg/middlewares"
)

// RegisterRoutes register member routes
func RegisterRoutes(r *fiber.App, memberHandler *app.MemberHandler) {
	memberRoutes := r.Group("/member")
	memberRoutes.Post("/register", memberHandler.Register)
	memberRoutes.Post("/login", memberHandler.Login)
	memberRoutes.Post("/password/reset", memberHandler.RequestPasswordReset)
	memberRoutes.Post("/password/confirm", memberHandler.ConfirmPasswordReset)

	memberRoutes.Use(middlewares.JWTMiddleware())
	memberRoutes.Post("/logout", memberHandler.Logout)
	memberRoutes.Post("/role", memberHandler.UpdateRole)
	memberRoutes.Post("/avatar", memberHandler.UploadAvatar)
	memberRoutes.Get("/profile/:id", memberHandler.GetProfile)
	memberRoutes.Get("/profiles", memberHandler.ListProfiles)
	memberRoutes.Get("/mentors", memberHandler.ListMentors)
}
