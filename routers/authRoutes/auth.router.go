package authRoutes

import (
	authControllers "streeskill/controllers/auth"
	"streeskill/middleware"
	authValidators "streeskill/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/v1/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Post("/logout", middleware.JWTMiddleware, authControllers.Logout)
	authGroup.Post("/forgot-password", authControllers.ForgotPassword)
	authGroup.Get("/me", middleware.JWTMiddleware, authControllers.Me)
}
