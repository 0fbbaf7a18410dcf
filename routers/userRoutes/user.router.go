package userRoutes

import (
	userControllers "streeskill/controllers/user"
	"streeskill/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/v1/user", middleware.JWTMiddleware)

	userGroup.Get("/progress", userControllers.GetProgress)
	userGroup.Put("/profile", userControllers.UpdateProfile)
	userGroup.Put("/password", userControllers.ChangePassword)
	userGroup.Put("/settings", userControllers.UpdateSettings)
	userGroup.Get("/stats", userControllers.GetStats)
}
