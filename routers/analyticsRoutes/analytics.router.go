package analyticsRoutes

import (
	analyticsControllers "streeskill/controllers/analytics"
	"streeskill/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAnalyticsRoutes(app *fiber.App) {
	analyticsGroup := app.Group("/api/v1/analytics")

	analyticsGroup.Post("/event", middleware.OptionalJWTMiddleware, analyticsControllers.TrackEvent)
	analyticsGroup.Get("/dashboard", middleware.JWTMiddleware, analyticsControllers.GetDashboard)
}
