package searchRoutes

import (
	searchControllers "streeskill/controllers/search"

	"github.com/gofiber/fiber/v2"
)

func SetupSearchRoutes(app *fiber.App) {
	apiGroup := app.Group("/api/v1")

	apiGroup.Get("/search", searchControllers.Search)
	apiGroup.Get("/search/suggestions", searchControllers.GetSuggestions)
	apiGroup.Get("/recommendations", searchControllers.GetRecommendations)
	apiGroup.Get("/trending", searchControllers.GetTrending)
}
