package youtubeRoutes

import (
	youtubeControllers "streeskill/controllers/youtube"

	"github.com/gofiber/fiber/v2"
)

func SetupYoutubeRoutes(app *fiber.App) {
	youtubeGroup := app.Group("/api/v1/youtube")

	youtubeGroup.Get("/shorts/:category", youtubeControllers.GetShorts)
	youtubeGroup.Get("/search", youtubeControllers.SearchShorts)
	youtubeGroup.Get("/video/:videoId", youtubeControllers.GetVideo)
	youtubeGroup.Get("/trending", youtubeControllers.GetTrending)
}
