package youtubeController

import (
	"errors"
	"log"

	"streeskill/config"
	"streeskill/middleware"

	"github.com/gofiber/fiber/v2"
)

var (
	provider ShortsProvider = NewMockProvider()
	fallback                = NewMockProvider()
	source                  = "mock"
)

// Init selects the provider once at startup: the real Data API client when
// a key is configured, the bundled mock catalog otherwise
func Init() {
	if key := config.AppConfig.YouTubeAPIKey; key != "" {
		provider = NewAPIClient(key)
		source = "youtube"
	} else {
		provider = NewMockProvider()
		source = "mock"
	}
}

// SetProvider swaps the provider; used by tests
func SetProvider(p ShortsProvider, providerSource string) {
	provider = p
	source = providerSource
}

func shortsResponse(c *fiber.Ctx, shorts []Short, respSource string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    shorts,
		"source":  respSource,
	})
}

// GetShorts serves short videos for a skill category, falling back to the
// mock catalog when the API call fails
func GetShorts(c *fiber.Ctx) error {
	category := c.Params("category")
	maxResults := c.QueryInt("maxResults", 10)

	shorts, err := provider.Shorts(category, maxResults)
	if err != nil {
		log.Printf("YouTube API error: %v", err)
		shorts, _ = fallback.Shorts(category, maxResults)
		return shortsResponse(c, shorts, "mock")
	}

	return shortsResponse(c, shorts, source)
}

// SearchShorts serves short videos matching a free-text query
func SearchShorts(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Search query required")
	}
	maxResults := c.QueryInt("maxResults", 10)

	shorts, err := provider.Search(q, maxResults)
	if err != nil {
		log.Printf("YouTube search error: %v", err)
		shorts, _ = fallback.Search(q, maxResults)
		return shortsResponse(c, shorts, "mock")
	}

	return shortsResponse(c, shorts, source)
}

// GetVideo returns details for one video. A lookup that matches nothing is
// a 404; a transport failure is a 500 (no mock fallback here).
func GetVideo(c *fiber.Ctx) error {
	videoID := c.Params("videoId")

	video, err := provider.Video(videoID)
	if err != nil {
		if errors.Is(err, ErrVideoNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Video not found")
		}
		log.Printf("YouTube video details error: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch video details")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    video,
		"source":  source,
	})
}

// GetTrending serves the most viewed skill tutorials
func GetTrending(c *fiber.Ctx) error {
	maxResults := c.QueryInt("maxResults", 20)

	shorts, err := provider.Trending(maxResults)
	if err != nil {
		log.Printf("YouTube trending error: %v", err)
		shorts, _ = fallback.Trending(maxResults)
		return shortsResponse(c, shorts, "mock")
	}

	return shortsResponse(c, shorts, source)
}
