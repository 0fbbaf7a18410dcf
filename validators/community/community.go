package communityValidator

import (
	"streeskill/middleware"
	communityModels "streeskill/models/community"

	"github.com/gofiber/fiber/v2"
)

// CreatePost validator middleware
func CreatePost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.Title == "" || reqData.Content == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Title and content required")
		}

		return c.Next()
	}
}

// Vote validator middleware
func Vote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			VoteType string `json:"voteType"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.VoteType != communityModels.VoteTypeUp && reqData.VoteType != communityModels.VoteTypeDown {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid vote type")
		}

		return c.Next()
	}
}
