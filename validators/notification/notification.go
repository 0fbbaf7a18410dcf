package notificationValidator

import (
	"streeskill/middleware"

	"github.com/gofiber/fiber/v2"
)

// MarkRead validator middleware
func MarkRead() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			NotificationIDs []uint `json:"notificationIds"`
		})
		if err := c.BodyParser(reqData); err != nil || reqData.NotificationIDs == nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "notificationIds array required")
		}

		return c.Next()
	}
}
