package notificationRoutes

import (
	notificationControllers "streeskill/controllers/notification"
	"streeskill/middleware"
	notificationValidators "streeskill/validators/notification"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/api/v1/notifications", middleware.JWTMiddleware)

	notificationGroup.Get("/", notificationControllers.GetNotifications)
	notificationGroup.Put("/read", notificationValidators.MarkRead(), notificationControllers.MarkRead)
	notificationGroup.Put("/read-all", notificationControllers.MarkAllRead)
	notificationGroup.Get("/unread-count", notificationControllers.GetUnreadCount)
}
