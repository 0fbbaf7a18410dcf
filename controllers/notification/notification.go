package notificationController

import (
	"encoding/json"
	"log"

	"streeskill/database"
	"streeskill/middleware"
	"streeskill/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications returns the caller's latest 50 notifications
func GetNotifications(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	var notifications []models.Notification
	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error; err != nil {
		log.Printf("Error fetching notifications: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	result := make([]fiber.Map, 0, len(notifications))
	for _, n := range notifications {
		var data interface{}
		if len(n.Data) > 0 {
			if err := json.Unmarshal(n.Data, &data); err != nil {
				data = nil
			}
		}
		result = append(result, fiber.Map{
			"id":        n.ID,
			"type":      n.Type,
			"title":     n.Title,
			"message":   n.Message,
			"read":      n.IsRead,
			"createdAt": n.CreatedAt,
			"data":      data,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Notifications fetched successfully.", result)
}

// MarkRead flips the read flag on the given notifications. The update is
// scoped to the caller, and the flag only ever moves to true.
func MarkRead(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	reqData := new(struct {
		NotificationIDs []uint `json:"notificationIds"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.NotificationIDs == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "notificationIds array required")
	}

	if len(reqData.NotificationIDs) > 0 {
		if err := database.Database.Db.Model(&models.Notification{}).
			Where("id IN ? AND user_id = ?", reqData.NotificationIDs, userID).
			Update("is_read", true).Error; err != nil {
			log.Printf("Error marking notifications read: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Marked as read", nil)
}

// MarkAllRead flips every unread notification the caller has
func MarkAllRead(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	if err := database.Database.Db.Model(&models.Notification{}).
		Where("user_id = ?", userID).
		Update("is_read", true).Error; err != nil {
		log.Printf("Error marking all notifications read: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "All marked as read", nil)
}

// GetUnreadCount counts the caller's unread notifications
func GetUnreadCount(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	var count int64
	if err := database.Database.Db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Unread count fetched successfully.", fiber.Map{
		"count": count,
	})
}
