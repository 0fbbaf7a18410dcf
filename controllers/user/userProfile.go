package userController

import (
	"encoding/json"
	"log"

	"streeskill/config"
	courseController "streeskill/controllers/course"
	"streeskill/database"
	"streeskill/middleware"
	"streeskill/models"
	courseModels "streeskill/models/course"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// GetProgress returns the caller's completion summary per started course
func GetProgress(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	db := database.Database.Db

	var courseIDs []uint
	if err := db.Model(&models.UserProgress{}).
		Where("user_id = ?", userID).
		Distinct("course_id").
		Pluck("course_id", &courseIDs).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	result := make(map[uint]courseController.CourseProgress, len(courseIDs))
	for _, courseID := range courseIDs {
		progress, err := courseController.BuildCourseProgress(db, userID, courseID)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
		}
		result[courseID] = progress
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Progress fetched successfully.", result)
}

// UpdateProfile applies partial name/avatar changes
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	reqData := new(struct {
		Name   string `json:"name"`
		Avatar string `json:"avatar"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	db := database.Database.Db

	updates := map[string]interface{}{}
	if reqData.Name != "" {
		updates["name"] = reqData.Name
	}
	if reqData.Avatar != "" {
		updates["avatar"] = reqData.Avatar
	}

	if len(updates) > 0 {
		if err := db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
			log.Printf("Error updating profile: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
		}
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Profile updated successfully", fiber.Map{
		"id":        user.ID,
		"email":     user.Email,
		"name":      user.Name,
		"avatar":    user.Avatar,
		"createdAt": user.CreatedAt,
	})
}

// ChangePassword verifies the current password before setting the new one
func ChangePassword(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	reqData := new(struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.CurrentPassword)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Current password is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := db.Model(&models.User{}).Where("id = ?", userID).
		Update("password", string(hashedPassword)).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Password changed successfully", nil)
}

// UpdateSettings applies partial preference changes
func UpdateSettings(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	reqData := new(struct {
		Notifications    *bool    `json:"notifications"`
		AutoPlay         *bool    `json:"autoPlay"`
		DownloadOverWifi *bool    `json:"downloadOverWifi"`
		Language         string   `json:"language"`
		CaptionLanguages []string `json:"captionLanguages"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	db := database.Database.Db

	updates := map[string]interface{}{}
	if reqData.Notifications != nil {
		updates["notifications"] = *reqData.Notifications
	}
	if reqData.AutoPlay != nil {
		updates["auto_play"] = *reqData.AutoPlay
	}
	if reqData.DownloadOverWifi != nil {
		updates["download_over_wifi"] = *reqData.DownloadOverWifi
	}
	if reqData.Language != "" {
		updates["language"] = reqData.Language
	}
	if reqData.CaptionLanguages != nil {
		raw, err := json.Marshal(reqData.CaptionLanguages)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid captionLanguages")
		}
		updates["caption_languages"] = datatypes.JSON(raw)
	}

	if len(updates) > 0 {
		if err := db.Model(&models.UserPreference{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
			log.Printf("Error updating settings: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
		}
	}

	var preference models.UserPreference
	db.Where("user_id = ?", userID).First(&preference)

	return middleware.JsonResponse(c, fiber.StatusOK, "Settings updated", preference)
}

// GetStats returns cumulative counters plus derived course completion counts
func GetStats(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	db := database.Database.Db

	var stats models.UserStats
	if err := db.Where("user_id = ?", userID).First(&stats).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, "Stats fetched successfully.", fiber.Map{
			"totalSessions":     0,
			"minutesLearned":    0,
			"longestStreak":     0,
			"currentStreak":     0,
			"coursesCompleted":  0,
			"coursesInProgress": 0,
		})
	}

	type courseCompletion struct {
		CourseID  uint
		Completed int64
	}
	var completions []courseCompletion
	db.Model(&models.UserProgress{}).
		Select("course_id, COUNT(DISTINCT reel_id) as completed").
		Where("user_id = ?", userID).
		Group("course_id").
		Scan(&completions)

	coursesCompleted := 0
	coursesInProgress := 0
	for _, completion := range completions {
		var totalReels int64
		db.Model(&courseModels.Reel{}).Where("course_id = ?", completion.CourseID).Count(&totalReels)
		if totalReels > 0 && completion.Completed >= totalReels {
			coursesCompleted++
		} else if completion.Completed > 0 {
			coursesInProgress++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Stats fetched successfully.", fiber.Map{
		"totalSessions":     stats.TotalSessions,
		"minutesLearned":    stats.MinutesLearned,
		"longestStreak":     stats.LongestStreak,
		"currentStreak":     stats.CurrentStreak,
		"coursesCompleted":  coursesCompleted,
		"coursesInProgress": coursesInProgress,
	})
}
