package analyticsController

import (
	"encoding/json"
	"log"
	"time"

	"streeskill/database"
	"streeskill/middleware"
	"streeskill/models"
	courseModels "streeskill/models/course"
	"streeskill/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TrackEvent appends one analytics event. Anonymous events are allowed;
// nothing ever updates or deletes a row once written.
func TrackEvent(c *fiber.Ctx) error {
	reqData := new(struct {
		EventType string                 `json:"eventType"`
		EventData map[string]interface{} `json:"eventData"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if reqData.EventType == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "eventType required")
	}

	eventData := reqData.EventData
	if eventData == nil {
		eventData = map[string]interface{}{}
	}
	rawData, err := json.Marshal(eventData)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid eventData")
	}

	event := models.AnalyticsEvent{
		Reference: uuid.NewString(),
		EventType: reqData.EventType,
		EventData: datatypes.JSON(rawData),
	}
	if userID, ok := middleware.UserID(c); ok {
		event.UserID = &userID
	}

	if err := database.Database.Db.Create(&event).Error; err != nil {
		log.Printf("Error tracking event: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Event tracked.", nil)
}

// GetDashboard summarizes the caller's activity: views, watch time,
// completion rate, most-viewed courses and the last week of activity
func GetDashboard(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	db := database.Database.Db

	var totalViews int64
	db.Model(&models.AnalyticsEvent{}).
		Where("user_id = ? AND event_type = ?", userID, "screen_view").
		Count(&totalViews)

	var stats models.UserStats
	totalWatchTime := 0
	if err := db.Where("user_id = ?", userID).First(&stats).Error; err == nil {
		totalWatchTime = stats.MinutesLearned
	}

	// Courses started vs fully completed
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

	started := len(completions)
	completed := 0
	for _, completion := range completions {
		var totalReels int64
		db.Model(&courseModels.Reel{}).Where("course_id = ?", completion.CourseID).Count(&totalReels)
		if totalReels > 0 && completion.Completed >= totalReels {
			completed++
		}
	}
	completionRate := utils.ProgressPercent(completed, started)

	// Most viewed courses from course_start / reel_watch events
	type courseViews struct {
		CourseID uint
		Views    int64
	}
	var popularRows []courseViews
	db.Model(&models.AnalyticsEvent{}).
		Select("CAST(JSON_EXTRACT(event_data, '$.courseId') AS UNSIGNED) as course_id, COUNT(*) as views").
		Where("user_id = ? AND event_type IN ?", userID, []string{"course_start", "reel_watch"}).
		Group("course_id").
		Order("views DESC").
		Limit(5).
		Scan(&popularRows)

	popularCourses := make([]fiber.Map, 0, len(popularRows))
	for _, row := range popularRows {
		var course courseModels.Course
		if err := db.First(&course, row.CourseID).Error; err != nil {
			continue
		}
		popularCourses = append(popularCourses, fiber.Map{
			"courseId": course.ID,
			"title":    course.Title,
			"views":    row.Views,
		})
	}

	// Last 7 days of reel_watch activity, bucketed Mon..Sun
	weekAgo := time.Now().AddDate(0, 0, -7)
	var recentEvents []models.AnalyticsEvent
	db.Where("user_id = ? AND event_type = ? AND created_at >= ?", userID, "reel_watch", weekAgo).
		Find(&recentEvents)

	activityByDay := map[string]int{}
	for _, event := range recentEvents {
		activityByDay[event.CreatedAt.Format("Mon")]++
	}

	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	weeklyActivity := make([]fiber.Map, 0, len(days))
	for _, day := range days {
		weeklyActivity = append(weeklyActivity, fiber.Map{
			"day":     day,
			"minutes": activityByDay[day],
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Dashboard fetched successfully.", fiber.Map{
		"totalViews":     totalViews,
		"totalWatchTime": totalWatchTime,
		"completionRate": completionRate,
		"popularCourses": popularCourses,
		"weeklyActivity": weeklyActivity,
	})
}
