package courseController

import (
	"streeskill/database"
	"streeskill/middleware"
	courseModels "streeskill/models/course"

	"github.com/gofiber/fiber/v2"
)

func formatReel(r courseModels.Reel) fiber.Map {
	return fiber.Map{
		"id":          r.ID,
		"courseId":    r.CourseID,
		"title":       r.Title,
		"description": r.Description,
		"videoUrl":    r.VideoURL,
		"thumbnail":   r.Thumbnail,
		"duration":    r.Duration,
		"order":       r.ReelOrder,
		"captions": fiber.Map{
			"hindi":   r.CaptionsHindi,
			"english": r.CaptionsEnglish,
			"tamil":   r.CaptionsTamil,
		},
	}
}

func formatCourse(c courseModels.Course) fiber.Map {
	return fiber.Map{
		"id":            c.ID,
		"title":         c.Title,
		"description":   c.Description,
		"thumbnail":     c.Thumbnail,
		"category":      c.Category,
		"duration":      c.Duration,
		"instructor":    c.Instructor,
		"rating":        c.Rating,
		"enrolledCount": c.EnrolledCount,
		"createdAt":     c.CreatedAt,
	}
}

// GetAllCourses lists courses, newest first, optionally filtered by category
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&courseModels.Course{}).Order("created_at DESC")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var courses []courseModels.Course
	if err := query.Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	result := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		var reelsCount int64
		db.Model(&courseModels.Reel{}).Where("course_id = ?", course.ID).Count(&reelsCount)

		entry := formatCourse(course)
		entry["reelsCount"] = reelsCount
		result = append(result, entry)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Courses fetched successfully.", result)
}

// GetCourseDetails returns one course with its reels in playback order
func GetCourseDetails(c *fiber.Ctx) error {
	db := database.Database.Db

	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var course courseModels.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	var reels []courseModels.Reel
	db.Where("course_id = ?", courseID).Order("reel_order").Find(&reels)

	formattedReels := make([]fiber.Map, 0, len(reels))
	for _, r := range reels {
		formattedReels = append(formattedReels, formatReel(r))
	}

	data := formatCourse(course)
	data["reels"] = formattedReels

	return middleware.JsonResponse(c, fiber.StatusOK, "Course fetched successfully.", data)
}

// GetCourseReels returns the ordered reel list for a course
func GetCourseReels(c *fiber.Ctx) error {
	db := database.Database.Db

	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id")
	}

	var reels []courseModels.Reel
	if err := db.Where("course_id = ?", courseID).Order("reel_order").Find(&reels).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	formattedReels := make([]fiber.Map, 0, len(reels))
	for _, r := range reels {
		formattedReels = append(formattedReels, formatReel(r))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Reels fetched successfully.", formattedReels)
}
