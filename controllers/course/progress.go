package courseController

import (
	"errors"
	"log"
	"time"

	"streeskill/database"
	"streeskill/middleware"
	"streeskill/models"
	courseModels "streeskill/models/course"
	"streeskill/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// minutesPerCompletion is credited to the user's stats for every reel they
// finish for the first time
const minutesPerCompletion = 1

// CourseProgress is the completion summary for one (user, course) pair
type CourseProgress struct {
	CourseID        uint   `json:"courseId"`
	CompletedReels  []uint `json:"completedReels"`
	ProgressPercent int    `json:"progressPercent"`
}

// BuildCourseProgress assembles the completion summary from progress rows
// and the course's reel count
func BuildCourseProgress(db *gorm.DB, userID, courseID uint) (CourseProgress, error) {
	var completed []uint
	if err := db.Model(&models.UserProgress{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("id").
		Pluck("reel_id", &completed).Error; err != nil {
		return CourseProgress{}, err
	}

	var totalReels int64
	if err := db.Model(&courseModels.Reel{}).Where("course_id = ?", courseID).Count(&totalReels).Error; err != nil {
		return CourseProgress{}, err
	}

	return CourseProgress{
		CourseID:        courseID,
		CompletedReels:  completed,
		ProgressPercent: utils.ProgressPercent(len(completed), int(totalReels)),
	}, nil
}

// RecordProgress marks a reel completed for the caller. Re-marking an
// already-completed reel is a no-op: the unique (user, course, reel) index
// swallows duplicates, and minutes_learned only moves on a fresh insert.
func RecordProgress(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid course id")
	}

	reqData := new(struct {
		ReelID uint `json:"reelId"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.ReelID == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "reelId required")
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	// The reel must belong to this course, otherwise stray ids would count
	// toward completion and push the percentage past 100
	var reel courseModels.Reel
	if err := db.Where("id = ? AND course_id = ?", reqData.ReelID, courseID).First(&reel).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Reel not found")
	}

	var existing models.UserProgress
	err = db.Where("user_id = ? AND course_id = ? AND reel_id = ?", userID, courseID, reqData.ReelID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record := models.UserProgress{
			UserID:   userID,
			CourseID: uint(courseID),
			ReelID:   reqData.ReelID,
		}
		if err := db.Create(&record).Error; err != nil {
			log.Printf("Error recording progress: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
		}

		if err := db.Model(&models.UserStats{}).
			Where("user_id = ?", userID).
			UpdateColumn("minutes_learned", gorm.Expr("minutes_learned + ?", minutesPerCompletion)).Error; err != nil {
			log.Printf("Error updating stats: %v", err)
		}
	} else if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	progress, err := BuildCourseProgress(db, userID, uint(courseID))
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Progress recorded.", fiber.Map{
		"courseId":          progress.CourseID,
		"completedReels":    progress.CompletedReels,
		"lastWatchedReelId": reqData.ReelID,
		"lastWatchedAt":     time.Now().UTC(),
		"progressPercent":   progress.ProgressPercent,
	})
}
