package utils

import (
	"log"
	"time"

	"streeskill/database"
	"streeskill/models"

	"github.com/robfig/cron/v3"
)

// analyticsRetention is how long raw analytics events are kept
const analyticsRetention = 90 * 24 * time.Hour

func logScheduler(message string) {
	log.Printf("[DIGEST-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sendUnreadDigests emails every user who has unread notifications and
// has notification emails enabled
func sendUnreadDigests() {
	db := database.Database.Db

	type digestRow struct {
		UserID uint
		Count  int64
	}

	var rows []digestRow
	if err := db.Model(&models.Notification{}).
		Select("user_id, COUNT(*) as count").
		Where("is_read = ?", false).
		Group("user_id").
		Scan(&rows).Error; err != nil {
		logScheduler("Error collecting unread counts: " + err.Error())
		return
	}

	for _, row := range rows {
		var user models.User
		if err := db.First(&user, row.UserID).Error; err != nil {
			continue
		}

		var pref models.UserPreference
		if err := db.Where("user_id = ?", row.UserID).First(&pref).Error; err == nil && !pref.Notifications {
			continue
		}

		if err := SendUnreadDigestEmail(user.Email, user.Name, row.Count); err != nil {
			logScheduler("Error sending digest to " + user.Email + ": " + err.Error())
		}
	}
}

// pruneAnalyticsEvents hard-deletes events past the retention window. This is
// the only path that removes analytics rows; handlers never update or delete them.
func pruneAnalyticsEvents() {
	db := database.Database.Db
	cutoff := time.Now().Add(-analyticsRetention)

	result := db.Unscoped().Where("created_at < ?", cutoff).Delete(&models.AnalyticsEvent{})
	if result.Error != nil {
		logScheduler("Error pruning analytics events: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Pruned old analytics events")
	}
}

// StartDigestScheduler runs the hourly unread digest and the daily
// analytics retention job
func StartDigestScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@hourly", sendUnreadDigests); err != nil {
		log.Printf("Error scheduling unread digest job: %v", err)
	}
	if _, err := c.AddFunc("@daily", pruneAnalyticsEvents); err != nil {
		log.Printf("Error scheduling analytics prune job: %v", err)
	}

	c.Start()
	logScheduler("Scheduler started")
	return c
}
