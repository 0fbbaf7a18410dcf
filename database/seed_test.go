package database

import (
	"fmt"
	"testing"

	courseModels "streeskill/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDb(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	RunMigrations(db)
	return db
}

func TestSeedCatalog(t *testing.T) {
	db := openTestDb(t)
	SeedCatalog(db)

	var courses []courseModels.Course
	require.NoError(t, db.Find(&courses).Error)
	require.Len(t, courses, 5)

	for _, course := range courses {
		var reels []courseModels.Reel
		require.NoError(t, db.Where("course_id = ?", course.ID).Order("reel_order").Find(&reels).Error)

		assert.GreaterOrEqual(t, len(reels), 5, "%s has too few reels", course.Title)
		assert.LessOrEqual(t, len(reels), 7, "%s has too many reels", course.Title)

		// Watch order is dense from 1 with tri-lingual captions throughout
		for i, reel := range reels {
			assert.Equal(t, i+1, reel.ReelOrder)
			assert.NotEmpty(t, reel.CaptionsHindi)
			assert.NotEmpty(t, reel.CaptionsEnglish)
			assert.NotEmpty(t, reel.CaptionsTamil)
		}
	}
}

func TestSeedCatalogIdempotent(t *testing.T) {
	db := openTestDb(t)
	SeedCatalog(db)
	SeedCatalog(db)

	var courseCount, reelCount int64
	db.Model(&courseModels.Course{}).Count(&courseCount)
	db.Model(&courseModels.Reel{}).Count(&reelCount)

	assert.Equal(t, int64(5), courseCount)

	var expectedReels int64
	for _, sc := range sampleCourses {
		expectedReels += int64(len(sc.reels))
	}
	assert.Equal(t, expectedReels, reelCount)
}
