package analyticsController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"streeskill/config"
	"streeskill/database"
	"streeskill/middleware"
	"streeskill/models"
	courseModels "streeskill/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) *gorm.DB {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	return db
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/v1/analytics/event", middleware.OptionalJWTMiddleware, TrackEvent)
	app.Get("/api/v1/analytics/dashboard", middleware.JWTMiddleware, GetDashboard)
	return app
}

func createUser(t *testing.T, db *gorm.DB) (models.User, string) {
	t.Helper()
	user := models.User{Email: "asha@example.com", Password: "hashed", Name: "Asha"}
	require.NoError(t, db.Create(&user).Error)

	token, _, err := middleware.GenerateTokens(user.ID)
	require.NoError(t, err)

	return user, token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	return resp.StatusCode, parsed
}

func trackEvent(t *testing.T, app *fiber.App, token, eventType string, eventData fiber.Map) {
	t.Helper()
	status, _ := doRequest(t, app, http.MethodPost, "/api/v1/analytics/event", token,
		fiber.Map{"eventType": eventType, "eventData": eventData})
	require.Equal(t, http.StatusOK, status)
}

func TestTrackEvent(t *testing.T) {
	db := setupTest(t)
	app := newTestApp()
	user, token := createUser(t, db)

	// Authenticated event carries the user
	trackEvent(t, app, token, "screen_view", fiber.Map{"screen": "home"})

	// Anonymous event is accepted too
	trackEvent(t, app, "", "screen_view", nil)

	var events []models.AnalyticsEvent
	require.NoError(t, db.Order("id").Find(&events).Error)
	require.Len(t, events, 2)

	require.NotNil(t, events[0].UserID)
	assert.Equal(t, user.ID, *events[0].UserID)
	assert.Nil(t, events[1].UserID)

	// Every event gets a unique reference
	assert.NotEmpty(t, events[0].Reference)
	assert.NotEqual(t, events[0].Reference, events[1].Reference)
}

func TestTrackEventRequiresType(t *testing.T) {
	setupTest(t)
	app := newTestApp()

	status, body := doRequest(t, app, http.MethodPost, "/api/v1/analytics/event", "",
		fiber.Map{"eventData": fiber.Map{"screen": "home"}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "eventType required", body["error"])
}

func TestDashboard(t *testing.T) {
	db := setupTest(t)
	app := newTestApp()
	user, token := createUser(t, db)
	require.NoError(t, db.Create(&models.UserStats{UserID: user.ID, MinutesLearned: 12}).Error)

	course := courseModels.Course{Title: "Pickle Making", Category: "Food"}
	require.NoError(t, db.Create(&course).Error)
	for i := 0; i < 2; i++ {
		reel := courseModels.Reel{CourseID: course.ID, Title: fmt.Sprintf("Lesson %d", i+1), ReelOrder: i + 1}
		require.NoError(t, db.Create(&reel).Error)
		require.NoError(t, db.Create(&models.UserProgress{UserID: user.ID, CourseID: course.ID, ReelID: reel.ID}).Error)
	}

	trackEvent(t, app, token, "screen_view", fiber.Map{"screen": "home"})
	trackEvent(t, app, token, "screen_view", fiber.Map{"screen": "course"})
	trackEvent(t, app, token, "course_start", fiber.Map{"courseId": course.ID})
	trackEvent(t, app, token, "reel_watch", fiber.Map{"courseId": course.ID})

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/analytics/dashboard", token, nil)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["totalViews"])
	assert.Equal(t, float64(12), data["totalWatchTime"])
	// One course started and fully completed
	assert.Equal(t, float64(100), data["completionRate"])

	popular := data["popularCourses"].([]interface{})
	require.Len(t, popular, 1)
	top := popular[0].(map[string]interface{})
	assert.Equal(t, "Pickle Making", top["title"])
	assert.Equal(t, float64(2), top["views"])

	weekly := data["weeklyActivity"].([]interface{})
	require.Len(t, weekly, 7)
	total := 0
	for _, entry := range weekly {
		total += int(entry.(map[string]interface{})["minutes"].(float64))
	}
	assert.Equal(t, 1, total) // one reel_watch this week
}

func TestDashboardEmpty(t *testing.T) {
	db := setupTest(t)
	app := newTestApp()
	_, token := createUser(t, db)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/analytics/dashboard", token, nil)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["totalViews"])
	assert.Equal(t, float64(0), data["totalWatchTime"])
	assert.Equal(t, float64(0), data["completionRate"])
	assert.Empty(t, data["popularCourses"])
	assert.Len(t, data["weeklyActivity"].([]interface{}), 7)
}
