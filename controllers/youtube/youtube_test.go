package youtubeController

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenProvider simulates an unreachable Data API
type brokenProvider struct{}

func (b *brokenProvider) Shorts(category string, maxResults int) ([]Short, error) {
	return nil, fmt.Errorf("quota exceeded")
}

func (b *brokenProvider) Search(q string, maxResults int) ([]Short, error) {
	return nil, fmt.Errorf("quota exceeded")
}

func (b *brokenProvider) Trending(maxResults int) ([]Short, error) {
	return nil, fmt.Errorf("quota exceeded")
}

func (b *brokenProvider) Video(videoID string) (*Video, error) {
	return nil, ErrVideoNotFound
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/v1/youtube/shorts/:category", GetShorts)
	app.Get("/api/v1/youtube/search", SearchShorts)
	app.Get("/api/v1/youtube/video/:videoId", GetVideo)
	app.Get("/api/v1/youtube/trending", GetTrending)
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	return resp.StatusCode, parsed
}

func useProvider(t *testing.T, p ShortsProvider, providerSource string) {
	t.Helper()
	SetProvider(p, providerSource)
	t.Cleanup(func() { SetProvider(NewMockProvider(), "mock") })
}

func TestGetShortsFromMock(t *testing.T) {
	useProvider(t, NewMockProvider(), "mock")
	app := newTestApp()

	status, body := doRequest(t, app, "/api/v1/youtube/shorts/mehendi")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "mock", body["source"])
	assert.NotEmpty(t, body["data"])
}

func TestGetShortsUnknownCategoryUsesGeneral(t *testing.T) {
	useProvider(t, NewMockProvider(), "mock")
	app := newTestApp()

	status, body := doRequest(t, app, "/api/v1/youtube/shorts/underwater-basket-weaving")
	require.Equal(t, http.StatusOK, status)

	shorts := body["data"].([]interface{})
	require.NotEmpty(t, shorts)
	first := shorts[0].(map[string]interface{})
	assert.Equal(t, "Skill Tutorial", first["title"])
}

func TestGetShortsFallsBackOnAPIError(t *testing.T) {
	useProvider(t, &brokenProvider{}, "youtube")
	app := newTestApp()

	status, body := doRequest(t, app, "/api/v1/youtube/shorts/tailoring")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "mock", body["source"])
	assert.NotEmpty(t, body["data"])
}

func TestSearchShorts(t *testing.T) {
	useProvider(t, NewMockProvider(), "mock")
	app := newTestApp()

	status, _ := doRequest(t, app, "/api/v1/youtube/search")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := doRequest(t, app, "/api/v1/youtube/search?q=embroidery")
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["data"])
}

func TestGetVideo(t *testing.T) {
	useProvider(t, NewMockProvider(), "mock")
	app := newTestApp()

	status, body := doRequest(t, app, "/api/v1/youtube/video/amWLrZwSPmc")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "amWLrZwSPmc", data["id"])
}

func TestGetVideoNotFound(t *testing.T) {
	// No mock fallback on the detail endpoint: a miss is a hard 404
	useProvider(t, &brokenProvider{}, "youtube")
	app := newTestApp()

	status, body := doRequest(t, app, "/api/v1/youtube/video/does-not-exist")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
}

func TestGetTrendingAggregatesCategories(t *testing.T) {
	useProvider(t, NewMockProvider(), "mock")
	app := newTestApp()

	status, body := doRequest(t, app, "/api/v1/youtube/trending")
	require.Equal(t, http.StatusOK, status)

	shorts := body["data"].([]interface{})
	assert.GreaterOrEqual(t, len(shorts), len(mockTrendingCategories))
}
