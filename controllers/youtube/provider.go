package youtubeController

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Short is one short-form tutorial video entry
type Short struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	VideoURL     string `json:"videoUrl"`
}

// Video is the detail view of a single video
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	Duration     string `json:"duration"`
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	VideoURL     string `json:"videoUrl"`
}

// ErrVideoNotFound marks a lookup that reached the API but matched nothing
var ErrVideoNotFound = fmt.Errorf("video not found")

// ShortsProvider serves short-form tutorial videos. There are two
// implementations: the real Data API client and the mock catalog; which one
// handles requests is decided once at startup, not per call.
type ShortsProvider interface {
	Shorts(category string, maxResults int) ([]Short, error)
	Search(q string, maxResults int) ([]Short, error)
	Video(videoID string) (*Video, error)
	Trending(maxResults int) ([]Short, error)
}

// Search queries per skill category, tuned for hindi-language tutorials
var skillSearchQueries = map[string]string{
	"tailoring":  "tailoring tutorial hindi silai machine",
	"embroidery": "hand embroidery tutorial hindi kadhai",
	"knitting":   "knitting crochet tutorial hindi bunai",
	"mehendi":    "mehndi design tutorial hindi simple",
	"baking":     "cake baking tutorial hindi home",
	"beauty":     "beauty parlour tutorial hindi facial makeup",
	"packaging":  "gift wrapping packaging tutorial hindi",
	"beadwork":   "beaded jewelry making tutorial hindi",
	"macrame":    "macrame tutorial hindi wall hanging",
	"candles":    "candle making tutorial hindi diy",
	"quilling":   "paper quilling tutorial hindi",
	"meesho":     "meesho selling tutorial hindi online business",
	"cooking":    "indian cooking business tutorial hindi tiffin",
	"pottery":    "pottery clay art tutorial hindi diya",
	"rangoli":    "rangoli kolam design tutorial hindi",
	"soap":       "soap making tutorial hindi homemade",
}

func categoryQuery(category string) string {
	if q, ok := skillSearchQueries[category]; ok {
		return q
	}
	return category + " tutorial hindi"
}

// --- Data API v3 client ---

type apiThumbnail struct {
	URL string `json:"url"`
}

type apiSnippet struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	Thumbnails   struct {
		High    apiThumbnail `json:"high"`
		Default apiThumbnail `json:"default"`
	} `json:"thumbnails"`
}

type apiSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet apiSnippet `json:"snippet"`
	} `json:"items"`
}

type apiVideoResponse struct {
	Items []struct {
		ID             string     `json:"id"`
		Snippet        apiSnippet `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
			LikeCount string `json:"likeCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// APIClient talks to the YouTube Data API v3
type APIClient struct {
	client *resty.Client
	apiKey string
}

// NewAPIClient builds a Data API client around the given key
func NewAPIClient(apiKey string) *APIClient {
	return &APIClient{
		client: resty.New().
			SetBaseURL("https://www.googleapis.com/youtube/v3").
			SetTimeout(10 * time.Second),
		apiKey: apiKey,
	}
}

func (a *APIClient) searchShorts(params map[string]string, maxResults int) ([]Short, error) {
	var result apiSearchResponse

	query := map[string]string{
		"part":          "snippet",
		"type":          "video",
		"videoDuration": "short",
		"maxResults":    fmt.Sprintf("%d", maxResults),
		"regionCode":    "IN",
		"key":           a.apiKey,
	}
	for k, v := range params {
		query[k] = v
	}

	resp, err := a.client.R().
		SetQueryParams(query).
		SetResult(&result).
		Get("/search")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("youtube api request failed: %s", resp.Status())
	}

	shorts := make([]Short, 0, len(result.Items))
	for _, item := range result.Items {
		thumbnail := item.Snippet.Thumbnails.High.URL
		if thumbnail == "" {
			thumbnail = item.Snippet.Thumbnails.Default.URL
		}
		shorts = append(shorts, Short{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			Thumbnail:    thumbnail,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
			VideoURL:     "youtube:" + item.ID.VideoID,
		})
	}
	return shorts, nil
}

func (a *APIClient) Shorts(category string, maxResults int) ([]Short, error) {
	return a.searchShorts(map[string]string{
		"q":                 categoryQuery(category) + " #shorts",
		"relevanceLanguage": "hi",
	}, maxResults)
}

func (a *APIClient) Search(q string, maxResults int) ([]Short, error) {
	return a.searchShorts(map[string]string{
		"q": q + " tutorial hindi #shorts",
	}, maxResults)
}

func (a *APIClient) Trending(maxResults int) ([]Short, error) {
	return a.searchShorts(map[string]string{
		"q":     "women skill tutorial hindi handicraft business",
		"order": "viewCount",
	}, maxResults)
}

func (a *APIClient) Video(videoID string) (*Video, error) {
	var result apiVideoResponse

	resp, err := a.client.R().
		SetQueryParams(map[string]string{
			"part": "snippet,contentDetails,statistics",
			"id":   videoID,
			"key":  a.apiKey,
		}).
		SetResult(&result).
		Get("/videos")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("youtube api request failed: %s", resp.Status())
	}

	if len(result.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	item := result.Items[0]
	return &Video{
		ID:           item.ID,
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Thumbnail:    item.Snippet.Thumbnails.High.URL,
		ChannelTitle: item.Snippet.ChannelTitle,
		PublishedAt:  item.Snippet.PublishedAt,
		Duration:     item.ContentDetails.Duration,
		ViewCount:    item.Statistics.ViewCount,
		LikeCount:    item.Statistics.LikeCount,
		VideoURL:     "youtube:" + item.ID,
	}, nil
}
