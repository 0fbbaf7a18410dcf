package youtubeController

import "time"

type mockVideo struct {
	id           string
	title        string
	channelTitle string
}

var mockCatalog = map[string][]mockVideo{
	"tailoring": {
		{"amWLrZwSPmc", "Sewing Machine Basics", "Tailoring Tips"},
		{"rUbqo0XQGAI", "How to Take Measurements", "Stitch Perfect"},
		{"ZJy7Dz3FJWQ", "Simple Blouse Cutting", "DIY Fashion"},
	},
	"embroidery": {
		{"w1vHpKiPbFo", "Basic Embroidery Stitches", "Craft Corner"},
		{"grKJsPbfDzs", "Flower Embroidery Design", "Needle Art"},
		{"xyHmPyKqaJM", "Border Embroidery Pattern", "Stitch Magic"},
	},
	"mehendi": {
		{"qkLH_jWLXZk", "Simple Mehndi Design", "Mehndi Art"},
		{"Yz8koS0Z3BA", "Arabic Mehndi Tutorial", "Henna Queen"},
		{"bJzLqGcqPeo", "Bridal Mehndi Design", "Wedding Mehndi"},
	},
	"knitting": {
		{"GcOzdAzmtNM", "Knitting for Beginners", "Yarn Crafts"},
		{"eqca4DwFsbc", "Basic Crochet Stitches", "Crochet World"},
	},
	"beauty": {
		{"xDwQ0VjE_HU", "Facial at Home", "Beauty Tips"},
		{"LYpKlXBXbio", "Threading Tutorial", "Parlour Skills"},
	},
	"candles": {
		{"nESKgdBXJsI", "Candle Making Basics", "DIY Candles"},
		{"LdLvp630plc", "Scented Candles DIY", "Craft Ideas"},
	},
	"general": {
		{"qkLH_jWLXZk", "Skill Tutorial", "Learn & Earn"},
		{"w1vHpKiPbFo", "Craft Tutorial", "DIY Skills"},
		{"amWLrZwSPmc", "Business Skills", "Entrepreneur"},
	},
}

var mockTrendingCategories = []string{"tailoring", "embroidery", "mehendi", "knitting", "beauty", "candles"}

// MockProvider serves the bundled catalog; it stands in for the Data API
// when no key is configured and backs the fallback path on API failures
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func mockShorts(category string) []Short {
	videos, ok := mockCatalog[category]
	if !ok {
		videos = mockCatalog["general"]
	}

	shorts := make([]Short, 0, len(videos))
	for _, v := range videos {
		shorts = append(shorts, Short{
			ID:           v.id,
			Title:        v.title,
			Description:  "Learn " + v.title + " step by step",
			Thumbnail:    "https://img.youtube.com/vi/" + v.id + "/hqdefault.jpg",
			ChannelTitle: v.channelTitle,
			PublishedAt:  time.Now().UTC().Format(time.RFC3339),
			VideoURL:     "youtube:" + v.id,
		})
	}
	return shorts
}

func (m *MockProvider) Shorts(category string, maxResults int) ([]Short, error) {
	return mockShorts(category), nil
}

func (m *MockProvider) Search(q string, maxResults int) ([]Short, error) {
	return mockShorts("general"), nil
}

func (m *MockProvider) Video(videoID string) (*Video, error) {
	return &Video{
		ID:          videoID,
		Title:       "Tutorial Video",
		Description: "Learn new skills",
		VideoURL:    "youtube:" + videoID,
	}, nil
}

func (m *MockProvider) Trending(maxResults int) ([]Short, error) {
	var all []Short
	for _, category := range mockTrendingCategories {
		all = append(all, mockShorts(category)...)
	}
	return all, nil
}
