package searchController

import (
	"strings"

	"streeskill/database"
	"streeskill/middleware"
	communityModels "streeskill/models/community"
	courseModels "streeskill/models/course"
	marketplaceModels "streeskill/models/marketplace"

	"github.com/gofiber/fiber/v2"
)

// maxSuggestions caps the combined suggestion list
const maxSuggestions = 8

// TrendingSearches is the fixed trending-terms list shown on the search screen
var TrendingSearches = []string{
	"mehndi design",
	"embroidery patterns",
	"pickle recipe",
	"candle making",
	"jewelry design",
	"home decor",
	"handmade crafts",
	"cooking tips",
}

// Suggestion is one autocomplete entry
type Suggestion struct {
	Text string `json:"text"`
	Type string `json:"type"` // trending, course
}

// BuildSuggestions combines trending terms containing the query with course
// titles containing it, in that order, truncated to maxSuggestions. There is
// no scoring; list-concatenation order is the only ordering.
func BuildSuggestions(q string, courseTitles []string) []Suggestion {
	needle := strings.ToLower(q)

	suggestions := []Suggestion{}
	for _, term := range TrendingSearches {
		if strings.Contains(term, needle) {
			suggestions = append(suggestions, Suggestion{Text: term, Type: "trending"})
		}
	}
	for _, title := range courseTitles {
		suggestions = append(suggestions, Suggestion{Text: title, Type: "course"})
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
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

// Search runs a substring search across courses, active products and posts
func Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return middleware.JsonResponse(c, fiber.StatusOK, "Search results.", fiber.Map{
			"courses":  []fiber.Map{},
			"products": []fiber.Map{},
			"posts":    []fiber.Map{},
		})
	}

	db := database.Database.Db
	like := "%" + q + "%"

	var courses []courseModels.Course
	db.Where("title LIKE ? OR description LIKE ? OR category LIKE ?", like, like, like).
		Order("rating DESC").
		Limit(10).
		Find(&courses)

	var products []marketplaceModels.Product
	db.Where("status = ? AND (title LIKE ? OR description LIKE ? OR category LIKE ?)",
		marketplaceModels.ProductStatusActive, like, like, like).
		Order("created_at DESC").
		Limit(10).
		Find(&products)

	var posts []communityModels.CommunityPost
	db.Where("title LIKE ? OR content LIKE ?", like, like).
		Order("created_at DESC").
		Limit(10).
		Find(&posts)

	formattedCourses := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		formattedCourses = append(formattedCourses, formatCourse(course))
	}

	formattedProducts := make([]fiber.Map, 0, len(products))
	for _, p := range products {
		formattedProducts = append(formattedProducts, fiber.Map{
			"id":          p.ID,
			"userId":      p.UserID,
			"title":       p.Title,
			"description": p.Description,
			"price":       p.Price,
			"category":    p.Category,
			"status":      p.Status,
			"createdAt":   p.CreatedAt,
		})
	}

	formattedPosts := make([]fiber.Map, 0, len(posts))
	for _, p := range posts {
		formattedPosts = append(formattedPosts, fiber.Map{
			"id":        p.ID,
			"userId":    p.UserID,
			"title":     p.Title,
			"content":   p.Content,
			"category":  p.Category,
			"upvotes":   p.Upvotes,
			"downvotes": p.Downvotes,
			"createdAt": p.CreatedAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Search results.", fiber.Map{
		"courses":  formattedCourses,
		"products": formattedProducts,
		"posts":    formattedPosts,
	})
}

// GetSuggestions serves autocomplete entries for a query prefix
func GetSuggestions(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return middleware.JsonResponse(c, fiber.StatusOK, "Suggestions.", []Suggestion{})
	}

	var courseTitles []string
	database.Database.Db.Model(&courseModels.Course{}).
		Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q)+"%").
		Limit(5).
		Pluck("title", &courseTitles)

	return middleware.JsonResponse(c, fiber.StatusOK, "Suggestions.", BuildSuggestions(q, courseTitles))
}

// GetRecommendations returns the highest rated courses
func GetRecommendations(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.
		Order("rating DESC, enrolled_count DESC").
		Limit(5).
		Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	result := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		result = append(result, formatCourse(course))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Recommendations fetched successfully.", result)
}

// GetTrending returns the most enrolled courses and the top trending terms
func GetTrending(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.
		Order("enrolled_count DESC").
		Limit(3).
		Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	result := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		result = append(result, formatCourse(course))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Trending fetched successfully.", fiber.Map{
		"courses":  result,
		"searches": TrendingSearches[:5],
	})
}
