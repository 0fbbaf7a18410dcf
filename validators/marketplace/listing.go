package marketplaceValidator

import (
	"strings"

	"streeskill/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ListingForm mirrors the sell-screen form as the client submits it: price
// arrives as raw text, image may be absent entirely.
type ListingForm struct {
	Image       *string `json:"image"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
}

// ValidateListing accepts a listing when image, name and price are all
// non-blank after trimming. Price is deliberately NOT checked for numeric
// well-formedness here; the original client validated only non-blankness
// and parsing is left to the server-side decimal column.
func ValidateListing(listing ListingForm) bool {
	hasImage := listing.Image != nil && strings.TrimSpace(*listing.Image) != ""
	hasName := strings.TrimSpace(listing.Name) != ""
	hasPrice := strings.TrimSpace(listing.Price) != ""

	return hasImage && hasName && hasPrice
}

type createProductRequest struct {
	Title string  `json:"title" validate:"required"`
	Price float64 `json:"price" validate:"required"`
}

// CreateProduct validator middleware
func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(createProductRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Title and price required")
		}

		return c.Next()
	}
}
