package authValidator

import (
	"regexp"
	"strings"

	"streeskill/middleware"

	"github.com/gofiber/fiber/v2"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			Name     string `json:"name"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if strings.TrimSpace(reqData.Email) == "" ||
			strings.TrimSpace(reqData.Password) == "" ||
			strings.TrimSpace(reqData.Name) == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "All fields are required")
		}

		if !isValidEmail(reqData.Email) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"email": "Invalid email!",
			})
		}

		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.Email == "" || reqData.Password == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email and password required")
		}

		return c.Next()
	}
}
