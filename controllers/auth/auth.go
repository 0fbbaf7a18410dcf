package authController

import (
	"encoding/json"
	"log"

	"streeskill/config"
	"streeskill/database"
	"streeskill/middleware"
	"streeskill/models"
	"streeskill/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

const tokenExpirySeconds = 604800 // 7 days, matches the access token TTL

func userResponse(user *models.User) fiber.Map {
	return fiber.Map{
		"id":        user.ID,
		"email":     user.Email,
		"name":      user.Name,
		"avatar":    user.Avatar,
		"createdAt": user.CreatedAt,
	}
}

func tokensResponse(access, refresh string) fiber.Map {
	return fiber.Map{
		"accessToken":  access,
		"refreshToken": refresh,
		"expiresIn":    tokenExpirySeconds,
	}
}

// Register creates a user together with default preferences and zeroed stats
func Register(c *fiber.Ctx) error {
	reqData := new(struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if reqData.Email == "" || reqData.Password == "" || reqData.Name == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "All fields are required")
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	newUser := models.User{
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Name:     reqData.Name,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	captionLanguages, _ := json.Marshal([]string{"Hindi", "English", "Tamil"})
	preference := models.UserPreference{
		UserID:           newUser.ID,
		Notifications:    true,
		AutoPlay:         true,
		DownloadOverWifi: true,
		Language:         "English",
		CaptionLanguages: datatypes.JSON(captionLanguages),
	}
	if err := db.Create(&preference).Error; err != nil {
		log.Printf("Error creating default preferences: %v", err)
	}

	stats := models.UserStats{UserID: newUser.ID}
	if err := db.Create(&stats).Error; err != nil {
		log.Printf("Error creating default stats: %v", err)
	}

	accessToken, refreshToken, err := middleware.GenerateTokens(newUser.ID)
	if err != nil {
		log.Printf("Error generating tokens: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	go func(email, name string) {
		if err := utils.SendWelcomeEmail(email, name); err != nil {
			log.Printf("Error sending welcome email: %v", err)
		}
	}(newUser.Email, newUser.Name)

	return middleware.JsonResponse(c, fiber.StatusOK, "User registered successfully.", fiber.Map{
		"user":   userResponse(&newUser),
		"tokens": tokensResponse(accessToken, refreshToken),
	})
}

// Login verifies credentials and returns the user with their preferences
func Login(c *fiber.Ctx) error {
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

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	var preference models.UserPreference
	db.Where("user_id = ?", user.ID).First(&preference)

	accessToken, refreshToken, err := middleware.GenerateTokens(user.ID)
	if err != nil {
		log.Printf("Error generating tokens: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	userData := userResponse(&user)
	userData["preferences"] = preference

	return middleware.JsonResponse(c, fiber.StatusOK, "Logged in successfully.", fiber.Map{
		"user":   userData,
		"tokens": tokensResponse(accessToken, refreshToken),
	})
}

// Logout acknowledges the request; tokens are stateless so there is
// nothing to invalidate server-side
func Logout(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, "Logged out successfully", nil)
}

// ForgotPassword always reports success so the endpoint cannot be used to
// probe which emails are registered
func ForgotPassword(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, "If email exists, reset link sent", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Password reset email sent", nil)
}

// Me returns the authenticated user's profile with preferences
func Me(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	var preference models.UserPreference
	db.Where("user_id = ?", userID).First(&preference)

	data := userResponse(&user)
	data["preferences"] = preference

	return middleware.JsonResponse(c, fiber.StatusOK, "Profile fetched successfully.", data)
}
