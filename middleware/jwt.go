package middleware

import (
	"fmt"
	"strings"
	"time"

	"streeskill/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// AccessTokenTTL matches the client session window (7 days)
const AccessTokenTTL = 7 * 24 * time.Hour

// RefreshTokenTTL is the refresh window (30 days)
const RefreshTokenTTL = 30 * 24 * time.Hour

// GenerateTokens issues an access and a refresh token for the user
func GenerateTokens(userID uint) (string, string, error) {
	jwtSecret := []byte(config.AppConfig.JWTKey)

	accessClaims := jwt.MapClaims{
		"userId": userID,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(AccessTokenTTL).Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString(jwtSecret)
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"userId": userID,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(RefreshTokenTTL).Unix(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString(jwtSecret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func parseBearerToken(c *fiber.Ctx) (uint, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, fmt.Errorf("missing Authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return 0, fmt.Errorf("invalid Authorization header format")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return 0, fmt.Errorf("invalid token payload")
	}

	// JWT numeric claims decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid token payload")
	}

	return uint(userID), nil
}

// JWTMiddleware rejects requests without a valid bearer token
func JWTMiddleware(c *fiber.Ctx) error {
	userID, err := parseBearerToken(c)
	if err != nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	c.Locals("userId", userID)
	return c.Next()
}

// OptionalJWTMiddleware sets userId when a valid token is present and
// continues anonymously otherwise
func OptionalJWTMiddleware(c *fiber.Ctx) error {
	if userID, err := parseBearerToken(c); err == nil {
		c.Locals("userId", userID)
	}
	return c.Next()
}

// UserID returns the authenticated user id from the request context
func UserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals("userId").(uint)
	return userID, ok
}

// JsonResponse writes the standard success envelope
func JsonResponse(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// ErrorResponse writes the standard failure envelope
func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// ValidationErrorResponse reports per-field validation failures
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Validation failed!",
		"errors":  errors,
	})
}
