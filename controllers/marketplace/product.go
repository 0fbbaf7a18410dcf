package marketplaceController

import (
	"encoding/json"
	"log"

	"streeskill/database"
	"streeskill/middleware"
	marketplaceModels "streeskill/models/marketplace"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func formatProduct(p marketplaceModels.Product) fiber.Map {
	images := []string{}
	if len(p.Images) > 0 {
		if err := json.Unmarshal(p.Images, &images); err != nil {
			images = []string{}
		}
	}

	return fiber.Map{
		"id":          p.ID,
		"userId":      p.UserID,
		"title":       p.Title,
		"description": p.Description,
		"price":       p.Price,
		"images":      images,
		"category":    p.Category,
		"status":      p.Status,
		"createdAt":   p.CreatedAt,
	}
}

// GetProducts lists the caller's listings, newest first
func GetProducts(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	db := database.Database.Db

	var products []marketplaceModels.Product
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&products).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	result := make([]fiber.Map, 0, len(products))
	for _, p := range products {
		result = append(result, formatProduct(p))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Products fetched successfully.", result)
}

// CreateProduct lists a new product for the caller
func CreateProduct(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	reqData := new(struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Price       float64  `json:"price"`
		Images      []string `json:"images"`
		Category    string   `json:"category"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if reqData.Title == "" || reqData.Price == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Title and price required")
	}

	images := reqData.Images
	if images == nil {
		images = []string{}
	}
	rawImages, _ := json.Marshal(images)

	product := marketplaceModels.Product{
		UserID:      userID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		Images:      datatypes.JSON(rawImages),
		Category:    reqData.Category,
		Status:      marketplaceModels.ProductStatusActive,
	}

	if err := database.Database.Db.Create(&product).Error; err != nil {
		log.Printf("Error creating product: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Product listed successfully", formatProduct(product))
}

// findOwnedProduct loads a product, reporting not-found for both missing
// rows and ownership mismatches so listings stay private to their owner
func findOwnedProduct(c *fiber.Ctx, userID uint) (*marketplaceModels.Product, error) {
	productID, err := c.ParamsInt("id")
	if err != nil {
		return nil, middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid product id")
	}

	var product marketplaceModels.Product
	if err := database.Database.Db.First(&product, productID).Error; err != nil || product.UserID != userID {
		return nil, middleware.ErrorResponse(c, fiber.StatusNotFound, "Product not found")
	}

	return &product, nil
}

// UpdateProduct applies a partial update to one of the caller's listings
func UpdateProduct(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	product, errResp := findOwnedProduct(c, userID)
	if product == nil {
		return errResp
	}

	reqData := new(struct {
		Title       string   `json:"title"`
		Description *string  `json:"description"`
		Price       float64  `json:"price"`
		Images      []string `json:"images"`
		Category    string   `json:"category"`
		Status      string   `json:"status"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if reqData.Status != "" &&
		reqData.Status != marketplaceModels.ProductStatusActive &&
		reqData.Status != marketplaceModels.ProductStatusSold &&
		reqData.Status != marketplaceModels.ProductStatusInactive {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid status")
	}

	updates := map[string]interface{}{}
	if reqData.Title != "" {
		updates["title"] = reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Price != 0 {
		updates["price"] = reqData.Price
	}
	if reqData.Images != nil {
		rawImages, _ := json.Marshal(reqData.Images)
		updates["images"] = datatypes.JSON(rawImages)
	}
	if reqData.Category != "" {
		updates["category"] = reqData.Category
	}
	if reqData.Status != "" {
		updates["status"] = reqData.Status
	}

	db := database.Database.Db

	if len(updates) > 0 {
		if err := db.Model(product).Updates(updates).Error; err != nil {
			log.Printf("Error updating product: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
		}
	}

	var updated marketplaceModels.Product
	if err := db.First(&updated, product.ID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Product updated", formatProduct(updated))
}

// DeleteProduct removes one of the caller's listings
func DeleteProduct(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	product, errResp := findOwnedProduct(c, userID)
	if product == nil {
		return errResp
	}

	if err := database.Database.Db.Unscoped().Delete(product).Error; err != nil {
		log.Printf("Error deleting product: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Product removed", nil)
}
