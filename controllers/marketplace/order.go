package marketplaceController

import (
	"log"
	"time"

	"streeskill/database"
	"streeskill/middleware"
	"streeskill/models"
	marketplaceModels "streeskill/models/marketplace"
	"streeskill/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateOrder places a pending order for an active product. The buyer is
// the caller; the seller comes from the listing.
func CreateOrder(c *fiber.Ctx) error {
	buyerID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	reqData := new(struct {
		ProductID uint `json:"productId"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.ProductID == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "productId required")
	}

	db := database.Database.Db

	var product marketplaceModels.Product
	if err := db.First(&product, reqData.ProductID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Product not found")
	}
	if product.Status != marketplaceModels.ProductStatusActive {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Product is not available")
	}

	var buyer models.User
	if err := db.First(&buyer, buyerID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	order := marketplaceModels.Order{
		Reference: uuid.NewString(),
		ProductID: product.ID,
		SellerID:  product.UserID,
		BuyerID:   buyerID,
		BuyerName: buyer.Name,
		Amount:    product.Price,
		Status:    marketplaceModels.OrderStatusPending,
	}
	if err := db.Create(&order).Error; err != nil {
		log.Printf("Error creating order: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Order placed", fiber.Map{
		"id":           order.ID,
		"reference":    order.Reference,
		"productId":    order.ProductID,
		"productTitle": product.Title,
		"buyerId":      order.BuyerID,
		"buyerName":    order.BuyerName,
		"amount":       order.Amount,
		"status":       order.Status,
		"createdAt":    order.CreatedAt,
	})
}

// GetSellerOrders lists orders on the caller's products, newest first
func GetSellerOrders(c *fiber.Ctx) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	db := database.Database.Db

	type orderRow struct {
		marketplaceModels.Order
		ProductTitle string
	}

	var orders []orderRow
	if err := db.Table("orders o").
		Select("o.*, p.title as product_title").
		Joins("JOIN products p ON o.product_id = p.id").
		Where("o.seller_id = ? AND o.deleted_at IS NULL", sellerID).
		Order("o.created_at DESC").
		Scan(&orders).Error; err != nil {
		log.Printf("Error fetching orders: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	result := make([]fiber.Map, 0, len(orders))
	for _, o := range orders {
		result = append(result, fiber.Map{
			"id":           o.ID,
			"reference":    o.Reference,
			"productId":    o.ProductID,
			"productTitle": o.ProductTitle,
			"buyerId":      o.BuyerID,
			"buyerName":    o.BuyerName,
			"amount":       o.Amount,
			"status":       o.Status,
			"createdAt":    o.CreatedAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Orders fetched successfully.", result)
}

// UpdateOrderStatus advances an order along its lifecycle. Only the seller
// may move it, and only along an allowed transition.
func UpdateOrderStatus(c *fiber.Ctx) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	orderID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid order id")
	}

	reqData := new(struct {
		Status string `json:"status"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Status == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "status required")
	}

	db := database.Database.Db

	var order marketplaceModels.Order
	if err := db.First(&order, orderID).Error; err != nil || order.SellerID != sellerID {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Order not found")
	}

	if !marketplaceModels.CanTransition(order.Status, reqData.Status) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest,
			"Cannot move order from "+order.Status+" to "+reqData.Status)
	}

	if err := db.Model(&order).Update("status", reqData.Status).Error; err != nil {
		log.Printf("Error updating order status: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	var product marketplaceModels.Product
	var seller models.User
	if db.First(&product, order.ProductID).Error == nil && db.First(&seller, sellerID).Error == nil {
		go func(email, title, status string) {
			if err := utils.SendOrderStatusEmail(email, title, status); err != nil {
				log.Printf("Error sending order status email: %v", err)
			}
		}(seller.Email, product.Title, reqData.Status)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Order updated", fiber.Map{
		"id":        order.ID,
		"reference": order.Reference,
		"status":    reqData.Status,
	})
}

// GetEarningsSummary aggregates the caller's sales. Only delivered orders
// count as earnings; confirmed and shipped amounts are pending payouts.
func GetEarningsSummary(c *fiber.Ctx) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	db := database.Database.Db

	var totalEarnings float64
	db.Model(&marketplaceModels.Order{}).
		Where("seller_id = ? AND status = ?", sellerID, marketplaceModels.OrderStatusDelivered).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalEarnings)

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var thisMonth float64
	db.Model(&marketplaceModels.Order{}).
		Where("seller_id = ? AND status = ? AND created_at >= ?", sellerID, marketplaceModels.OrderStatusDelivered, monthStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&thisMonth)

	var pendingPayouts float64
	db.Model(&marketplaceModels.Order{}).
		Where("seller_id = ? AND status IN ?", sellerID,
			[]string{marketplaceModels.OrderStatusConfirmed, marketplaceModels.OrderStatusShipped}).
		Select("COALESCE(SUM(amount), 0)").Scan(&pendingPayouts)

	var completedOrders int64
	db.Model(&marketplaceModels.Order{}).
		Where("seller_id = ? AND status = ?", sellerID, marketplaceModels.OrderStatusDelivered).
		Count(&completedOrders)

	type transactionRow struct {
		ID          uint
		Amount      float64
		CreatedAt   time.Time
		Description string
	}

	var transactions []transactionRow
	db.Table("orders o").
		Select("o.id, o.amount, o.created_at, p.title as description").
		Joins("JOIN products p ON o.product_id = p.id").
		Where("o.seller_id = ? AND o.deleted_at IS NULL", sellerID).
		Order("o.created_at DESC").
		Limit(10).
		Scan(&transactions)

	recentTransactions := make([]fiber.Map, 0, len(transactions))
	for _, t := range transactions {
		recentTransactions = append(recentTransactions, fiber.Map{
			"id":          t.ID,
			"type":        "sale",
			"amount":      t.Amount,
			"description": t.Description + " sold",
			"createdAt":   t.CreatedAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Earnings fetched successfully.", fiber.Map{
		"totalEarnings":      totalEarnings,
		"thisMonth":          thisMonth,
		"pendingPayouts":     pendingPayouts,
		"completedOrders":    completedOrders,
		"recentTransactions": recentTransactions,
	})
}
