package marketplaceController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"streeskill/config"
	"streeskill/database"
	"streeskill/middleware"
	"streeskill/models"
	marketplaceModels "streeskill/models/marketplace"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) *gorm.DB {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	return db
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/v1/products", middleware.JWTMiddleware, GetProducts)
	app.Post("/api/v1/products", middleware.JWTMiddleware, CreateProduct)
	app.Put("/api/v1/products/:id", middleware.JWTMiddleware, UpdateProduct)
	app.Delete("/api/v1/products/:id", middleware.JWTMiddleware, DeleteProduct)
	app.Get("/api/v1/orders", middleware.JWTMiddleware, GetSellerOrders)
	app.Post("/api/v1/orders", middleware.JWTMiddleware, CreateOrder)
	app.Put("/api/v1/orders/:id/status", middleware.JWTMiddleware, UpdateOrderStatus)
	app.Get("/api/v1/earnings", middleware.JWTMiddleware, GetEarningsSummary)
	return app
}

func createUser(t *testing.T, db *gorm.DB, email string) (models.User, string) {
	t.Helper()
	user := models.User{Email: email, Password: "hashed", Name: "Asha"}
	require.NoError(t, db.Create(&user).Error)

	token, _, err := middleware.GenerateTokens(user.ID)
	require.NoError(t, err)

	return user, token
}

func createProduct(t *testing.T, db *gorm.DB, userID uint, title string, price float64) marketplaceModels.Product {
	t.Helper()
	product := marketplaceModels.Product{
		UserID: userID,
		Title:  title,
		Price:  price,
		Status: marketplaceModels.ProductStatusActive,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func createOrder(t *testing.T, db *gorm.DB, product marketplaceModels.Product, buyerID uint, status string, amount float64) marketplaceModels.Order {
	t.Helper()
	order := marketplaceModels.Order{
		Reference: fmt.Sprintf("ref-%s-%d-%d", status, product.ID, buyerID),
		ProductID: product.ID,
		SellerID:  product.UserID,
		BuyerID:   buyerID,
		BuyerName: "Buyer",
		Amount:    amount,
		Status:    status,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))

	return resp.StatusCode, parsed
}

func TestEarningsSummary(t *testing.T) {
	db := setupTest(t)
	app := newTestApp()

	seller, sellerToken := createUser(t, db, "seller@example.com")
	buyer, _ := createUser(t, db, "buyer@example.com")

	scarf := createProduct(t, db, seller.ID, "Silk Scarf", 100)
	createOrder(t, db, scarf, buyer.ID, marketplaceModels.OrderStatusDelivered, 100)
	createOrder(t, db, scarf, buyer.ID, marketplaceModels.OrderStatusConfirmed, 50)
	createOrder(t, db, scarf, buyer.ID, marketplaceModels.OrderStatusShipped, 25)
	createOrder(t, db, scarf, buyer.ID, marketplaceModels.OrderStatusPending, 10)
	createOrder(t, db, scarf, buyer.ID, marketplaceModels.OrderStatusCancelled, 40)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/earnings", sellerToken, nil)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(100), data["totalEarnings"])
	assert.Equal(t, float64(100), data["thisMonth"])
	assert.Equal(t, float64(75), data["pendingPayouts"])
	assert.Equal(t, float64(1), data["completedOrders"])

	transactions := data["recentTransactions"].([]interface{})
	require.NotEmpty(t, transactions)
	first := transactions[0].(map[string]interface{})
	assert.Equal(t, "sale", first["type"])
	assert.Equal(t, "Silk Scarf sold", first["description"])
}

func TestEarningsEmptyForNewSeller(t *testing.T) {
	db := setupTest(t)
	app := newTestApp()
	_, token := createUser(t, db, "new@example.com")

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/earnings", token, nil)
	require.Equal(t, http.StatusOK, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["totalEarnings"])
	assert.Equal(t, float64(0), data["pendingPayouts"])
	assert.Empty(t, data["recentTransactions"])
}

func TestCreateOrder(t *testing.T) {
	db := setupTest(t)
	app := newTestApp()

	seller, _ := createUser(t, db, "seller@example.com")
	_, buyerToken := createUser(t, db, "buyer@example.com")
	product := createProduct(t, db, seller.ID, "Clay Diya Set", 250)

	status, body := doRequest(t, app, http.MethodPost, "/api/v1/orders", buyerToken, fiber.Map{"productId": product.ID})
	require.Equal(t, http.StatusCreated, status)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, float64(250), data["amount"])
	assert.NotEmpty(t, data["reference"])

	// Sold-out listings cannot be ordered
	require.NoError(t, db.Model(&product).Update("status", marketplaceModels.ProductStatusSold).Error)
	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/orders", buyerToken, fiber.Map{"productId": product.ID})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/v1/orders", buyerToken, fiber.Map{"productId": 9999})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestUpdateOrderStatus(t *testing.T) {
	db := setupTest(t)
	app := newTestApp()

	seller, sellerToken := createUser(t, db, "seller@example.com")
	buyer, buyerToken := createUser(t, db, "buyer@example.com")
	product := createProduct(t, db, seller.ID, "Jute Bag", 150)
	order := createOrder(t, db, product, buyer.ID, marketplaceModels.OrderStatusPending, 150)

	path := fmt.Sprintf("/api/v1/orders/%d/status", order.ID)

	// Skipping a step is rejected
	status, _ := doRequest(t, app, http.MethodPut, path, sellerToken, fiber.Map{"status": "delivered"})
	assert.Equal(t, http.StatusBadRequest, status)

	// Only the seller may move the order
	status, _ = doRequest(t, app, http.MethodPut, path, buyerToken, fiber.Map{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, status)

	status, body := doRequest(t, app, http.MethodPut, path, sellerToken, fiber.Map{"status": "confirmed"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "confirmed", body["data"].(map[string]interface{})["status"])

	var fresh marketplaceModels.Order
	require.NoError(t, db.First(&fresh, order.ID).Error)
	assert.Equal(t, marketplaceModels.OrderStatusConfirmed, fresh.Status)
}

func TestSellerOrdersListing(t *testing.T) {
	db := setupTest(t)
	app := newTestApp()

	seller, sellerToken := createUser(t, db, "seller@example.com")
	buyer, _ := createUser(t, db, "buyer@example.com")
	product := createProduct(t, db, seller.ID, "Woolen Cap", 80)
	createOrder(t, db, product, buyer.ID, marketplaceModels.OrderStatusPending, 80)

	status, body := doRequest(t, app, http.MethodGet, "/api/v1/orders", sellerToken, nil)
	require.Equal(t, http.StatusOK, status)

	orders := body["data"].([]interface{})
	require.Len(t, orders, 1)
	entry := orders[0].(map[string]interface{})
	assert.Equal(t, "Woolen Cap", entry["productTitle"])
	assert.Equal(t, "Buyer", entry["buyerName"])
}

func TestProductOwnership(t *testing.T) {
	db := setupTest(t)
	app := newTestApp()

	owner, ownerToken := createUser(t, db, "owner@example.com")
	_, strangerToken := createUser(t, db, "stranger@example.com")
	product := createProduct(t, db, owner.ID, "Bead Necklace", 300)

	path := fmt.Sprintf("/api/v1/products/%d", product.ID)

	// Someone else's listing looks like it does not exist
	status, _ := doRequest(t, app, http.MethodPut, path, strangerToken, fiber.Map{"title": "Hijacked"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodDelete, path, strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodDelete, path, ownerToken, nil)
	require.Equal(t, http.StatusOK, status)

	var count int64
	db.Unscoped().Model(&marketplaceModels.Product{}).Where("id = ?", product.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}
