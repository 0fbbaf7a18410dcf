package marketplaceRoutes

import (
	marketplaceControllers "streeskill/controllers/marketplace"
	"streeskill/middleware"
	marketplaceValidators "streeskill/validators/marketplace"

	"github.com/gofiber/fiber/v2"
)

func SetupMarketplaceRoutes(app *fiber.App) {
	productGroup := app.Group("/api/v1/products", middleware.JWTMiddleware)

	productGroup.Get("/", marketplaceControllers.GetProducts)
	productGroup.Post("/", marketplaceValidators.CreateProduct(), marketplaceControllers.CreateProduct)
	productGroup.Get("/seller", marketplaceControllers.GetSellerOrders)
	productGroup.Get("/summary", marketplaceControllers.GetEarningsSummary)
	productGroup.Put("/:id", marketplaceControllers.UpdateProduct)
	productGroup.Delete("/:id", marketplaceControllers.DeleteProduct)

	// Flat aliases the mobile client uses for the seller dashboard.
	orderGroup := app.Group("/api/v1/orders", middleware.JWTMiddleware)
	orderGroup.Get("/", marketplaceControllers.GetSellerOrders)
	orderGroup.Post("/", marketplaceControllers.CreateOrder)
	orderGroup.Put("/:id/status", marketplaceControllers.UpdateOrderStatus)

	app.Get("/api/v1/earnings", middleware.JWTMiddleware, marketplaceControllers.GetEarningsSummary)
}
