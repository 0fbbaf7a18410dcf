package main

import (
	"time"

	"streeskill/config"
	youtubeController "streeskill/controllers/youtube"
	"streeskill/database"
	analyticsRoutes "streeskill/routers/analyticsRoutes"
	authRoutes "streeskill/routers/authRoutes"
	communityRoutes "streeskill/routers/communityRoutes"
	courseRoutes "streeskill/routers/courseRoutes"
	marketplaceRoutes "streeskill/routers/marketplaceRoutes"
	notificationRoutes "streeskill/routers/notificationRoutes"
	searchRoutes "streeskill/routers/searchRoutes"
	userRoutes "streeskill/routers/userRoutes"
	youtubeRoutes "streeskill/routers/youtubeRoutes"
	"streeskill/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	database.SeedCatalog(database.Database.Db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	youtubeController.Init()

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	userRoutes.SetupUserRoutes(app)
	communityRoutes.SetupCommunityRoutes(app)
	marketplaceRoutes.SetupMarketplaceRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	analyticsRoutes.SetupAnalyticsRoutes(app)
	searchRoutes.SetupSearchRoutes(app)
	youtubeRoutes.SetupYoutubeRoutes(app)

	// JSON 404 for anything no route claimed
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Route not found",
		})
	})

	digest := utils.StartDigestScheduler()
	defer digest.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
