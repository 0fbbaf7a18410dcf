package courseRoutes

import (
	courseControllers "streeskill/controllers/course"
	"streeskill/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/v1/courses")

	courseGroup.Get("/", courseControllers.GetAllCourses)
	courseGroup.Get("/:id", courseControllers.GetCourseDetails)
	courseGroup.Get("/:id/reels", courseControllers.GetCourseReels)
	courseGroup.Post("/:id/progress", middleware.JWTMiddleware, courseControllers.RecordProgress)
}
