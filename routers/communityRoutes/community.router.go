package communityRoutes

import (
	communityControllers "streeskill/controllers/community"
	"streeskill/middleware"
	communityValidators "streeskill/validators/community"

	"github.com/gofiber/fiber/v2"
)

func SetupCommunityRoutes(app *fiber.App) {
	communityGroup := app.Group("/api/v1/community")

	communityGroup.Get("/posts", middleware.OptionalJWTMiddleware, communityControllers.GetPosts)
	communityGroup.Post("/posts", middleware.JWTMiddleware, communityValidators.CreatePost(), communityControllers.CreatePost)
	communityGroup.Get("/posts/:id/replies", communityControllers.GetReplies)
	communityGroup.Post("/posts/:id/reply", middleware.JWTMiddleware, communityControllers.CreateReply)
	communityGroup.Post("/posts/:id/vote", middleware.JWTMiddleware, communityValidators.Vote(), communityControllers.VotePost)
}
