package communityController

import (
	"errors"
	"log"

	"streeskill/database"
	"streeskill/middleware"
	"streeskill/models"
	communityModels "streeskill/models/community"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type postRow struct {
	communityModels.CommunityPost
	UserName     string
	UserAvatar   string
	RepliesCount int64
}

func formatPost(p postRow, userVote interface{}) fiber.Map {
	return fiber.Map{
		"id":           p.ID,
		"userId":       p.UserID,
		"userName":     p.UserName,
		"userAvatar":   p.UserAvatar,
		"title":        p.Title,
		"content":      p.Content,
		"category":     p.Category,
		"upvotes":      p.Upvotes,
		"downvotes":    p.Downvotes,
		"repliesCount": p.RepliesCount,
		"createdAt":    p.CreatedAt,
		"userVote":     userVote,
	}
}

// GetPosts lists posts newest first with author info and reply counts.
// Authenticated callers also see their own vote on each post.
func GetPosts(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Table("community_posts p").
		Select("p.*, u.name as user_name, u.avatar as user_avatar, " +
			"(SELECT COUNT(*) FROM post_replies WHERE post_id = p.id AND deleted_at IS NULL) as replies_count").
		Joins("JOIN users u ON p.user_id = u.id").
		Where("p.deleted_at IS NULL")

	if category := c.Query("category"); category != "" && category != "All" {
		query = query.Where("p.category = ?", category)
	}

	var posts []postRow
	if err := query.Order("p.created_at DESC").Scan(&posts).Error; err != nil {
		log.Printf("Error fetching posts: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	// Map of postID -> this user's vote, when authenticated
	userVotes := map[uint]string{}
	if userID, ok := middleware.UserID(c); ok {
		var votes []communityModels.PostVote
		db.Where("user_id = ?", userID).Find(&votes)
		for _, v := range votes {
			userVotes[v.PostID] = v.VoteType
		}
	}

	result := make([]fiber.Map, 0, len(posts))
	for _, p := range posts {
		var userVote interface{}
		if vote, voted := userVotes[p.ID]; voted {
			userVote = vote
		}
		result = append(result, formatPost(p, userVote))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Posts fetched successfully.", result)
}

// CreatePost publishes a post under the caller's name
func CreatePost(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	reqData := new(struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if reqData.Title == "" || reqData.Content == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Title and content required")
	}

	category := reqData.Category
	if category == "" {
		category = "General"
	}

	db := database.Database.Db

	post := communityModels.CommunityPost{
		UserID:   userID,
		Title:    reqData.Title,
		Content:  reqData.Content,
		Category: category,
	}
	if err := db.Create(&post).Error; err != nil {
		log.Printf("Error creating post: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	var user models.User
	db.First(&user, userID)

	return middleware.JsonResponse(c, fiber.StatusCreated, "Post created successfully", fiber.Map{
		"id":           post.ID,
		"userId":       userID,
		"userName":     user.Name,
		"userAvatar":   user.Avatar,
		"title":        post.Title,
		"content":      post.Content,
		"category":     post.Category,
		"upvotes":      0,
		"downvotes":    0,
		"repliesCount": 0,
		"createdAt":    post.CreatedAt,
		"userVote":     nil,
	})
}

// GetReplies lists a post's replies oldest first
func GetReplies(c *fiber.Ctx) error {
	db := database.Database.Db

	postID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid post id")
	}

	type replyRow struct {
		communityModels.PostReply
		UserName   string
		UserAvatar string
	}

	var replies []replyRow
	if err := db.Table("post_replies r").
		Select("r.*, u.name as user_name, u.avatar as user_avatar").
		Joins("JOIN users u ON r.user_id = u.id").
		Where("r.post_id = ? AND r.deleted_at IS NULL", postID).
		Order("r.created_at ASC").
		Scan(&replies).Error; err != nil {
		log.Printf("Error fetching replies: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	result := make([]fiber.Map, 0, len(replies))
	for _, r := range replies {
		result = append(result, fiber.Map{
			"id":         r.ID,
			"postId":     r.PostID,
			"userId":     r.UserID,
			"userName":   r.UserName,
			"userAvatar": r.UserAvatar,
			"content":    r.Content,
			"upvotes":    r.Upvotes,
			"downvotes":  r.Downvotes,
			"createdAt":  r.CreatedAt,
			"userVote":   nil,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Replies fetched successfully.", result)
}

// CreateReply posts a reply on behalf of the caller
func CreateReply(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	postID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid post id")
	}

	reqData := new(struct {
		Content string `json:"content"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.Content == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Content required")
	}

	db := database.Database.Db

	var post communityModels.CommunityPost
	if err := db.First(&post, postID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Post not found")
	}

	reply := communityModels.PostReply{
		PostID:  uint(postID),
		UserID:  userID,
		Content: reqData.Content,
	}
	if err := db.Create(&reply).Error; err != nil {
		log.Printf("Error creating reply: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	var user models.User
	db.First(&user, userID)

	return middleware.JsonResponse(c, fiber.StatusCreated, "Reply posted", fiber.Map{
		"id":         reply.ID,
		"postId":     reply.PostID,
		"userId":     userID,
		"userName":   user.Name,
		"userAvatar": user.Avatar,
		"content":    reply.Content,
		"upvotes":    0,
		"downvotes":  0,
		"createdAt":  reply.CreatedAt,
		"userVote":   nil,
	})
}

// VotePost runs the per-user vote state machine: no vote creates one, the
// same vote toggles it off, the opposite vote retargets it. The read and
// both writes happen in one transaction so the tallies on the post always
// equal the count of live vote rows per type.
func VotePost(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
	}

	postID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid post id")
	}

	reqData := new(struct {
		VoteType string `json:"voteType"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if reqData.VoteType != communityModels.VoteTypeUp && reqData.VoteType != communityModels.VoteTypeDown {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid vote type")
	}

	db := database.Database.Db

	var post communityModels.CommunityPost
	if err := db.First(&post, postID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Post not found")
	}

	tallyColumn := func(voteType string) string {
		if voteType == communityModels.VoteTypeUp {
			return "upvotes"
		}
		return "downvotes"
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var existing communityModels.PostVote
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// New vote
			vote := communityModels.PostVote{
				PostID:   uint(postID),
				UserID:   userID,
				VoteType: reqData.VoteType,
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			return tx.Model(&communityModels.CommunityPost{}).Where("id = ?", postID).
				UpdateColumn(tallyColumn(reqData.VoteType), gorm.Expr(tallyColumn(reqData.VoteType)+" + 1")).Error

		case err != nil:
			return err

		case existing.VoteType == reqData.VoteType:
			// Toggle off
			if err := tx.Unscoped().Delete(&existing).Error; err != nil {
				return err
			}
			return tx.Model(&communityModels.CommunityPost{}).Where("id = ?", postID).
				UpdateColumn(tallyColumn(reqData.VoteType), gorm.Expr(tallyColumn(reqData.VoteType)+" - 1")).Error

		default:
			// Switch vote: old tally down, new tally up
			oldType := existing.VoteType
			if err := tx.Model(&existing).Update("vote_type", reqData.VoteType).Error; err != nil {
				return err
			}
			if err := tx.Model(&communityModels.CommunityPost{}).Where("id = ?", postID).
				UpdateColumn(tallyColumn(oldType), gorm.Expr(tallyColumn(oldType)+" - 1")).Error; err != nil {
				return err
			}
			return tx.Model(&communityModels.CommunityPost{}).Where("id = ?", postID).
				UpdateColumn(tallyColumn(reqData.VoteType), gorm.Expr(tallyColumn(reqData.VoteType)+" + 1")).Error
		}
	})
	if err != nil {
		log.Printf("Error recording vote: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	if err := db.First(&post, postID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Server error")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Vote recorded.", fiber.Map{
		"upvotes":   post.Upvotes,
		"downvotes": post.Downvotes,
	})
}
