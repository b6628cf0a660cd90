package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/diegoperpetuo/perpetual-backend/apperrors"
	"github.com/diegoperpetuo/perpetual-backend/models"
	"github.com/diegoperpetuo/perpetual-backend/services"
)

// commentStatusOverrides preserves the comment endpoints' public contract:
// not-found and permission failures report 400.
var commentStatusOverrides = map[apperrors.Kind]int{
	apperrors.KindNotFound:   http.StatusBadRequest,
	apperrors.KindPermission: http.StatusBadRequest,
}

type CommentController struct {
	commentService *services.CommentService
}

func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// GetComments is public: GET /api/comments?tmdbId=123&mediaType=movie
func (c *CommentController) GetComments(ctx *gin.Context) {
	tmdbIDParam := ctx.Query("tmdbId")
	mediaType := ctx.Query("mediaType")

	if tmdbIDParam == "" || mediaType == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "tmdbId and mediaType are required"})
		return
	}
	if mediaType != "movie" && mediaType != "tv" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": `mediaType must be "movie" or "tv"`})
		return
	}
	tmdbID, err := strconv.ParseInt(tmdbIDParam, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "tmdbId must be numeric"})
		return
	}

	comments, err := c.commentService.GetByMedia(ctx.Request.Context(), tmdbID, mediaType)
	if err != nil {
		respondError(ctx, err, "error fetching comments")
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

// GetUserComments is public: GET /api/comments/user/:userId
func (c *CommentController) GetUserComments(ctx *gin.Context) {
	comments, err := c.commentService.GetByUser(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		respondError(ctx, err, "error fetching user comments")
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

func (c *CommentController) Create(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	comment, err := c.commentService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		respondErrorWith(ctx, err, "error creating comment", commentStatusOverrides)
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

func (c *CommentController) Update(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req models.UpdateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	comment, err := c.commentService.Update(ctx.Request.Context(), ctx.Param("id"), userID, &req)
	if err != nil {
		respondErrorWith(ctx, err, "error updating comment", commentStatusOverrides)
		return
	}

	ctx.JSON(http.StatusOK, comment)
}

func (c *CommentController) Delete(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	if err := c.commentService.Delete(ctx.Request.Context(), ctx.Param("id"), userID); err != nil {
		respondErrorWith(ctx, err, "error deleting comment", commentStatusOverrides)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "comment deleted successfully"})
}
