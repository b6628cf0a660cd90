package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/diegoperpetuo/perpetual-backend/models"
	"github.com/diegoperpetuo/perpetual-backend/services"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

func (c *UserController) AddOrUpdateMovie(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	var req models.WatchItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	entry, err := c.userService.AddOrUpdateMovie(ctx.Request.Context(), userID, &req)
	if err != nil {
		respondError(ctx, err, "error processing watch list request")
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

func (c *UserController) RemoveMovie(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	tmdbID, err := strconv.ParseInt(ctx.Param("tmdbId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "tmdbId must be numeric"})
		return
	}

	list, err := c.userService.RemoveMovie(ctx.Request.Context(), userID, tmdbID)
	if err != nil {
		respondError(ctx, err, "error removing movie")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":   "movie removed successfully",
		"movieList": list,
	})
}

func (c *UserController) GetMovies(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	list, err := c.userService.GetMovies(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err, "error fetching movies")
		return
	}

	ctx.JSON(http.StatusOK, list)
}

func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := callerID(ctx)
	if !ok {
		return
	}

	profile, err := c.userService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err, "error fetching profile")
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
