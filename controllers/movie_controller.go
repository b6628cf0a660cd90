package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diegoperpetuo/perpetual-backend/models"
	"github.com/diegoperpetuo/perpetual-backend/services"
)

type MovieController struct {
	movieService *services.MovieService
}

func NewMovieController(movieService *services.MovieService) *MovieController {
	return &MovieController{movieService: movieService}
}

func (c *MovieController) Create(ctx *gin.Context) {
	owner, ok := callerID(ctx)
	if !ok {
		return
	}

	var req models.CreateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": bindMessage(err)})
		return
	}

	movie, err := c.movieService.Create(ctx.Request.Context(), owner, &req)
	if err != nil {
		respondError(ctx, err, "error creating movie")
		return
	}

	ctx.JSON(http.StatusCreated, movie)
}

func (c *MovieController) GetAll(ctx *gin.Context) {
	owner, ok := callerID(ctx)
	if !ok {
		return
	}

	movies, err := c.movieService.GetAll(ctx.Request.Context(), owner)
	if err != nil {
		respondError(ctx, err, "error fetching movies")
		return
	}

	ctx.JSON(http.StatusOK, movies)
}

func (c *MovieController) GetByID(ctx *gin.Context) {
	owner, ok := callerID(ctx)
	if !ok {
		return
	}

	movie, err := c.movieService.GetByID(ctx.Request.Context(), ctx.Param("id"), owner)
	if err != nil {
		respondError(ctx, err, "error fetching movie")
		return
	}

	ctx.JSON(http.StatusOK, movie)
}

func (c *MovieController) Update(ctx *gin.Context) {
	owner, ok := callerID(ctx)
	if !ok {
		return
	}

	var req models.UpdateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": bindMessage(err)})
		return
	}

	movie, err := c.movieService.Update(ctx.Request.Context(), ctx.Param("id"), owner, &req)
	if err != nil {
		respondError(ctx, err, "error updating movie")
		return
	}

	ctx.JSON(http.StatusOK, movie)
}

func (c *MovieController) PartialUpdate(ctx *gin.Context) {
	owner, ok := callerID(ctx)
	if !ok {
		return
	}

	var req models.PatchMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": bindMessage(err)})
		return
	}

	movie, err := c.movieService.PartialUpdate(ctx.Request.Context(), ctx.Param("id"), owner, &req)
	if err != nil {
		respondError(ctx, err, "error updating movie")
		return
	}

	ctx.JSON(http.StatusOK, movie)
}

func (c *MovieController) Delete(ctx *gin.Context) {
	owner, ok := callerID(ctx)
	if !ok {
		return
	}

	if err := c.movieService.Delete(ctx.Request.Context(), ctx.Param("id"), owner); err != nil {
		respondError(ctx, err, "error deleting movie")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "movie deleted successfully"})
}
