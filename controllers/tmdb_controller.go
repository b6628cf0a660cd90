package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/diegoperpetuo/perpetual-backend/models"
	"github.com/diegoperpetuo/perpetual-backend/services"
)

type TMDBController struct {
	tmdbService *services.TMDBService
}

func NewTMDBController(tmdbService *services.TMDBService) *TMDBController {
	return &TMDBController{tmdbService: tmdbService}
}

func (c *TMDBController) GetPopularMovies(ctx *gin.Context) {
	c.relay(ctx)(c.tmdbService.PopularMovies(ctx.Request.Context(), pageQuery(ctx)))
}

func (c *TMDBController) GetNowPlayingMovies(ctx *gin.Context) {
	c.relay(ctx)(c.tmdbService.NowPlayingMovies(ctx.Request.Context(), pageQuery(ctx)))
}

func (c *TMDBController) GetTrendingMovies(ctx *gin.Context) {
	c.relay(ctx)(c.tmdbService.TrendingMovies(ctx.Request.Context(), ctx.DefaultQuery("time_window", "day")))
}

func (c *TMDBController) GetPopularTVShows(ctx *gin.Context) {
	c.relay(ctx)(c.tmdbService.PopularTVShows(ctx.Request.Context(), pageQuery(ctx)))
}

func (c *TMDBController) GetMovieDetails(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	c.relay(ctx)(c.tmdbService.MovieDetails(ctx.Request.Context(), id, ctx.Query("append_to_response")))
}

func (c *TMDBController) GetTVShowDetails(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	c.relay(ctx)(c.tmdbService.TVShowDetails(ctx.Request.Context(), id, ctx.Query("append_to_response")))
}

func (c *TMDBController) GetItemDetails(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	c.relay(ctx)(c.tmdbService.ItemDetails(ctx.Request.Context(), ctx.Param("mediaType"), id))
}

func (c *TMDBController) GetAllGenres(ctx *gin.Context) {
	genres, err := c.tmdbService.AllGenres(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "error fetching genres")
		return
	}
	ctx.JSON(http.StatusOK, genres)
}

func (c *TMDBController) SearchMulti(ctx *gin.Context) {
	c.relay(ctx)(c.tmdbService.SearchMulti(ctx.Request.Context(), ctx.Query("query"), pageQuery(ctx)))
}

func (c *TMDBController) SearchMovies(ctx *gin.Context) {
	c.relay(ctx)(c.tmdbService.SearchMovies(ctx.Request.Context(), ctx.Query("query"), pageQuery(ctx)))
}

func (c *TMDBController) SearchTVShows(ctx *gin.Context) {
	c.relay(ctx)(c.tmdbService.SearchTVShows(ctx.Request.Context(), ctx.Query("query"), pageQuery(ctx)))
}

func (c *TMDBController) GetMultipleItems(ctx *gin.Context) {
	var req models.MultipleItemsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": bindMessage(err)})
		return
	}

	items, err := c.tmdbService.MultipleItems(ctx.Request.Context(), req.Items)
	if err != nil {
		respondError(ctx, err, "error fetching items")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"items": items})
}

// relay writes a raw TMDB payload through unchanged.
func (c *TMDBController) relay(ctx *gin.Context) func(json.RawMessage, error) {
	return func(raw json.RawMessage, err error) {
		if err != nil {
			respondError(ctx, err, "error fetching tmdb data")
			return
		}
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", raw)
	}
}

func pageQuery(ctx *gin.Context) int {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func idParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id must be numeric"})
		return 0, false
	}
	return id, true
}
