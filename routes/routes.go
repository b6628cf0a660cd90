package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/diegoperpetuo/perpetual-backend/auth"
	"github.com/diegoperpetuo/perpetual-backend/controllers"
	"github.com/diegoperpetuo/perpetual-backend/middleware"
)

// Controllers bundles everything Register needs to wire the route table.
type Controllers struct {
	Auth    *controllers.AuthController
	User    *controllers.UserController
	Movie   *controllers.MovieController
	Comment *controllers.CommentController
	TMDB    *controllers.TMDBController
}

// Register builds the full route table on a fresh engine. Tests use it with
// fake-backed services; main uses it with the real ones.
func Register(tokens *auth.TokenManager, log *logrus.Logger, c Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if log != nil {
		r.Use(middleware.RequestLogger(log))
	}
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	gate := middleware.Auth(tokens)

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "ready to sail"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", c.Auth.Register)
		authGroup.POST("/login", c.Auth.Login)
		authGroup.GET("/protected", gate, c.Auth.Protected)
	}

	movies := r.Group("/movies", gate)
	{
		movies.POST("", c.Movie.Create)
		movies.GET("", c.Movie.GetAll)
		movies.GET("/:id", c.Movie.GetByID)
		movies.PUT("/:id", c.Movie.Update)
		movies.PATCH("/:id", c.Movie.PartialUpdate)
		movies.DELETE("/:id", c.Movie.Delete)
	}

	api := r.Group("/api")
	{
		user := api.Group("/user", gate)
		{
			user.POST("/movies", c.User.AddOrUpdateMovie)
			user.GET("/movies", c.User.GetMovies)
			user.DELETE("/movies/:tmdbId", c.User.RemoveMovie)
			user.GET("/profile", c.User.GetProfile)
		}

		comments := api.Group("/comments")
		{
			comments.GET("", c.Comment.GetComments)
			comments.GET("/user/:userId", c.Comment.GetUserComments)
			comments.POST("", gate, c.Comment.Create)
			comments.PUT("/:id", gate, c.Comment.Update)
			comments.DELETE("/:id", gate, c.Comment.Delete)
		}

		tmdb := api.Group("/tmdb")
		{
			tmdb.GET("/movies/popular", c.TMDB.GetPopularMovies)
			tmdb.GET("/movies/now-playing", c.TMDB.GetNowPlayingMovies)
			tmdb.GET("/movies/trending", c.TMDB.GetTrendingMovies)
			tmdb.GET("/movie/:id", c.TMDB.GetMovieDetails)
			tmdb.GET("/tv/popular", c.TMDB.GetPopularTVShows)
			tmdb.GET("/tv/:id", c.TMDB.GetTVShowDetails)
			tmdb.GET("/genres", c.TMDB.GetAllGenres)
			tmdb.GET("/search/multi", c.TMDB.SearchMulti)
			tmdb.GET("/search/movie", c.TMDB.SearchMovies)
			tmdb.GET("/search/tv", c.TMDB.SearchTVShows)
			tmdb.POST("/multiple", c.TMDB.GetMultipleItems)
			tmdb.GET("/:mediaType/:id", c.TMDB.GetItemDetails)
		}
	}

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r
}
