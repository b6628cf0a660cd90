package main

import (
	"context"

	"github.com/diegoperpetuo/perpetual-backend/auth"
	"github.com/diegoperpetuo/perpetual-backend/config"
	"github.com/diegoperpetuo/perpetual-backend/controllers"
	"github.com/diegoperpetuo/perpetual-backend/data_access"
	"github.com/diegoperpetuo/perpetual-backend/logging"
	"github.com/diegoperpetuo/perpetual-backend/routes"
	"github.com/diegoperpetuo/perpetual-backend/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("development").Fatalf("failed to load configuration: %v", err)
	}

	log := logging.New(cfg.Env)
	log.WithField("env", cfg.Env).Info("configuration loaded")

	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer mongodb.Close(context.Background())

	userRepo := data_access.NewUserRepository(mongodb)
	movieRepo := data_access.NewMovieRepository(mongodb)
	commentRepo := data_access.NewCommentRepository(mongodb)
	tmdbClient := data_access.NewTMDBClient(cfg.TMDBAPIKey, cfg.TMDBBaseURL)

	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	authService := services.NewAuthService(userRepo, hasher, tokens)
	userService := services.NewUserService(userRepo)
	movieService := services.NewMovieService(movieRepo)
	commentService := services.NewCommentService(commentRepo, userRepo)
	tmdbService := services.NewTMDBService(tmdbClient)

	router := routes.Register(tokens, log, routes.Controllers{
		Auth:    controllers.NewAuthController(authService),
		User:    controllers.NewUserController(userService),
		Movie:   controllers.NewMovieController(movieService),
		Comment: controllers.NewCommentController(commentService),
		TMDB:    controllers.NewTMDBController(tmdbService),
	})

	log.Infof("server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
