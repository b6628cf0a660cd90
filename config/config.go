package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every process-wide setting. It is loaded once in main and
// passed into constructors; nothing reads the environment after startup.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Env         string `envconfig:"GO_ENV" default:"development"`
	MongoURI    string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	DBName      string `envconfig:"DB_NAME" default:"perpetual"`
	JWTSecret   string `envconfig:"JWT_SECRET"`
	BcryptCost  int    `envconfig:"BCRYPT_COST" default:"10"`
	TMDBAPIKey  string `envconfig:"TMDB_API_KEY"`
	TMDBBaseURL string `envconfig:"TMDB_BASE_URL" default:"https://api.themoviedb.org/3"`
}

func Load() (Config, error) {
	// A missing .env file is fine in production; real env vars win either way.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET must be set")
	}
	return cfg, nil
}
