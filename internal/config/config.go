package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Server ServerConfig `env:",prefix=SERVER_"`
	Mongo  MongoConfig  `env:",prefix=MONGO_"`
	JWT    JWTConfig    `env:",prefix=JWT_"`
	Gemini GeminiConfig `env:",prefix=GEMINI_"`
	Auth   AuthConfig   `env:",prefix=AUTH_"`
	CORS   CORSConfig   `env:",prefix=CORS_"`
	Env    string       `env:"ENV,default=development"`
}

type ServerConfig struct {
	Port         string   `env:"PORT,default=8080"`
	Host         string   `env:"HOST,default=0.0.0.0"`
	ReadTimeout  Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout Duration `env:"WRITE_TIMEOUT,default=15s"`
}

type MongoConfig struct {
	URI      string `env:"URI,default=mongodb://localhost:27017"`
	Database string `env:"DATABASE,default=tripcraft"`
}

type JWTConfig struct {
	Secret      string   `env:"SECRET,required"`
	TokenExpiry Duration `env:"TOKEN_EXPIRY,default=7d"`
}

// GeminiConfig holds the external text-generation endpoint and key, read once
// at startup and immutable afterwards.
type GeminiConfig struct {
	APIURL string `env:"API_URL,default=https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"`
	APIKey string `env:"API_KEY"`
}

type AuthConfig struct {
	BCryptCost int `env:"BCRYPT_COST,default=12"`
	// SecureCookie controls the Secure flag on the jwt cookie. Off by
	// default so local development over plain HTTP keeps working.
	SecureCookie bool `env:"SECURE_COOKIE,default=false"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS,default=http://localhost:3000"`
	AllowedMethods []string `env:"ALLOWED_METHODS,default=GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders []string `env:"ALLOWED_HEADERS,default=Content-Type,Authorization"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var config Config

	if err := envconfig.Process(ctx, &config); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Validate JWT secret length
	if len(config.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	return &config, nil
}

// LoadWithDefaults loads configuration with default context
func LoadWithDefaults() (*Config, error) {
	return Load(context.Background())
}
