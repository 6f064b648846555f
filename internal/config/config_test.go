package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-that-is-at-least-32-characters-long")
	defer os.Unsetenv("JWT_SECRET")

	ctx := context.Background()
	cfg, err := Load(ctx)
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	// Test default values
	if cfg.Server.Port != "8080" {
		t.Errorf("Expected Server.Port to be '8080', got '%s'", cfg.Server.Port)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Expected Server.Host to be '0.0.0.0', got '%s'", cfg.Server.Host)
	}

	if cfg.Server.ReadTimeout.Duration != 15*time.Second {
		t.Errorf("Expected Server.ReadTimeout to be 15s, got %v", cfg.Server.ReadTimeout.Duration)
	}

	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("Expected Mongo.URI to be 'mongodb://localhost:27017', got '%s'", cfg.Mongo.URI)
	}

	if cfg.Mongo.Database != "tripcraft" {
		t.Errorf("Expected Mongo.Database to be 'tripcraft', got '%s'", cfg.Mongo.Database)
	}

	if cfg.JWT.TokenExpiry.Duration != 7*24*time.Hour {
		t.Errorf("Expected JWT.TokenExpiry to be 7d, got %v", cfg.JWT.TokenExpiry.Duration)
	}

	if cfg.Auth.BCryptCost != 12 {
		t.Errorf("Expected Auth.BCryptCost to be 12, got %d", cfg.Auth.BCryptCost)
	}

	if cfg.Auth.SecureCookie {
		t.Error("Expected Auth.SecureCookie to default to false")
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be 'development', got '%s'", cfg.Env)
	}

	// Test CORS defaults
	if len(cfg.CORS.AllowedOrigins) == 0 {
		t.Error("Expected CORS.AllowedOrigins to have at least one value")
	}

	if len(cfg.CORS.AllowedMethods) == 0 {
		t.Error("Expected CORS.AllowedMethods to have at least one value")
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-that-is-at-least-32-characters-long")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("SERVER_HOST", "127.0.0.1")
	os.Setenv("MONGO_URI", "mongodb://mongo.example.com:27017")
	os.Setenv("JWT_TOKEN_EXPIRY", "12h")
	os.Setenv("ENV", "production")
	defer func() {
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("SERVER_HOST")
		os.Unsetenv("MONGO_URI")
		os.Unsetenv("JWT_TOKEN_EXPIRY")
		os.Unsetenv("ENV")
	}()

	ctx := context.Background()
	cfg, err := Load(ctx)
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected Server.Port to be '9090', got '%s'", cfg.Server.Port)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Expected Server.Host to be '127.0.0.1', got '%s'", cfg.Server.Host)
	}

	if cfg.Mongo.URI != "mongodb://mongo.example.com:27017" {
		t.Errorf("Expected Mongo.URI to be 'mongodb://mongo.example.com:27017', got '%s'", cfg.Mongo.URI)
	}

	if cfg.JWT.TokenExpiry.Duration != 12*time.Hour {
		t.Errorf("Expected JWT.TokenExpiry to be 12h, got %v", cfg.JWT.TokenExpiry.Duration)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be 'production', got '%s'", cfg.Env)
	}
}

func TestLoadWithoutJWTSecret(t *testing.T) {
	os.Unsetenv("JWT_SECRET")

	ctx := context.Background()
	_, err := Load(ctx)
	if err == nil {
		t.Error("Expected error when JWT_SECRET is not set")
	}
}

func TestLoadWithShortJWTSecret(t *testing.T) {
	os.Setenv("JWT_SECRET", "short")
	defer os.Unsetenv("JWT_SECRET")

	ctx := context.Background()
	_, err := Load(ctx)
	if err == nil {
		t.Error("Expected error when JWT_SECRET is too short")
	}
}

func TestDurationDecodeDays(t *testing.T) {
	var d Duration
	if err := d.EnvDecode(context.Background(), "7d"); err != nil {
		t.Fatalf("Failed to decode '7d': %v", err)
	}
	if d.Duration != 7*24*time.Hour {
		t.Errorf("Expected 7d to decode to 168h, got %v", d.Duration)
	}

	if err := d.EnvDecode(context.Background(), "90m"); err != nil {
		t.Fatalf("Failed to decode '90m': %v", err)
	}
	if d.Duration != 90*time.Minute {
		t.Errorf("Expected 90m to decode to 1h30m, got %v", d.Duration)
	}

	if err := d.EnvDecode(context.Background(), "xd"); err == nil {
		t.Error("Expected error for non-numeric day count")
	}
}
