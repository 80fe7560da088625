package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	keys := []string{
		"MONGO_URI", "MONGO_DB", "REDIS_URI", "HTTP_PORT",
		"CORS_ALLOWED_ORIGINS", "CORS_ALLOWED_METHODS", "CORS_ALLOWED_HEADERS",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}

	cfg := Load()

	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.MongoDB != "aiready" {
		t.Errorf("MongoDB = %q", cfg.MongoDB)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q", cfg.HTTPPort)
	}
	if cfg.CORSAllowedOrigins != "*" {
		t.Errorf("CORSAllowedOrigins = %q", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedMethods != "GET, POST, PUT, DELETE, OPTIONS" {
		t.Errorf("CORSAllowedMethods = %q", cfg.CORSAllowedMethods)
	}
	if cfg.CORSAllowedHeaders != "Content-Type, Authorization" {
		t.Errorf("CORSAllowedHeaders = %q", cfg.CORSAllowedHeaders)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com")

	cfg := Load()

	if cfg.HTTPPort != "9999" {
		t.Errorf("HTTPPort = %q, want 9999", cfg.HTTPPort)
	}
	if cfg.CORSAllowedOrigins != "https://app.example.com" {
		t.Errorf("CORSAllowedOrigins = %q", cfg.CORSAllowedOrigins)
	}
}
