package config

import "os"

// Config holds server configuration sourced from the environment
type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string

	CORSAllowedOrigins string
	CORSAllowedMethods string
	CORSAllowedHeaders string
}

// Load reads configuration from environment variables with local defaults
func Load() *Config {
	return &Config{
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "aiready"),
		RedisAddr: getEnv("REDIS_URI", "localhost:6379"),
		HTTPPort:  getEnv("HTTP_PORT", "8080"),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		CORSAllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET, POST, PUT, DELETE, OPTIONS"),
		CORSAllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type, Authorization"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
