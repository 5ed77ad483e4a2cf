package config

import "os"

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port        string
	DatabaseURL string
	SQLitePath  string
}

func Load() *Config {
	return &Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: getenv("DATABASE_URL", ""),
		SQLitePath:  getenv("SQLITE_PATH", "blog.db"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
