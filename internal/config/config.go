package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL    string
	ServerPort    string
	SessionSecret string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "http://localhost:3000"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}

	return cfg
}
