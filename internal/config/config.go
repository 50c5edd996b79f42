package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	BackendURL    string
	StateDir      string
	SessionSecret string
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, using environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:9000"
	}

	stateDir := os.Getenv("STATE_DIR")
	if stateDir == "" {
		stateDir = "state"
	}

	return Config{
		Port:          port,
		BackendURL:    backendURL,
		StateDir:      stateDir,
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}
}
