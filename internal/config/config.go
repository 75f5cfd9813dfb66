package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	Port          string
	Env           string
	OpenAIKey     string
	OpenAIBaseURL string
	LLMModel      string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          os.Getenv("PORT"),
		Env:           os.Getenv("ENV"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		LLMModel:      os.Getenv("LLM_MODEL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = "gpt-4o"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "kouame"
	}

	return cfg
}
