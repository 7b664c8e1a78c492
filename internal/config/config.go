package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	SupabaseURL     string
	SupabaseAnonKey string
	JWTSecret       string
	JWTAlgorithm    string
	SessionTTL      time.Duration
	StoreTimeout    time.Duration
	FrontendOrigin  string
	TemplateDir     string
	StaticDir       string
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, falling back to environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	algorithm := os.Getenv("JWT_ALGORITHM")
	if algorithm == "" {
		algorithm = "HS256"
	}

	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}

	return Config{
		Port:            port,
		SupabaseURL:     os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey: os.Getenv("SUPABASE_ANON_KEY"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		JWTAlgorithm:    algorithm,
		SessionTTL:      time.Duration(envInt("SESSION_TTL_MINUTES", 480)) * time.Minute,
		StoreTimeout:    time.Duration(envInt("STORE_TIMEOUT_SECONDS", 20)) * time.Second,
		FrontendOrigin:  origin,
		TemplateDir:     envDefault("TEMPLATE_DIR", "static/html"),
		StaticDir:       envDefault("STATIC_DIR", "static"),
	}
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
