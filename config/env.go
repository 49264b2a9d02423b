package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv                string
	Port                  string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSSLMode             string
	JWTSecret             string
	JWTExpiry             string
	StripeSecretKey       string
	Currency              string
	CheckoutTimeout       time.Duration
	CheckoutVerifySession bool
	ProductsPerPage       int
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	checkoutTimeout, err := time.ParseDuration(getEnv("CHECKOUT_TIMEOUT", "10s"))
	if err != nil {
		checkoutTimeout = 10 * time.Second
	}

	AppConfig = &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		Port:                  getEnv("APP_PORT", getEnv("PORT", "8080")),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnv("DB_PORT", "5432"),
		DBUser:                getEnv("DB_USER", "postgres"),
		DBPassword:            getEnv("DB_PASSWORD", "postgres"),
		DBName:                getEnv("DB_NAME", "online_shop"),
		DBSSLMode:             getEnv("DB_SSLMODE", "disable"),
		JWTSecret:             getEnv("JWT_SECRET", "secret"),
		JWTExpiry:             getEnv("JWT_EXPIRY", "24h"),
		StripeSecretKey:       getEnv("STRIPE_SECRET_KEY", ""),
		Currency:              getEnv("CURRENCY", "usd"),
		CheckoutTimeout:       checkoutTimeout,
		CheckoutVerifySession: getEnv("CHECKOUT_VERIFY_SESSION", "false") == "true",
		ProductsPerPage:       6,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
