package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT string

	DB_HOST    string
	DB_USER    string
	DB_PASS    string
	DB_NAME    string
	DB_SSLMODE string

	JWT_SECRET        string
	JWT_EXPIRES_HOURS string

	STRIPE_SECRET string

	SMTP_HOST string
	SMTP_PORT string
	SMTP_USER string
	SMTP_PASS string

	SENDGRID_API_KEY string

	TWILIO_ACCOUNT_SID string
	TWILIO_AUTH_TOKEN  string
	TWILIO_FROM        string

	PUBLIC_BASE_URL  string
	INVOICE_DIR      string
	INVOICE_DELIVERY string

	ORIGIN_API_URL string
	CORS_ORIGIN    string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "3001")

	DB_HOST = getEnv("DB_HOST", "localhost")
	DB_USER = getEnv("DB_USER", "postgres")
	DB_PASS = getEnv("DB_PASS", "postgres")
	DB_NAME = getEnv("DB_NAME", "parqueo")
	DB_SSLMODE = getEnv("DB_SSLMODE", "disable")

	// No JWT_SECRET disables protected routes instead of crashing the process.
	JWT_SECRET = getEnv("JWT_SECRET", "")
	JWT_EXPIRES_HOURS = getEnv("JWT_EXPIRES_HOURS", "168")

	// No STRIPE_SECRET selects the simulated charge provider.
	STRIPE_SECRET = getEnv("STRIPE_SECRET", "")

	SMTP_HOST = getEnv("SMTP_HOST", "")
	SMTP_PORT = getEnv("SMTP_PORT", "587")
	SMTP_USER = getEnv("SMTP_USER", "")
	SMTP_PASS = getEnv("SMTP_PASS", "")

	SENDGRID_API_KEY = getEnv("SENDGRID_API_KEY", "")

	TWILIO_ACCOUNT_SID = getEnv("TWILIO_ACCOUNT_SID", "")
	TWILIO_AUTH_TOKEN = getEnv("TWILIO_AUTH_TOKEN", "")
	TWILIO_FROM = getEnv("TWILIO_FROM", "")

	PUBLIC_BASE_URL = getEnv("PUBLIC_BASE_URL", "http://localhost:3001")
	INVOICE_DIR = getEnv("INVOICE_DIR", "invoices")
	INVOICE_DELIVERY = getEnv("INVOICE_DELIVERY", "attach")

	ORIGIN_API_URL = getEnv("ORIGIN_API_URL", "")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
