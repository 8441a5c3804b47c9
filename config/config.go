package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App holds all environment-driven settings.
type App struct {
	Port        string `envconfig:"PORT" default:"8000"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// SMTP
	SMTPHost  string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort  int    `envconfig:"SMTP_PORT" default:"587"`
	EmailUser string `envconfig:"EMAIL_USER"`
	EmailPass string `envconfig:"EMAIL_PASS"`

	// OTP
	RedisAddr string `envconfig:"REDIS_ADDR"`
	OTPTTLMin int    `envconfig:"OTP_TTL_MIN" default:"10"`

	// Auth
	JWTSecret string `envconfig:"JWT_SECRET" default:"solid_secret_key"`

	// Verification document storage
	UploadDir string `envconfig:"UPLOAD_DIR" default:"uploads/verification_documents"`

	// Admin bootstrap
	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@betterspace.local"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
}

// C is the process-wide configuration, populated by Load.
var C App

func Load() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	return envconfig.Process("", &C)
}
