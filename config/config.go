package config

import (
	"os"
	"strings"
)

// Config carries every setting the server needs. It is read from the
// environment exactly once in main and passed down explicitly; nothing
// below main reads os.Getenv.
type Config struct {
	Port        string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	AdminPassword string
	SessionSecret string

	TurnstileSecret string

	ResendAPIKey      string
	ContactFromEmail  string
	ContactRecipients []string

	SheetsWebhookURL string

	UploadsDir    string
	UploadsPublic string
	BackupDir     string
}

func Load() Config {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      os.Getenv("DB_PORT"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),

		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SessionSecret: os.Getenv("SESSION_SECRET"),

		TurnstileSecret: os.Getenv("TURNSTILE_SECRET_KEY"),

		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		ContactFromEmail: getEnv("CONTACT_FROM_EMAIL", "noreply@ibequipment.com"),

		SheetsWebhookURL: os.Getenv("GOOGLE_SCRIPT_URL"),

		UploadsDir:    getEnv("UPLOADS_DIR", "/var/www/ibewebsite/uploads"),
		UploadsPublic: getEnv("UPLOADS_PUBLIC_PATH", "/uploads"),
		BackupDir:     getEnv("BACKUP_DIR", "/var/www/ibewebsite/backup/uploads"),
	}

	if raw := os.Getenv("CONTACT_NOTIFY_EMAILS"); raw != "" {
		for _, addr := range strings.Split(raw, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				cfg.ContactRecipients = append(cfg.ContactRecipients, addr)
			}
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
