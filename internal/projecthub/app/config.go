package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/projecthub/internal/projecthub/domain"
	"github.com/aussiebroadwan/projecthub/pkg/mailx"
	"github.com/joho/godotenv"
)

type Config struct {
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Invitation expiry sweep interval, 0 disables (default: 0)

	DatabaseFile string // Path to SQLite database file (default: ./projecthub.db)
	PepperFile   string // Path to file containing pepper for password hashing (default: ./pepper)

	Auth AuthConfig
	Mail mailx.Config

	InviteTTL   time.Duration // Lifetime of a pending invitation (default: 168h)
	FrontendURL string        // Base URL of the web app, used in accept links
	CORSOrigins []string      // Allowed browser origins (default: http://localhost:3000)
}

// AuthConfig configures session tokens. Secret must be at least 32 bytes;
// in dev an empty secret is replaced with a random one at startup.
type AuthConfig struct {
	Secret   string
	Issuer   string
	TokenTTL time.Duration
}

// LoadConfig reads the environment once, after loading an optional .env
// file from the working directory.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 0),

		DatabaseFile: getEnvOrDefault("PROJECTHUB_DATABASE_FILE", "projecthub.db"),
		PepperFile:   getEnvOrDefault("PROJECTHUB_PEPPER_FILE", "pepper"),

		Auth: AuthConfig{
			Secret:   os.Getenv("AUTH_JWT_SECRET"),
			Issuer:   getEnvOrDefault("AUTH_ISSUER", "projecthub"),
			TokenTTL: getEnvDurationOrDefault("AUTH_TOKEN_TTL", 7*24*time.Hour),
		},

		Mail: mailx.Config{
			Driver:   getEnvOrDefault("MAIL_DRIVER", mailx.DriverLog),
			From:     getEnvOrDefault("MAIL_FROM", "noreply@projecthub.local"),
			FromName: getEnvOrDefault("MAIL_FROM_NAME", "Project Manager"),
			SMTP: mailx.SMTPConfig{
				Host:               os.Getenv("SMTP_HOST"),
				Port:               getEnvIntOrDefault("SMTP_PORT", 587),
				Username:           os.Getenv("SMTP_USERNAME"),
				Password:           os.Getenv("SMTP_PASSWORD"),
				InsecureSkipVerify: getEnvBoolOrDefault("SMTP_INSECURE_SKIP_VERIFY", false),
				Timeout:            getEnvDurationOrDefault("SMTP_TIMEOUT", 10*time.Second),
			},
			SES: mailx.SESConfig{
				Region:          os.Getenv("SES_REGION"),
				AccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
				SecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),
				SessionToken:    os.Getenv("SES_SESSION_TOKEN"),
			},
		},

		InviteTTL:   getEnvDurationOrDefault("INVITE_TTL", domain.DefaultInvitationTTL),
		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		CORSOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

// getEnvListOrDefault splits a comma separated value, dropping blanks.
func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
