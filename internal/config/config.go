package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	MailProviderSMTP     = "smtp"
	MailProviderSendGrid = "sendgrid"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort        string
	AppEnv         string
	AllowedOrigins []string // CORS allowed origins

	MailProvider    string // "smtp" | "sendgrid"
	MailFrom        string
	MailFromName    string
	SMTPHost        string
	SMTPPort        string
	SMTPUsername    string
	SMTPPassword    string
	SendGridAPIKey  string
	SendGridSandbox bool

	VerificationCodeTTL   time.Duration
	VerificationSweepSpec string // empty disables the background sweep
	SendRateLimitRPS      float64
	SendRateLimitBurst    int
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort:        getEnv("APP_PORT", "3000"),
		AppEnv:         getEnv("APP_ENV", "development"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),

		MailProvider:    strings.ToLower(getEnv("MAIL_PROVIDER", MailProviderSMTP)),
		MailFrom:        getEnv("MAIL_FROM", "noreply@example.com"),
		MailFromName:    getEnv("MAIL_FROM_NAME", "Loan Compare"),
		SMTPHost:        getEnv("SMTP_HOST", "localhost"),
		SMTPPort:        getEnv("SMTP_PORT", "1025"),
		SMTPUsername:    getEnv("SMTP_USERNAME", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		SendGridAPIKey:  getEnv("SENDGRID_API_KEY", ""),
		SendGridSandbox: getEnvBool("SENDGRID_SANDBOX", false),

		VerificationCodeTTL:   getEnvDuration("VERIFICATION_CODE_TTL", 10*time.Minute),
		VerificationSweepSpec: getEnv("VERIFICATION_SWEEP_SPEC", ""),
		SendRateLimitRPS:      getEnvFloat("SEND_RATE_LIMIT_RPS", 1),
		SendRateLimitBurst:    getEnvInt("SEND_RATE_LIMIT_BURST", 5),
	}
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
