package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_PORT", "MAIL_PROVIDER", "VERIFICATION_CODE_TTL", "VERIFICATION_SWEEP_SPEC", "SENDGRID_SANDBOX"} {
		t.Setenv(k, "")
	}
	cfg := Load()

	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, MailProviderSMTP, cfg.MailProvider)
	assert.Equal(t, 10*time.Minute, cfg.VerificationCodeTTL)
	assert.Empty(t, cfg.VerificationSweepSpec)
	assert.False(t, cfg.SendGridSandbox)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "Production")
	t.Setenv("MAIL_PROVIDER", "SendGrid")
	t.Setenv("VERIFICATION_CODE_TTL", "90s")
	t.Setenv("VERIFICATION_SWEEP_SPEC", "@every 5m")
	t.Setenv("SENDGRID_SANDBOX", "true")
	t.Setenv("SEND_RATE_LIMIT_BURST", "3")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, MailProviderSendGrid, cfg.MailProvider)
	assert.Equal(t, 90*time.Second, cfg.VerificationCodeTTL)
	assert.Equal(t, "@every 5m", cfg.VerificationSweepSpec)
	assert.True(t, cfg.SendGridSandbox)
	assert.Equal(t, 3, cfg.SendRateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("VERIFICATION_CODE_TTL", "-5m")
	t.Setenv("SEND_RATE_LIMIT_RPS", "fast")
	t.Setenv("SENDGRID_SANDBOX", "maybe")
	cfg := Load()

	assert.Equal(t, 10*time.Minute, cfg.VerificationCodeTTL)
	assert.Equal(t, 1.0, cfg.SendRateLimitRPS)
	assert.False(t, cfg.SendGridSandbox)
}
