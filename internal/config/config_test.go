package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MAIL_PROVIDER", "")
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("MAIL_FROM", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "resend", cfg.Mail.Provider)
	assert.Equal(t, "", cfg.Mail.ResendAPIKey)
	assert.Equal(t, "Lost & Found <notifications@lostfound.app>", cfg.Mail.Sender)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.CORS.AllowCredentials)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/lostfound")
	t.Setenv("MAIL_PROVIDER", "ses")
	t.Setenv("AWS_REGION", "eu-central-1")
	t.Setenv("MAIL_FROM", "Desk <desk@example.org>")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://app:secret@db:5432/lostfound", cfg.DatabaseURL)
	assert.Equal(t, "ses", cfg.Mail.Provider)
	assert.Equal(t, "eu-central-1", cfg.Mail.AWSRegion)
	assert.Equal(t, "Desk <desk@example.org>", cfg.Mail.Sender)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.CORS.AllowCredentials)
}
