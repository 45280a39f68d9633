package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courtline/CourtBookingService/internal/domain"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	applyDefaults(&cfg)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, domain.DefaultSweepIntervalSeconds, cfg.Scheduler.SweepIntervalSeconds)
	assert.Equal(t, domain.DefaultEndingNoticeMinutes, cfg.Scheduler.EndingNoticeMinutes)
}

func TestValidate(t *testing.T) {
	cfg := Config{}
	cfg.Database.Host = "localhost"
	cfg.Database.User = "app"
	cfg.Database.DBName = "app"
	cfg.Auth.JWTSecret = "secret"

	assert.NoError(t, validate(&cfg))

	noAuth := cfg
	noAuth.Auth.JWTSecret = ""
	assert.Error(t, validate(&noAuth))

	noAuth.Auth.AllowHeaderIdentity = true
	assert.NoError(t, validate(&noAuth))

	redisOn := cfg
	redisOn.Redis.Enabled = true
	assert.Error(t, validate(&redisOn))
}
