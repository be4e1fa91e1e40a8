package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.SetDefault("FIXED_CONTRIBUTIONS", defaultFixedContributions)
	v.SetDefault("SAFE_LOAD_THRESHOLD", defaultSafeLoadThreshold)
	v.SetDefault("ALLOWED_ORIGINS", "http://a.example, ,http://b.example")

	cfg := fromViper(v)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, defaultJWTIssuer, cfg.JWTIssuer)
	assert.Equal(t, int64(defaultMaxUploadBytes), cfg.MaxUploadBytes)
	assert.Equal(t, defaultImportRateLimit, cfg.ImportRateLimit)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.True(t, decimal.NewFromInt(53658).Equal(cfg.FixedContributions))
	assert.True(t, decimal.NewFromInt(6).Equal(cfg.SafeLoadThreshold))
}

func TestFromViper_InvalidDecimalFallsBack(t *testing.T) {
	v := viper.New()
	v.Set("FIXED_CONTRIBUTIONS", "lots")
	v.Set("SAFE_LOAD_THRESHOLD", "-3")

	cfg := fromViper(v)

	assert.True(t, decimal.NewFromInt(53658).Equal(cfg.FixedContributions))
	assert.True(t, decimal.NewFromInt(6).Equal(cfg.SafeLoadThreshold))
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "9090")
	v.Set("PGSQL_URL", "postgres://localhost/tax")
	v.Set("FIXED_CONTRIBUTIONS", "49500.50")
	v.Set("LOG_LEVEL", "DEBUG")
	v.Set("MAX_UPLOAD_BYTES", 1024)

	cfg := fromViper(v)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://localhost/tax", cfg.DatabaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.True(t, decimal.RequireFromString("49500.50").Equal(cfg.FixedContributions))
}
