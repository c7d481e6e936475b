package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_FillsEmptySettings(t *testing.T) {
	cfg := &Config{}

	ApplyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowOrigins)
	assert.Equal(t, 8*time.Hour, cfg.Cache.OrderTTL)
	assert.Equal(t, 10*time.Minute, cfg.Cache.UserPrefTTL)
	assert.Equal(t, time.Hour, cfg.Cache.UserGroupTTL)
	assert.Equal(t, 100000, cfg.Query.MaxResultSize)
	assert.Equal(t, 100, cfg.Query.BlockSize)
	assert.Equal(t, 2*time.Second, cfg.Query.SlowQueryThreshold)
	assert.Equal(t, "de", cfg.Query.Locale)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{}
	cfg.Query.BlockSize = 25
	cfg.Cache.OrderTTL = time.Minute
	cfg.Auth = &AuthConfig{BcryptCost: 4}

	ApplyDefaults(cfg)

	assert.Equal(t, 25, cfg.Query.BlockSize)
	assert.Equal(t, time.Minute, cfg.Cache.OrderTTL)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTTL)
}
