package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"cache": map[string]any{
			"orderTTL":    "8h",
			"userPrefTTL": "10m",
		},
		"query": map[string]any{
			"blockSize":          100,
			"slowQueryThreshold": "2s",
		},
		"jobs": map[string]any{
			"userPrefFlushInterval": "10m",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"worker": map[string]any{
			"audience": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CACHE_ORDERTTL", want: "cache.orderTTL"},
		{envKey: "CACHE_USERPREFTTL", want: "cache.userPrefTTL"},
		{envKey: "QUERY_BLOCKSIZE", want: "query.blockSize"},
		{envKey: "QUERY_SLOWQUERYTHRESHOLD", want: "query.slowQueryThreshold"},
		{envKey: "JOBS_USERPREFFLUSHINTERVAL", want: "jobs.userPrefFlushInterval"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "WORKER_AUDIENCE", want: "worker.audience"},
		{envKey: "HISTORY_PUBLISHEVENTS", want: "history.publishevents"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_OverridesProjectSettings(t *testing.T) {
	t.Setenv("CACHE_ORDERTTL", "30m")
	t.Setenv("QUERY_BLOCKSIZE", "25")
	t.Setenv("WORKER_AUDIENCE", "https://push.projectforge.example")

	cfg, err := LoadWithEnv[Config]("config", ".")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Cache.OrderTTL)
	assert.Equal(t, 25, cfg.Query.BlockSize)
	assert.Equal(t, "https://push.projectforge.example", cfg.Worker.Audience)
	assert.Equal(t, 10*time.Minute, cfg.Cache.UserPrefTTL)
}
