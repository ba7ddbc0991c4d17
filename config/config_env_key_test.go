package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"dispatch": map[string]any{
			"backoffBase":    "30s",
			"gatewayTimeout": "10s",
			"rateLimits": map[string]any{
				"SOCIAL": 3,
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "DISPATCH_BACKOFFBASE", want: "dispatch.backoffBase"},
		{envKey: "DISPATCH_GATEWAYTIMEOUT", want: "dispatch.gatewayTimeout"},
		{envKey: "DISPATCH_RATELIMITS_SOCIAL", want: "dispatch.rateLimits.SOCIAL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, 3, cfg.Dispatch.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Dispatch.BackoffBase)
	assert.Equal(t, time.Hour, cfg.Dispatch.DedupeWindow)
	assert.Equal(t, 3, cfg.Dispatch.RateLimitFor("SOCIAL"))
	assert.Equal(t, 0, cfg.Dispatch.RateLimitFor("SYSTEM"))
	assert.True(t, cfg.Dispatch.ShouldRevokeInvalidTokens())
	assert.Equal(t, "@every 60s", cfg.Dispatch.BatchSchedule)
	assert.Equal(t, 3, cfg.Devices.MaxActive)
	assert.Nil(t, cfg.Firebase)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	disabled := false
	cfg := &Config{
		Dispatch: &DispatchConfig{
			MaxAttempts:         5,
			RateLimits:          map[string]int{"SOCIAL": 10},
			RevokeInvalidTokens: &disabled,
		},
		Firebase: &FirebaseConfig{SendRatePerSecond: 5},
	}
	cfg.applyDefaults()

	assert.Equal(t, 5, cfg.Dispatch.MaxAttempts)
	assert.Equal(t, 10, cfg.Dispatch.RateLimitFor("SOCIAL"))
	assert.False(t, cfg.Dispatch.ShouldRevokeInvalidTokens())
	assert.InDelta(t, 5.0, cfg.Firebase.SendRatePerSecond, 0.0001)
	assert.Equal(t, 10, cfg.Firebase.SendBurst)
}
