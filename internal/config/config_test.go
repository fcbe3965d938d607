package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, values map[string]string) {
	t.Helper()
	for _, key := range []string{"CHANNEL_ID", "BOT_TOKEN", "LEETCODE_BASE_URL", "REQUEST_TIMEOUT", "START_SCHEDULE", "LOG_LEVEL"} {
		t.Setenv(key, values[key])
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, map[string]string{
		"CHANNEL_ID": "1140000000000000000",
		"BOT_TOKEN":  "secret",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "1140000000000000000", cfg.ChannelID)
	assert.Equal(t, "secret", cfg.BotToken)
	assert.Equal(t, "https://leetcode.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.StartSchedule)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"CHANNEL_ID":        "42",
		"BOT_TOKEN":         "secret",
		"LEETCODE_BASE_URL": "http://localhost:8080/",
		"REQUEST_TIMEOUT":   "5s",
		"START_SCHEDULE":    "5 0 * * *",
		"LOG_LEVEL":         "DEBUG",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "5 0 * * *", cfg.StartSchedule)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	setEnv(t, map[string]string{
		"CHANNEL_ID":      "42",
		"BOT_TOKEN":       "secret",
		"REQUEST_TIMEOUT": "-3s",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		errMsg string
	}{
		{
			name:   "missing everything",
			env:    map[string]string{},
			errMsg: "CHANNEL_ID is required; BOT_TOKEN is required",
		},
		{
			name:   "non numeric channel",
			env:    map[string]string{"CHANNEL_ID": "general", "BOT_TOKEN": "secret"},
			errMsg: "CHANNEL_ID must be a numeric channel id",
		},
		{
			name:   "bad base url",
			env:    map[string]string{"CHANNEL_ID": "42", "BOT_TOKEN": "secret", "LEETCODE_BASE_URL": "leetcode"},
			errMsg: "LEETCODE_BASE_URL must be an absolute URL",
		},
		{
			name:   "bad schedule",
			env:    map[string]string{"CHANNEL_ID": "42", "BOT_TOKEN": "secret", "START_SCHEDULE": "every morning"},
			errMsg: "START_SCHEDULE must be a cron expression",
		},
		{
			name:   "bad log level",
			env:    map[string]string{"CHANNEL_ID": "42", "BOT_TOKEN": "secret", "LOG_LEVEL": "loud"},
			errMsg: "LOG_LEVEL must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)

			cfg, err := Load()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
