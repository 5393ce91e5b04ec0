// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Staffly Inc.

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_EMPLOYER_ID": "42",

		"ADAPTER_ADDRESS":         "https://api.staffly.test",
		"ADAPTER_REQUEST_TIMEOUT": "15s",
		"ADAPTER_PROBE_TIMEOUT":   "5s",

		// Storage has a nested prefix: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/var/lib/staffly/offline.db",

		"SYNC_INTERVAL":     "30s",
		"SYNC_DISABLE_AUTO": "true",
		"SYNC_MAX_RETRIES":  "3",
		"SYNC_BACKOFF_BASE": "1s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, int64(42), cfg.App.EmployerID)

	assert.Equal(t, "https://api.staffly.test", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Adapter.ProbeTimeout)

	assert.Equal(t, "/var/lib/staffly/offline.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 30*time.Second, cfg.Sync.Interval)
	assert.True(t, cfg.Sync.DisableAuto)
	assert.Equal(t, 3, cfg.Sync.MaxRetries)
	assert.Equal(t, time.Second, cfg.Sync.BackoffBase)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"ADAPTER_ADDRESS": "https://api.staffly.test",
		"SYNC_INTERVAL":   "1m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// Adapter partially filled
	assert.Equal(t, "https://api.staffly.test", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Zero(t, cfg.Adapter.ProbeTimeout)

	// Sync partially filled
	assert.Equal(t, time.Minute, cfg.Sync.Interval)
	assert.False(t, cfg.Sync.DisableAuto)
	assert.Zero(t, cfg.Sync.MaxRetries)

	// Others untouched
	assert.Zero(t, cfg.App.EmployerID)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// All nested fields are non-pointer values, so "empty" state is
	// represented by zero values.
	assert.Equal(t, "", cfg.JSONFilePath)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Sync{}, cfg.Sync)
}

func TestParseEnv_OnlyStorageDB(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"STORAGE_DB_DSN": "/tmp/queue.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/tmp/queue.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"SYNC_INTERVAL": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	// Error wording may vary depending on parseEnv internals; assert loosely.
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidEmployerID(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"APP_EMPLOYER_ID": "not-a-number",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"ADAPTER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Adapter.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_EMPLOYER_ID",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_PROBE_TIMEOUT",

		"STORAGE_DB_DSN",

		"SYNC_INTERVAL",
		"SYNC_DISABLE_AUTO",
		"SYNC_MAX_RETRIES",
		"SYNC_BACKOFF_BASE",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
