// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Staffly Inc.

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// offline-sync client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the employer whose
	// approved locations are fetched for attendance validation.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the backend HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds the sync-pass policy: periodic interval, retry budget and
	// backoff base delay.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// jsonFilePath mirrors JSONFilePath for layers (flags) that carry the
	// path without exporting it into the merged result.
	jsonFilePath string
}

// App holds application-level configuration values.
type App struct {
	// EmployerID identifies the employer whose approved work locations are
	// requested from the backend.
	// Env: APP_EMPLOYER_ID
	EmployerID int64 `env:"EMPLOYER_ID"`
}

// Adapter holds network and timeout settings for the outbound transport layer.
type Adapter struct {
	// HTTPAddress is the backend base URL (e.g. "https://api.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout for outbound sync requests
	// (e.g. "15s"). The transport default applies to individual dispatch
	// calls; only the connectivity probe carries its own shorter timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ProbeTimeout bounds the lightweight connectivity probe (e.g. "5s").
	// Env: ADAPTER_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite file path used for the pending-operation queue and
	// the offline cache.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync holds the sync-pass policy knobs.
type Sync struct {
	// Interval is the periodic auto-sync timer interval (e.g. "30s").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// DisableAuto turns the periodic auto-sync timer off. Auto-sync is on
	// by default.
	// Env: SYNC_DISABLE_AUTO
	DisableAuto bool `env:"DISABLE_AUTO"`

	// MaxRetries is the per-operation retry budget before eviction and the
	// retry cap of the combined batch submission.
	// Env: SYNC_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// BackoffBase is the base delay of the exponential backoff applied to
	// batch submissions (delay = BackoffBase * 2^attempt).
	// Env: SYNC_BACKOFF_BASE
	BackoffBase time.Duration `env:"BACKOFF_BASE"`
}

// GetStructuredConfig assembles the merged configuration from environment
// variables, command-line flags, and an optional JSON file (in that order of
// precedence: earlier layers win on conflicting fields).
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
