package config

import (
	"fmt"
	"time"
)

// Defaults applied by GetClientConfig when the merged configuration leaves a
// field unset. The retry budget and backoff base mirror the sync policy the
// backend expects from offline clients.
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultProbeTimeout   = 5 * time.Second
	DefaultSyncInterval   = 30 * time.Second
	DefaultMaxRetries     = 3
	DefaultBackoffBase    = time.Second
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// EmployerID identifies the employer for allowed-location lookups.
	EmployerID int64
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// ProbeTimeout bounds the connectivity probe.
	ProbeTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync contains sync policy settings.
type ClientSync struct {
	// Interval defines how often the auto-sync timer fires.
	Interval time.Duration
	// AutoSync reports whether the periodic timer starts enabled.
	AutoSync bool
	// MaxRetries is the per-operation retry budget before eviction.
	MaxRetries int
	// BackoffBase is the base delay of the batch submission backoff.
	BackoffBase time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains sync policy settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies defaults for unset policy values,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	base, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting structured config: %w", err)
	}

	cfg := &ClientConfig{
		App: ClientApp{
			EmployerID: base.App.EmployerID,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    base.Adapter.HTTPAddress,
			RequestTimeout: base.Adapter.RequestTimeout,
			ProbeTimeout:   base.Adapter.ProbeTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: base.Storage.DB.DSN},
		},
		Sync: ClientSync{
			Interval:    base.Sync.Interval,
			AutoSync:    !base.Sync.DisableAuto,
			MaxRetries:  base.Sync.MaxRetries,
			BackoffBase: base.Sync.BackoffBase,
		},
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.ProbeTimeout <= 0 {
		cfg.Adapter.ProbeTimeout = DefaultProbeTimeout
	}
	if cfg.Sync.Interval <= 0 {
		cfg.Sync.Interval = DefaultSyncInterval
	}
	if cfg.Sync.MaxRetries <= 0 {
		cfg.Sync.MaxRetries = DefaultMaxRetries
	}
	if cfg.Sync.BackoffBase <= 0 {
		cfg.Sync.BackoffBase = DefaultBackoffBase
	}
}
