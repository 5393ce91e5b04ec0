// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Staffly Inc.

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config itself carries no mandatory fields; the client view
// built by [GetClientConfig] enforces the client invariants.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.Interval == 0 || cfg.Sync.MaxRetries == 0 || cfg.Sync.BackoffBase == 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
