// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package config

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.APIBaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Email.BaseURL == "" {
		return ErrInvalidEmailConfigs
	}

	return nil
}
