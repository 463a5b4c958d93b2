// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package config

import (
	"fmt"
	"time"
)

// Defaults applied when no source provides a value.
const (
	defaultAPIBaseURL     = "http://localhost:8080/api"
	defaultRequestTimeout = 15 * time.Second
	defaultLocalDSN       = "givelink.db"
	defaultEmailBaseURL   = "https://api.emailjs.com/api/v1.0/email/send"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the semantic version string of the running client.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// APIBaseURL is the base URL of the donation platform REST API.
	APIBaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientEmail groups transactional email settings used by the contact and
// feedback flows.
type ClientEmail struct {
	BaseURL          string
	ServiceID        string
	ContactTemplate  string
	FeedbackTemplate string
	PublicKey        string
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
	// Email contains transactional email settings.
	Email ClientEmail
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills in defaults for anything left unset,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			APIBaseURL:     cfg.Adapter.APIBaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Email: ClientEmail{
			BaseURL:          cfg.Email.BaseURL,
			ServiceID:        cfg.Email.ServiceID,
			ContactTemplate:  cfg.Email.ContactTemplate,
			FeedbackTemplate: cfg.Email.FeedbackTemplate,
			PublicKey:        cfg.Email.PublicKey,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.APIBaseURL == "" {
		cfg.Adapter.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultLocalDSN
	}
	if cfg.Email.BaseURL == "" {
		cfg.Email.BaseURL = defaultEmailBaseURL
	}
}
