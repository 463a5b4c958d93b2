// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the givelink
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Adapter holds network settings for the API transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds settings for the local on-device store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Email holds settings for the transactional email integration used by
	// the contact and feedback forms.
	Email Email `envPrefix:"EMAIL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds configuration for the outbound API transport.
type Adapter struct {
	// APIBaseURL is the base URL of the donation platform REST API,
	// e.g. "http://192.168.1.10/donationApp_restapi/api".
	// Env: ADAPTER_API_BASE_URL
	APIBaseURL string `env:"API_BASE_URL"`

	// RequestTimeout is the default timeout applied to every outbound
	// request. The backend offers no timeout of its own, so without this a
	// server hang would hang the UI.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local identity/read-state store.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains local database connection settings.
type DB struct {
	// DSN is the SQLite file path (or ":memory:") for the local store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Email holds settings for the EmailJS-style transactional email service.
type Email struct {
	// BaseURL is the send endpoint of the transactional email service.
	// Env: EMAIL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ServiceID identifies the configured email service.
	// Env: EMAIL_SERVICE_ID
	ServiceID string `env:"SERVICE_ID"`

	// ContactTemplate is the template id used by the contact form.
	// Env: EMAIL_CONTACT_TEMPLATE
	ContactTemplate string `env:"CONTACT_TEMPLATE"`

	// FeedbackTemplate is the template id used by the feedback form.
	// Env: EMAIL_FEEDBACK_TEMPLATE
	FeedbackTemplate string `env:"FEEDBACK_TEMPLATE"`

	// PublicKey is the API key sent with every send request.
	// Env: EMAIL_PUBLIC_KEY
	PublicKey string `env:"PUBLIC_KEY"`
}

// GetStructuredConfig builds the merged configuration from all supported
// sources. Precedence is environment variables, then flags, then the JSON
// file: mergo keeps the first non-zero value it sees for each field.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
