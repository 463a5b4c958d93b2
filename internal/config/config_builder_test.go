// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{APIBaseURL: "http://a/api"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "state.db"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://a/api", cfg.Adapter.APIBaseURL)
	assert.Equal(t, "state.db", cfg.Storage.DB.DSN)
}

// TestBuild_FirstNonZeroWins verifies mergo precedence: a field already set
// by an earlier source is not overridden by a later one.
func TestBuild_FirstNonZeroWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{APIBaseURL: "http://env/api"}},
		&StructuredConfig{Adapter: Adapter{APIBaseURL: "http://json/api", RequestTimeout: time.Minute}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://env/api", cfg.Adapter.APIBaseURL)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_LoadsFileWhenPathSpecified(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{
			"api_base_url":    "http://json/api",
			"request_timeout": "45s",
		},
		"email": map[string]any{
			"service_id": "service_json",
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "http://json/api", cfg.Adapter.APIBaseURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "service_json", cfg.Email.ServiceID)
}

func TestWithJSON_NoPathSpecified(t *testing.T) {
	b := newConfigBuilder()
	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	cfg, err := b.withJSON().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// ── ClientConfig defaults and validation ─────────────────────────────────────

func TestClientConfig_ApplyDefaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultAPIBaseURL, cfg.Adapter.APIBaseURL)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultLocalDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, defaultEmailBaseURL, cfg.Email.BaseURL)
	require.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{
			name:    "valid after defaults",
			mutate:  func(cfg *ClientConfig) {},
			wantErr: nil,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty api base url",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.APIBaseURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "empty email base url",
			mutate:  func(cfg *ClientConfig) { cfg.Email.BaseURL = "" },
			wantErr: ErrInvalidEmailConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ClientConfig{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
