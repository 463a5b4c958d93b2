// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)

	// Must not panic and must not write anywhere.
	log.Info().Str("key", "value").Msg("discarded")
}

func TestGetChildLogger_ReturnsIndependentLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()

	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_WithoutAttachedLogger(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
}

func TestWithContext_RoundTrip(t *testing.T) {
	parent := Nop()
	ctx := parent.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
	got.Debug().Msg("still discarded")
}
