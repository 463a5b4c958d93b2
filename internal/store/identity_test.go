// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/givelink/givelink/internal/config"
	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) IdentityStore {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewIdentityStore(db, logger.Nop())
}

func TestSession_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := models.Session{
		UserID:   7,
		RoleID:   models.RoleNGO,
		Username: "fatima",
		NgoID:    42,
		NGOName:  "Helping Hands",
		Email:    "fatima@helpinghands.org",
		City:     "Karachi",
	}
	require.NoError(t, s.SaveSession(ctx, want))

	got, err := s.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSession_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Session(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSession_OverwriteReplacesNGOFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, models.Session{UserID: 7, RoleID: models.RoleNGO, NgoID: 42, NGOName: "Helping Hands"}))
	require.NoError(t, s.SaveSession(ctx, models.Session{UserID: 3, RoleID: models.RoleDonor, Username: "ali"}))

	got, err := s.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.UserID)
	assert.Zero(t, got.NgoID)
	assert.Empty(t, got.NGOName)
	assert.False(t, got.IsNGO())
}

func TestClearSession_RemovesEverything(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, models.Session{UserID: 3, RoleID: models.RoleDonor}))
	require.NoError(t, s.MarkNotificationRead(ctx, 11))
	require.NoError(t, s.SetLastNotificationCheck(ctx, 1_724_900_000_000))

	require.NoError(t, s.ClearSession(ctx))

	_, err := s.Session(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	set, err := s.ReadNotifications(ctx)
	require.NoError(t, err)
	assert.Empty(t, set)

	ms, err := s.LastNotificationCheck(ctx)
	require.NoError(t, err)
	assert.Zero(t, ms)
}

func TestMarkNotificationRead_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.MarkNotificationRead(ctx, 11))
	require.NoError(t, s.MarkNotificationRead(ctx, 11))
	require.NoError(t, s.MarkNotificationRead(ctx, 12))

	set, err := s.ReadNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{11: true, 12: true}, set)
}

func TestLastNotificationCheck_DefaultsToZero(t *testing.T) {
	s := newTestStore(t)

	ms, err := s.LastNotificationCheck(context.Background())
	require.NoError(t, err)
	assert.Zero(t, ms)
}

func TestPersistence_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "givelink.db")

	db, err := NewConnectSQLite(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	s := NewIdentityStore(db, logger.Nop())
	require.NoError(t, s.SaveSession(ctx, models.Session{UserID: 3, RoleID: models.RoleDonor, Username: "ali"}))
	require.NoError(t, s.MarkNotificationRead(ctx, 11))
	require.NoError(t, db.Close())

	db, err = NewConnectSQLite(ctx, config.ClientDB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	s = NewIdentityStore(db, logger.Nop())

	got, err := s.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ali", got.Username)

	set, err := s.ReadNotifications(ctx)
	require.NoError(t, err)
	assert.True(t, set[11])
}
