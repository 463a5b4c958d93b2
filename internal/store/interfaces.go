// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_store_mock.go -package=mock

import (
	"context"

	"github.com/givelink/givelink/models"
)

// IdentityStore is the device-local persistence surface. It owns exactly two
// things: the identity snapshot written at login and the notification read
// state. Everything else the client shows is fetched from the backend on
// demand.
type IdentityStore interface {
	// SaveSession persists the identity snapshot, replacing any previous one.
	SaveSession(ctx context.Context, session models.Session) error
	// Session returns the persisted identity snapshot, or ErrSessionNotFound
	// when nobody is logged in.
	Session(ctx context.Context) (models.Session, error)
	// ClearSession removes the identity snapshot and the notification read
	// state. Called at logout and at account deletion.
	ClearSession(ctx context.Context) error

	// ReadNotifications returns the set of item ids whose status-change
	// notifications the user has opened.
	ReadNotifications(ctx context.Context) (map[int64]bool, error)
	// MarkNotificationRead adds itemID to the read set. Marking an already
	// read notification is a no-op.
	MarkNotificationRead(ctx context.Context, itemID int64) error

	// LastNotificationCheck returns the unix-millisecond timestamp of the
	// last time the notification feed was opened, zero if never.
	LastNotificationCheck(ctx context.Context) (int64, error)
	// SetLastNotificationCheck records the feed-open timestamp.
	SetLastNotificationCheck(ctx context.Context, unixMillis int64) error
}
