// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"context"
	"io"
	"time"

	"github.com/givelink/givelink/models"
)

// AuthService owns the login lifecycle and the in-memory session handed to
// every other service. The session is persisted through the identity store so
// it survives restarts; Restore rehydrates it at startup.
type AuthService interface {
	// Login authenticates with the backend, rejects blocked accounts with
	// ErrAccountBlocked, persists the identity snapshot locally, and returns
	// the new session.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Restore loads a previously persisted session. Returns
	// store.ErrSessionNotFound when nobody is logged in on this device.
	Restore(ctx context.Context) (models.Session, error)

	// Current returns the active session, false when nobody is logged in.
	Current() (models.Session, bool)

	// Logout clears the persisted snapshot and the in-memory session.
	Logout(ctx context.Context) error

	// RegisterDonor validates and creates a donor account. The user still
	// logs in separately afterwards.
	RegisterDonor(ctx context.Context, reg models.DonorRegistration) error

	// RegisterNGO validates and creates an organisation account.
	RegisterNGO(ctx context.Context, reg models.NGORegistration) error

	// ResetPassword replaces the password for the account behind email.
	ResetPassword(ctx context.Context, email, newPassword string) error

	// DeleteAccount closes the logged-in account on the backend and clears
	// the local session. Donor and NGO accounts are closed through different
	// endpoints depending on the session's role.
	DeleteAccount(ctx context.Context) error
}

// DonationService is the donor-side submission surface.
type DonationService interface {
	// AttachImage uploads one image and returns the server-issued filename a
	// subsequent Submit must carry. Exactly one upload call per invocation.
	AttachImage(ctx context.Context, filename string, image io.Reader) (string, error)

	// Submit validates the filled form and issues exactly one create call.
	// Submission is rejected before any network call when a required field is
	// empty or no uploaded-image filename is present (ErrImageRequired).
	Submit(ctx context.Context, form DonationForm) error

	// ListMine returns the donor's own items in display order.
	ListMine(ctx context.Context) ([]models.DonatedItem, error)

	// Stats returns the donor's lifecycle counts.
	Stats(ctx context.Context) (models.DonorStats, error)

	// ImageURL resolves a stored image filename to its retrieval URL.
	ImageURL(filename string) string
}

// ClaimOutcome tells the claiming NGO how its claim resolved.
type ClaimOutcome int

const (
	// ClaimWon: the inventory entry was created for this NGO.
	ClaimWon ClaimOutcome = iota
	// ClaimLostRace: another NGO created the entry first. The item is gone
	// from the pending view either way.
	ClaimLostRace
)

// ClaimService is the NGO-side browsing and acceptance surface.
type ClaimService interface {
	// Available returns every donated item in display order: Accepted first,
	// then Completed, then the rest, newest first within each bucket.
	Available(ctx context.Context) ([]models.DonatedItem, error)

	// Claim runs the acceptance sequence for item: create the inventory
	// entry, then tag the donated item Accepted with this NGO's identity.
	// A lost race (another NGO already holds the item) is a benign outcome
	// reported as ClaimLostRace with a nil error; the caller removes the
	// item from its pending view in both outcomes. Returns
	// ErrNGODetailsMissing without any network call when the session lacks
	// NGO identity.
	Claim(ctx context.Context, item models.DonatedItem) (ClaimOutcome, error)
}

// InventoryService tracks claimed items through Accepted to Completed.
type InventoryService interface {
	// List returns the NGO's inventory entries in display order.
	List(ctx context.Context) ([]models.InventoryEntry, error)

	// Complete runs the two-phase completion for entry: first the inventory
	// entry, then, only if that succeeded, the donated item. When the second
	// call fails it is retried once; if the retry also fails the error wraps
	// ErrPartialCompletion and the two records are divergent on the server.
	Complete(ctx context.Context, entry models.InventoryEntry) error
}

// FilterInventoryByStatus partitions entries for the Accepted/Completed tabs.
// Declared here next to InventoryService because it is pure and needs no
// state.
func FilterInventoryByStatus(entries []models.InventoryEntry, status models.DonationStatus) []models.InventoryEntry {
	out := make([]models.InventoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.Status.Is(status) {
			out = append(out, e)
		}
	}
	return out
}

// NotificationService projects a read/unread feed from the donor's own items.
// Read state lives only on this device.
type NotificationService interface {
	// Feed returns the donor's non-pending items newest first, each with a
	// relative age label and its read flag resolved against the local read
	// set. Opening the feed records the check timestamp.
	Feed(ctx context.Context) ([]models.Notification, error)

	// MarkRead adds itemID to the local read set. Idempotent.
	MarkRead(ctx context.Context, itemID int64) error

	// HasUnread reports whether the bell badge should show: true iff at
	// least one qualifying item is absent from the read set or was created
	// after the last feed check.
	HasUnread(ctx context.Context) (bool, error)
}

// NeedsService manages NGO urgent-need postings.
type NeedsService interface {
	// ListAll returns every organisation's needs sorted by priority
	// descending, for the donor-facing view.
	ListAll(ctx context.Context) ([]models.UrgentNeed, error)

	// ListOwn returns the logged-in NGO's needs sorted by priority
	// descending.
	ListOwn(ctx context.Context) ([]models.UrgentNeed, error)

	// Add validates and posts a new need for the logged-in NGO.
	Add(ctx context.Context, need models.UrgentNeed) error

	// Delete removes one need by id.
	Delete(ctx context.Context, requirementID int64) error
}

// DirectoryService serves the browse screens and the dashboards.
type DirectoryService interface {
	// ListNGOs returns every registered organisation sorted by name.
	ListNGOs(ctx context.Context) ([]models.NGO, error)

	// ListUsers returns every donor account. Admin only.
	ListUsers(ctx context.Context) ([]models.User, error)

	// AdminStats returns platform-wide counts. Admin only.
	AdminStats(ctx context.Context) (models.AdminStats, error)

	// HomeCounts returns the NGO home screen numbers: pending platform-wide,
	// plus this NGO's accepted and completed counts. The three backend calls
	// are independent; the first failure is returned.
	HomeCounts(ctx context.Context) (pending, accepted, completed int64, err error)
}

// ProfileService reads and mutates the logged-in account's profile.
type ProfileService interface {
	// Profile fetches the logged-in donor/admin profile.
	Profile(ctx context.Context) (models.User, error)

	// UpdateProfile validates and pushes edited donor profile fields.
	UpdateProfile(ctx context.Context, user models.User) error

	// UpdateNGOProfile validates and pushes edited organisation fields.
	UpdateNGOProfile(ctx context.Context, ngo models.NGO) error
}

// ContactService delivers contact and feedback messages. No retry queue; a
// failure is surfaced and the message is lost.
type ContactService interface {
	SendContact(ctx context.Context, msg models.ContactMessage) error
	SendFeedback(ctx context.Context, msg models.ContactMessage) error
}

// Clock abstracts time for age-label math in tests.
type Clock func() time.Time
