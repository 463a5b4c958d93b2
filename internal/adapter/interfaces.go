// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

// Package adapter provides transport-layer abstractions for communicating
// with the donation platform's REST API and the transactional email service.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from endpoint paths, envelope shapes, and HTTP details. The backend
// answers with two inconsistent envelope shapes ({status:"success"} and
// {success:true}); both are normalised here so callers only ever see typed
// results and sentinel errors usable with [errors.Is].
package adapter

import (
	"context"
	"io"

	"github.com/givelink/givelink/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the donation
// platform backend. Implementations are responsible for serialisation,
// envelope normalisation, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// Login authenticates with email and password. On success it returns the
	// identity snapshot plus the account-blocked flag; enforcement of the
	// blocked flag is the caller's concern.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResult, error)

	// RegisterDonor creates a new donor account.
	RegisterDonor(ctx context.Context, reg models.DonorRegistration) error

	// RegisterNGO creates a new NGO account.
	RegisterNGO(ctx context.Context, reg models.NGORegistration) error

	// ResetPassword replaces the password of the account identified by email.
	ResetPassword(ctx context.Context, email, newPassword string) error

	// User fetches a donor/admin profile by id.
	User(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser pushes edited profile fields for user.UserID.
	UpdateUser(ctx context.Context, user models.User) error

	// DeleteUser closes the account identified by userID.
	DeleteUser(ctx context.Context, userID int64) error

	// ListUsers returns every registered donor. Admin only.
	ListUsers(ctx context.Context) ([]models.User, error)

	// AdminStats returns platform-wide counts. Admin only.
	AdminStats(ctx context.Context) (models.AdminStats, error)

	// ListNGOs returns every registered organisation.
	ListNGOs(ctx context.Context) ([]models.NGO, error)

	// UpdateNGO pushes edited profile fields for ngo.NgoID.
	UpdateNGO(ctx context.Context, ngo models.NGO) error

	// DeleteNGO closes the organisation account identified by ngoID.
	DeleteNGO(ctx context.Context, ngoID int64) error

	// ListAllDonations returns every donated item visible to NGOs. The
	// backend guarantees no ordering; display ordering is applied by the
	// caller after every fetch.
	ListAllDonations(ctx context.Context) ([]models.DonatedItem, error)

	// ListUserDonations returns the items submitted by one donor.
	ListUserDonations(ctx context.Context, userID int64) ([]models.DonatedItem, error)

	// SubmitDonation creates a new donated item in Pending status. Exactly
	// one create call is issued per invocation.
	SubmitDonation(ctx context.Context, sub models.DonationSubmission) error

	// UploadImage streams one image to the backend and returns the
	// server-issued filename that a subsequent SubmitDonation must carry.
	UploadImage(ctx context.Context, filename string, image io.Reader) (string, error)

	// ImageURL builds the retrieval URL for a server-issued image filename.
	ImageURL(filename string) string

	// DonorStats returns the per-donor lifecycle counts.
	DonorStats(ctx context.Context, userID int64) (models.DonorStats, error)

	// AddToInventory creates the inventory entry that claims a donated item
	// for an NGO. When another NGO created the entry first, the returned
	// error wraps [ErrAlreadyInInventory]; callers treat that outcome as
	// benign per the claim protocol.
	AddToInventory(ctx context.Context, claim models.ClaimRequest) error

	// UpdateDonationStatus tags the donated item with the claiming NGO's
	// identity and the new status. Issued after AddToInventory in the claim
	// sequence.
	UpdateDonationStatus(ctx context.Context, itemID int64, status models.DonationStatus, ngoID int64, ngoName string) error

	// ListInventory returns the inventory entries owned by ngoID.
	ListInventory(ctx context.Context, ngoID int64) ([]models.InventoryEntry, error)

	// CompleteInventoryEntry marks one inventory entry Completed. It is the
	// first call of the two-phase completion; the donated item must not be
	// touched unless this call succeeds.
	CompleteInventoryEntry(ctx context.Context, inventoryID int64) error

	// CompleteDonation marks the donated item Completed. Second call of the
	// two-phase completion.
	CompleteDonation(ctx context.Context, itemID int64) error

	// ListRequirements returns urgent needs. A zero ngoID returns needs of
	// every organisation.
	ListRequirements(ctx context.Context, ngoID int64) ([]models.UrgentNeed, error)

	// AddRequirement creates a new urgent need for need.NgoID.
	AddRequirement(ctx context.Context, need models.UrgentNeed) error

	// DeleteRequirement removes one urgent need by id.
	DeleteRequirement(ctx context.Context, requirementID int64) error

	// PendingDonationCount returns the number of items awaiting a claim.
	PendingDonationCount(ctx context.Context) (int64, error)

	// NgoDonationCounts returns how many items ngoID has accepted and
	// completed.
	NgoDonationCounts(ctx context.Context, ngoID int64) (accepted, completed int64, err error)
}

// EmailSender delivers contact and feedback messages through the
// transactional email service. There is no retry queue; a failure is
// surfaced to the user and the message is lost.
type EmailSender interface {
	// Send delivers msg using the given template id.
	Send(ctx context.Context, templateID string, msg models.ContactMessage) error
}
