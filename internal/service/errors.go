// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import "errors"

var (
	// ErrNotLoggedIn means an operation needing identity ran without a session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrAccountBlocked means credentials were valid but the account is
	// blocked by an administrator.
	ErrAccountBlocked = errors.New("account is blocked")

	// ErrNGODetailsMissing means the session lacks the NGO identity a claim
	// must carry.
	ErrNGODetailsMissing = errors.New("NGO details missing")

	// ErrImageRequired means a donation was submitted before an uploaded
	// image filename was received.
	ErrImageRequired = errors.New("an uploaded image is required before submitting")

	// ErrPartialCompletion means the inventory entry was marked Completed but
	// the donated item update failed even after a repair attempt, leaving the
	// two records divergent on the server.
	ErrPartialCompletion = errors.New("item completion only partially applied")
)
