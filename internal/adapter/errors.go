// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package adapter

import "errors"

var (
	// ErrUnauthorized maps HTTP 401 responses.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrNotFound maps HTTP 404 responses.
	ErrNotFound = errors.New("resource not found")
	// ErrBadRequest maps HTTP 400 responses.
	ErrBadRequest = errors.New("bad request")
	// ErrInternalServerError maps HTTP 5xx responses.
	ErrInternalServerError = errors.New("internal server error")

	// ErrServerFailure is returned when the backend answers 200 but the
	// response envelope reports failure. The wrapped message is the
	// server-reported text, surfaced to the user verbatim.
	ErrServerFailure = errors.New("server reported failure")

	// ErrAlreadyInInventory is the one structured business error the client
	// distinguishes: another NGO created the inventory entry first. The
	// backend signals it only through its human-readable message, so the
	// mapping lives here rather than at every call site.
	ErrAlreadyInInventory = errors.New("item already exists in inventory")
)
