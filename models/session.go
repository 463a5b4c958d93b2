// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package models

// Session is the locally owned identity snapshot. It is populated once at
// login, persisted in the local store, read by every screen that needs
// identity, and cleared at logout or account deletion.
type Session struct {
	UserID   int64
	RoleID   Role
	Username string
	NgoID    int64
	NGOName  string
	Email    string
	City     string
}

// IsNGO reports whether the session belongs to an NGO account.
func (s Session) IsNGO() bool {
	return s.RoleID == RoleNGO
}

// HasNGODetails reports whether the NGO identity needed for a claim is
// present. A claim must fail up front when it is not.
func (s Session) HasNGODetails() bool {
	return s.NgoID != 0 && s.NGOName != ""
}

// LoginResult is what the login endpoint yields after envelope
// normalisation: the identity snapshot plus the account-blocked flag that the
// backend returns alongside it.
type LoginResult struct {
	Session Session
	Blocked bool
}
