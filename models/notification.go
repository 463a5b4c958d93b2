// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package models

import "time"

// Notification is a client-side projection of a non-pending donated item onto
// the donor's notification feed. It never exists as a backend resource; the
// read flag lives only in the local store.
type Notification struct {
	ItemID    int64
	ItemName  string
	NGOName   string
	Status    DonationStatus
	CreatedAt time.Time
	AgeLabel  string
	Read      bool
}
