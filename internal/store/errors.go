// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package store

import "errors"

// ErrSessionNotFound is returned when no identity snapshot has been saved
// locally, meaning nobody is logged in on this device.
var ErrSessionNotFound = errors.New("local session not found")
