// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package validators

import "errors"

// ErrValidation marks any failure detected before a network call. Callers
// surface the wrapped message to the user and skip the request entirely.
var ErrValidation = errors.New("validation failed")
