// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package store

const (
	createLocalStateTable = `
		CREATE TABLE IF NOT EXISTS local_state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`

	upsertLocalState = `
		INSERT INTO local_state (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	getLocalState = `
		SELECT value
		FROM local_state
		WHERE key = $1;`

	deleteLocalState = `
		DELETE FROM local_state
		WHERE key = $1;`
)
