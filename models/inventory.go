// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package models

// InventoryEntry is the NGO-side record created when a donated item is
// claimed. It is conceptually one-to-one with an accepted DonatedItem but
// lives as a separate backend resource, so claim and completion both touch
// two records.
type InventoryEntry struct {
	InventoryID APIInt         `json:"inventory_id"`
	NgoID       APIInt         `json:"ngo_id"`
	UserID      APIInt         `json:"user_id"`
	ItemID      APIInt         `json:"item_id"`
	Username    string         `json:"username"`
	NGOName     string         `json:"ngoname"`
	ItemName    string         `json:"item_name"`
	Quantity    APIInt         `json:"quantity"`
	Status      DonationStatus `json:"status"`
	CreatedAt   APITime        `json:"created_at"`
}
