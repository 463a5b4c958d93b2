// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package models

import "strings"

// DonationStatus is the lifecycle state of a donated item. The backend stores
// the canonical capitalised form but several endpoints return it lower-cased,
// so comparisons must go through Is.
type DonationStatus string

const (
	StatusPending   DonationStatus = "Pending"
	StatusAccepted  DonationStatus = "Accepted"
	StatusCompleted DonationStatus = "Completed"
)

// Is reports whether s and other name the same status, ignoring case and
// surrounding whitespace.
func (s DonationStatus) Is(other DonationStatus) bool {
	return strings.EqualFold(strings.TrimSpace(string(s)), strings.TrimSpace(string(other)))
}

// DonatedItem is a donor-submitted item record. It is owned by the backend;
// the client only ever holds a transient copy and re-fetches after mutating.
type DonatedItem struct {
	ItemID        APIInt         `json:"item_id"`
	UserID        APIInt         `json:"user_id"`
	Username      string         `json:"username"`
	ItemName      string         `json:"item_name"`
	ItemCondition string         `json:"item_condition"`
	Quantity      APIInt         `json:"quantity"`
	ImageFilename string         `json:"item_image"`
	NGOName       string         `json:"ngoname,omitempty"`
	Status        DonationStatus `json:"status"`
	CreatedAt     APITime        `json:"created_at"`
}

// DonationSubmission is the create-request payload for a new donated item.
// Field names follow the backend contract for User/itemdonation.php.
type DonationSubmission struct {
	UserID        int64  `json:"user_id" validate:"required"`
	Username      string `json:"username" validate:"required"`
	ItemName      string `json:"item_name" validate:"required"`
	ItemCondition string `json:"item_condition" validate:"required"`
	Section       string `json:"user_section" validate:"required"`
	Quantity      int64  `json:"number_of_items" validate:"required,gt=0"`
	ImageFilename string `json:"image_filename" validate:"required"`
}

// ClaimRequest is the payload for Ngo/addToInventory.php. It carries donor,
// item, and NGO identity in a single create call.
type ClaimRequest struct {
	NgoID    int64          `json:"ngo_id"`
	NGOName  string         `json:"ngoname"`
	UserID   int64          `json:"user_id"`
	Username string         `json:"username"`
	ItemID   int64          `json:"item_id"`
	ItemName string         `json:"item_name"`
	Quantity int64          `json:"quantity"`
	Status   DonationStatus `json:"status"`
}
