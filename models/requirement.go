// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package models

// UrgentNeed is an NGO-authored request for specific items, ranked by a 1-5
// priority. Older records may carry no priority at all; Rank treats those as
// the lowest rank.
type UrgentNeed struct {
	RequirementID APIInt `json:"requirement_id"`
	NgoID         APIInt `json:"ngo_id" validate:"required"`
	NGOName       string `json:"ngoname" validate:"required"`
	ItemName      string `json:"item_name" validate:"required"`
	Quantity      APIInt `json:"quantity" validate:"required,gt=0"`
	Priority      APIInt `json:"priority" validate:"omitempty,min=1,max=5"`
}

// Rank returns the effective priority used for display ordering. Records
// created before the priority column existed default to 1.
func (n UrgentNeed) Rank() int64 {
	if n.Priority < 1 {
		return 1
	}
	return n.Priority.Int64()
}
