// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package models

// DonorStats are the per-donor lifecycle counts from
// User/getuserdonationstats.php.
type DonorStats struct {
	Pending   APIInt `json:"pending_count"`
	Accepted  APIInt `json:"accepted_count"`
	Completed APIInt `json:"completed_count"`
}

// Total returns the number of donations the donor has ever submitted.
func (s DonorStats) Total() int64 {
	return s.Pending.Int64() + s.Accepted.Int64() + s.Completed.Int64()
}

// AdminStats are the platform-wide counts from Admin/adminstats.php.
type AdminStats struct {
	TotalUsers     APIInt `json:"total_users"`
	TotalNGOs      APIInt `json:"total_ngos"`
	TotalDonations APIInt `json:"total_donations"`
}
