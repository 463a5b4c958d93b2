// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"sort"

	"github.com/givelink/givelink/models"
)

// statusRank orders lifecycle states for display: Accepted first, Completed
// second, anything else (Pending included) last.
func statusRank(s models.DonationStatus) int {
	switch {
	case s.Is(models.StatusAccepted):
		return 0
	case s.Is(models.StatusCompleted):
		return 1
	default:
		return 2
	}
}

// SortDonationsForDisplay orders items in place: primary key status
// (Accepted > Completed > other), secondary key created_at descending. The
// backend guarantees no ordering, so this runs after every fetch.
func SortDonationsForDisplay(items []models.DonatedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := statusRank(items[i].Status), statusRank(items[j].Status)
		if ri != rj {
			return ri < rj
		}
		return items[i].CreatedAt.After(items[j].CreatedAt.Time)
	})
}

// SortInventoryForDisplay applies the same ordering to inventory entries.
func SortInventoryForDisplay(entries []models.InventoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := statusRank(entries[i].Status), statusRank(entries[j].Status)
		if ri != rj {
			return ri < rj
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt.Time)
	})
}

// SortNeedsForDisplay orders urgent needs by priority descending; records
// without a priority rank lowest.
func SortNeedsForDisplay(needs []models.UrgentNeed) {
	sort.SliceStable(needs, func(i, j int) bool {
		return needs[i].Rank() > needs[j].Rank()
	})
}
