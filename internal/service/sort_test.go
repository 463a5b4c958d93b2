// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"testing"
	"time"

	"github.com/givelink/givelink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemAt(id int64, status models.DonationStatus, created time.Time) models.DonatedItem {
	return models.DonatedItem{
		ItemID:    models.APIInt(id),
		Status:    status,
		CreatedAt: models.NewAPITime(created),
	}
}

func TestSortDonationsForDisplay_StatusBucketsThenNewestFirst(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	items := []models.DonatedItem{
		itemAt(1, models.StatusPending, base.Add(5*time.Hour)),
		itemAt(2, models.StatusCompleted, base.Add(1*time.Hour)),
		itemAt(3, models.StatusAccepted, base),
		itemAt(4, models.StatusAccepted, base.Add(3*time.Hour)),
		itemAt(5, models.StatusCompleted, base.Add(4*time.Hour)),
		itemAt(6, models.StatusPending, base.Add(2*time.Hour)),
	}

	SortDonationsForDisplay(items)

	var order []int64
	for _, it := range items {
		order = append(order, it.ItemID.Int64())
	}
	// Accepted block newest first, then Completed, then the rest.
	assert.Equal(t, []int64{4, 3, 5, 2, 1, 6}, order)
}

func TestSortDonationsForDisplay_CaseInsensitiveStatus(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	items := []models.DonatedItem{
		itemAt(1, "pending", base),
		itemAt(2, "accepted", base),
		itemAt(3, "COMPLETED", base),
	}

	SortDonationsForDisplay(items)

	assert.Equal(t, int64(2), items[0].ItemID.Int64())
	assert.Equal(t, int64(3), items[1].ItemID.Int64())
	assert.Equal(t, int64(1), items[2].ItemID.Int64())
}

func TestSortDonationsForDisplay_StableWithinEqualKeys(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	items := []models.DonatedItem{
		itemAt(1, models.StatusAccepted, base),
		itemAt(2, models.StatusAccepted, base),
		itemAt(3, models.StatusAccepted, base),
	}

	SortDonationsForDisplay(items)

	assert.Equal(t, int64(1), items[0].ItemID.Int64())
	assert.Equal(t, int64(3), items[2].ItemID.Int64())
}

func TestSortInventoryForDisplay(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	entries := []models.InventoryEntry{
		{InventoryID: 1, Status: models.StatusCompleted, CreatedAt: models.NewAPITime(base.Add(time.Hour))},
		{InventoryID: 2, Status: models.StatusAccepted, CreatedAt: models.NewAPITime(base)},
		{InventoryID: 3, Status: models.StatusAccepted, CreatedAt: models.NewAPITime(base.Add(2 * time.Hour))},
	}

	SortInventoryForDisplay(entries)

	assert.Equal(t, models.APIInt(3), entries[0].InventoryID)
	assert.Equal(t, models.APIInt(2), entries[1].InventoryID)
	assert.Equal(t, models.APIInt(1), entries[2].InventoryID)
}

func TestSortNeedsForDisplay_PriorityDescendingWithDefault(t *testing.T) {
	needs := []models.UrgentNeed{
		{RequirementID: 1, Priority: 2},
		{RequirementID: 2, Priority: 5},
		{RequirementID: 3}, // no priority, ranks as 1
		{RequirementID: 4, Priority: 3},
	}

	SortNeedsForDisplay(needs)

	require.Len(t, needs, 4)
	assert.Equal(t, models.APIInt(2), needs[0].RequirementID)
	assert.Equal(t, models.APIInt(4), needs[1].RequirementID)
	assert.Equal(t, models.APIInt(1), needs[2].RequirementID)
	assert.Equal(t, models.APIInt(3), needs[3].RequirementID)
}

func TestFilterInventoryByStatus(t *testing.T) {
	entries := []models.InventoryEntry{
		{InventoryID: 1, Status: models.StatusAccepted},
		{InventoryID: 2, Status: "completed"},
		{InventoryID: 3, Status: models.StatusAccepted},
	}

	accepted := FilterInventoryByStatus(entries, models.StatusAccepted)
	completed := FilterInventoryByStatus(entries, models.StatusCompleted)

	assert.Len(t, accepted, 2)
	require.Len(t, completed, 1)
	assert.Equal(t, models.APIInt(2), completed[0].InventoryID)
}
