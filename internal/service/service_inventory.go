// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"context"
	"fmt"

	"github.com/givelink/givelink/internal/adapter"
	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/models"
)

// InventoryPageSize is how many entries the list screens append per
// "load more" action. Paging is purely client side; the full list is fetched
// once and sliced.
const InventoryPageSize = 5

// NextPageEnd returns the new visible-slice end after one "load more",
// clamped to total.
func NextPageEnd(current, total int) int {
	next := current + InventoryPageSize
	if next > total {
		return total
	}
	return next
}

type inventoryService struct {
	adapter adapter.ServerAdapter
	auth    AuthService
	logger  *logger.Logger
}

func NewInventoryService(serverAdapter adapter.ServerAdapter, auth AuthService, log *logger.Logger) InventoryService {
	return &inventoryService{
		adapter: serverAdapter,
		auth:    auth,
		logger:  log,
	}
}

func (s *inventoryService) List(ctx context.Context) ([]models.InventoryEntry, error) {
	session, ok := s.auth.Current()
	if !ok {
		return nil, ErrNotLoggedIn
	}
	if !session.HasNGODetails() {
		return nil, ErrNGODetailsMissing
	}

	entries, err := s.adapter.ListInventory(ctx, session.NgoID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}

	SortInventoryForDisplay(entries)
	return entries, nil
}

// Complete is a two-phase update with no atomicity: the inventory entry
// first, the donated item only after the first call succeeded. A first-phase
// failure leaves both records consistent (still Accepted). A second-phase
// failure after a successful first phase leaves the records divergent, so the
// second call is repaired with one retry before giving up.
func (s *inventoryService) Complete(ctx context.Context, entry models.InventoryEntry) error {
	if err := s.adapter.CompleteInventoryEntry(ctx, entry.InventoryID.Int64()); err != nil {
		return fmt.Errorf("complete inventory entry: %w", err)
	}

	itemID := entry.ItemID.Int64()
	if err := s.adapter.CompleteDonation(ctx, itemID); err != nil {
		s.logger.Warn().
			Str("func", "inventoryService.Complete").
			Int64("item_id", itemID).
			Err(err).
			Msg("item status update failed after inventory was completed, retrying")

		if err = s.adapter.CompleteDonation(ctx, itemID); err != nil {
			s.logger.Error().
				Str("func", "inventoryService.Complete").
				Int64("inventory_id", entry.InventoryID.Int64()).
				Int64("item_id", itemID).
				Err(err).
				Msg("inventory and item now divergent on the server")
			return fmt.Errorf("%w: %v", ErrPartialCompletion, err)
		}
	}

	s.logger.Info().
		Str("func", "inventoryService.Complete").
		Int64("inventory_id", entry.InventoryID.Int64()).
		Int64("item_id", itemID).
		Msg("item completed")
	return nil
}
