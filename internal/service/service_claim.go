// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/givelink/givelink/internal/adapter"
	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/models"
)

type claimService struct {
	adapter adapter.ServerAdapter
	auth    AuthService
	logger  *logger.Logger
}

func NewClaimService(serverAdapter adapter.ServerAdapter, auth AuthService, log *logger.Logger) ClaimService {
	return &claimService{
		adapter: serverAdapter,
		auth:    auth,
		logger:  log,
	}
}

func (c *claimService) Available(ctx context.Context) ([]models.DonatedItem, error) {
	items, err := c.adapter.ListAllDonations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}

	SortDonationsForDisplay(items)
	return items, nil
}

// Claim runs the acceptance sequence. There is no locking and no idempotency
// key; the race with other NGOs is resolved by the backend's uniqueness
// constraint and reconciled here after the fact.
func (c *claimService) Claim(ctx context.Context, item models.DonatedItem) (ClaimOutcome, error) {
	session, ok := c.auth.Current()
	if !ok {
		return ClaimWon, ErrNotLoggedIn
	}
	if !session.HasNGODetails() {
		return ClaimWon, ErrNGODetailsMissing
	}

	claim := models.ClaimRequest{
		NgoID:    session.NgoID,
		NGOName:  session.NGOName,
		UserID:   item.UserID.Int64(),
		Username: item.Username,
		ItemID:   item.ItemID.Int64(),
		ItemName: item.ItemName,
		Quantity: item.Quantity.Int64(),
		Status:   models.StatusAccepted,
	}

	outcome := ClaimWon
	if err := c.adapter.AddToInventory(ctx, claim); err != nil {
		if !errors.Is(err, adapter.ErrAlreadyInInventory) {
			return ClaimWon, fmt.Errorf("claim item: %w", err)
		}
		// Another NGO won the race. Benign: the status update below still
		// runs and the caller still drops the item from its pending view.
		outcome = ClaimLostRace
		c.logger.Info().
			Str("func", "claimService.Claim").
			Int64("item_id", claim.ItemID).
			Msg("item already claimed by another organisation")
	}

	if err := c.adapter.UpdateDonationStatus(ctx, claim.ItemID, models.StatusAccepted, session.NgoID, session.NGOName); err != nil {
		return outcome, fmt.Errorf("update item status: %w", err)
	}

	if outcome == ClaimWon {
		c.logger.Info().
			Str("func", "claimService.Claim").
			Int64("item_id", claim.ItemID).
			Int64("ngo_id", session.NgoID).
			Msg("item claimed")
	}
	return outcome, nil
}
