// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/givelink/givelink/internal/adapter"
	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/internal/mock"
	"github.com/givelink/givelink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClaims(t *testing.T, session models.Session) (ClaimService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStore := mock.NewMockIdentityStore(ctrl)
	auth := NewAuthService(mockStore, mockAdapter, nil, logger.Nop())
	if session.UserID != 0 {
		restoreSession(t, auth, mockStore, session)
	}

	return NewClaimService(mockAdapter, auth, logger.Nop()), mockAdapter
}

var ngoSession = models.Session{UserID: 7, RoleID: models.RoleNGO, Username: "fatima", NgoID: 42, NGOName: "Helping Hands"}

func pendingItem() models.DonatedItem {
	return models.DonatedItem{
		ItemID:    11,
		UserID:    3,
		Username:  "ali",
		ItemName:  "Rice bags",
		Quantity:  10,
		Status:    models.StatusPending,
		CreatedAt: models.NewAPITime(time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)),
	}
}

func TestClaim_Won(t *testing.T) {
	claims, mockAdapter := newTestClaims(t, ngoSession)
	ctx := context.Background()
	item := pendingItem()

	gomock.InOrder(
		mockAdapter.EXPECT().AddToInventory(ctx, models.ClaimRequest{
			NgoID:    42,
			NGOName:  "Helping Hands",
			UserID:   3,
			Username: "ali",
			ItemID:   11,
			ItemName: "Rice bags",
			Quantity: 10,
			Status:   models.StatusAccepted,
		}).Return(nil),
		mockAdapter.EXPECT().UpdateDonationStatus(ctx, int64(11), models.StatusAccepted, int64(42), "Helping Hands").Return(nil),
	)

	outcome, err := claims.Claim(ctx, item)

	require.NoError(t, err)
	assert.Equal(t, ClaimWon, outcome)
}

func TestClaim_LostRaceIsBenign(t *testing.T) {
	claims, mockAdapter := newTestClaims(t, ngoSession)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().AddToInventory(ctx, gomock.Any()).
			Return(fmt.Errorf("%w: Item already exists in inventory", adapter.ErrAlreadyInInventory)),
		// The status update still runs after a lost race.
		mockAdapter.EXPECT().UpdateDonationStatus(ctx, int64(11), models.StatusAccepted, int64(42), "Helping Hands").Return(nil),
	)

	outcome, err := claims.Claim(ctx, pendingItem())

	require.NoError(t, err)
	assert.Equal(t, ClaimLostRace, outcome)
}

// Two NGOs race on the same item: the winner gets the inventory entry, the
// loser gets the duplicate conflict. Both end with a nil error, so both drop
// the item from their pending view.
func TestClaim_RaceBothSidesConverge(t *testing.T) {
	ctx := context.Background()
	item := pendingItem()

	winner, winnerAdapter := newTestClaims(t, ngoSession)
	gomock.InOrder(
		winnerAdapter.EXPECT().AddToInventory(ctx, gomock.Any()).Return(nil),
		winnerAdapter.EXPECT().UpdateDonationStatus(ctx, int64(11), models.StatusAccepted, int64(42), "Helping Hands").Return(nil),
	)

	other := models.Session{UserID: 8, RoleID: models.RoleNGO, NgoID: 43, NGOName: "Food First"}
	loser, loserAdapter := newTestClaims(t, other)
	gomock.InOrder(
		loserAdapter.EXPECT().AddToInventory(ctx, gomock.Any()).
			Return(fmt.Errorf("%w: Item already exists in inventory", adapter.ErrAlreadyInInventory)),
		loserAdapter.EXPECT().UpdateDonationStatus(ctx, int64(11), models.StatusAccepted, int64(43), "Food First").Return(nil),
	)

	winOutcome, winErr := winner.Claim(ctx, item)
	loseOutcome, loseErr := loser.Claim(ctx, item)

	require.NoError(t, winErr)
	require.NoError(t, loseErr)
	assert.Equal(t, ClaimWon, winOutcome)
	assert.Equal(t, ClaimLostRace, loseOutcome)
}

func TestClaim_OtherFailureLeavesItemInList(t *testing.T) {
	claims, mockAdapter := newTestClaims(t, ngoSession)
	ctx := context.Background()

	wantErr := errors.New("database unavailable")
	mockAdapter.EXPECT().AddToInventory(ctx, gomock.Any()).Return(wantErr)

	_, err := claims.Claim(ctx, pendingItem())

	require.ErrorIs(t, err, wantErr)
}

func TestClaim_NGODetailsMissing(t *testing.T) {
	// Logged in, but the session carries no NGO identity.
	claims, _ := newTestClaims(t, models.Session{UserID: 7, RoleID: models.RoleNGO})

	_, err := claims.Claim(context.Background(), pendingItem())

	require.ErrorIs(t, err, ErrNGODetailsMissing)
}

func TestClaim_NotLoggedIn(t *testing.T) {
	claims, _ := newTestClaims(t, models.Session{})

	_, err := claims.Claim(context.Background(), pendingItem())

	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAvailable_SortedForDisplay(t *testing.T) {
	claims, mockAdapter := newTestClaims(t, ngoSession)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	mockAdapter.EXPECT().ListAllDonations(ctx).Return([]models.DonatedItem{
		itemAt(1, models.StatusPending, base.Add(3*time.Hour)),
		itemAt(2, models.StatusAccepted, base),
		itemAt(3, models.StatusCompleted, base.Add(time.Hour)),
	}, nil)

	got, err := claims.Available(ctx)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, models.APIInt(2), got[0].ItemID)
	assert.Equal(t, models.APIInt(3), got[1].ItemID)
	assert.Equal(t, models.APIInt(1), got[2].ItemID)
}
