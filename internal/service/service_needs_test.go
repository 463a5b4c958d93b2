// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"context"
	"testing"

	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/internal/mock"
	"github.com/givelink/givelink/internal/validators"
	"github.com/givelink/givelink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNeeds(t *testing.T, session models.Session) (NeedsService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStore := mock.NewMockIdentityStore(ctrl)
	auth := NewAuthService(mockStore, mockAdapter, nil, logger.Nop())
	if session.UserID != 0 {
		restoreSession(t, auth, mockStore, session)
	}

	return NewNeedsService(mockAdapter, auth, validators.NewFormValidator(), logger.Nop()), mockAdapter
}

func TestNeedsListAll_SortedByPriority(t *testing.T) {
	svc, mockAdapter := newTestNeeds(t, donorSession)
	ctx := context.Background()

	mockAdapter.EXPECT().ListRequirements(ctx, int64(0)).Return([]models.UrgentNeed{
		{RequirementID: 1, Priority: 2},
		{RequirementID: 2, Priority: 5},
		{RequirementID: 3},
	}, nil)

	got, err := svc.ListAll(ctx)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, models.APIInt(2), got[0].RequirementID)
	assert.Equal(t, models.APIInt(3), got[2].RequirementID)
}

func TestNeedsAdd_StampsNGOIdentity(t *testing.T) {
	svc, mockAdapter := newTestNeeds(t, ngoSession)
	ctx := context.Background()

	mockAdapter.EXPECT().AddRequirement(ctx, models.UrgentNeed{
		NgoID:    42,
		NGOName:  "Helping Hands",
		ItemName: "Tents",
		Quantity: 20,
		Priority: 5,
	}).Return(nil)

	err := svc.Add(ctx, models.UrgentNeed{ItemName: "Tents", Quantity: 20, Priority: 5})
	require.NoError(t, err)
}

func TestNeedsAdd_InvalidPriority(t *testing.T) {
	svc, _ := newTestNeeds(t, ngoSession)

	err := svc.Add(context.Background(), models.UrgentNeed{ItemName: "Tents", Quantity: 20, Priority: 9})
	require.ErrorIs(t, err, validators.ErrValidation)
}

func TestNeedsListOwn_RequiresNGODetails(t *testing.T) {
	svc, _ := newTestNeeds(t, models.Session{UserID: 9, RoleID: models.RoleNGO})

	_, err := svc.ListOwn(context.Background())
	require.ErrorIs(t, err, ErrNGODetailsMissing)
}
