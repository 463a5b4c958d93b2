// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"context"
	"testing"

	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/internal/mock"
	"github.com/givelink/givelink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDirectory(t *testing.T, session models.Session) (DirectoryService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStore := mock.NewMockIdentityStore(ctrl)
	auth := NewAuthService(mockStore, mockAdapter, nil, logger.Nop())
	if session.UserID != 0 {
		restoreSession(t, auth, mockStore, session)
	}

	return NewDirectoryService(mockAdapter, auth, logger.Nop()), mockAdapter
}

func TestListNGOs_SortedByName(t *testing.T) {
	svc, mockAdapter := newTestDirectory(t, donorSession)
	ctx := context.Background()

	mockAdapter.EXPECT().ListNGOs(ctx).Return([]models.NGO{
		{NgoID: 1, NGOName: "food first"},
		{NgoID: 2, NGOName: "Care Bridge"},
		{NgoID: 3, NGOName: "Helping Hands"},
	}, nil)

	got, err := svc.ListNGOs(ctx)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Care Bridge", got[0].NGOName)
	assert.Equal(t, "food first", got[1].NGOName)
	assert.Equal(t, "Helping Hands", got[2].NGOName)
}

func TestHomeCounts(t *testing.T) {
	svc, mockAdapter := newTestDirectory(t, ngoSession)
	ctx := context.Background()

	mockAdapter.EXPECT().PendingDonationCount(ctx).Return(int64(13), nil)
	mockAdapter.EXPECT().NgoDonationCounts(ctx, int64(42)).Return(int64(5), int64(9), nil)

	pending, accepted, completed, err := svc.HomeCounts(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(13), pending)
	assert.Equal(t, int64(5), accepted)
	assert.Equal(t, int64(9), completed)
}

func TestHomeCounts_NotLoggedIn(t *testing.T) {
	svc, _ := newTestDirectory(t, models.Session{})

	_, _, _, err := svc.HomeCounts(context.Background())
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAdminStats(t *testing.T) {
	svc, mockAdapter := newTestDirectory(t, models.Session{UserID: 1, RoleID: models.RoleAdmin})
	ctx := context.Background()

	mockAdapter.EXPECT().AdminStats(ctx).Return(models.AdminStats{TotalUsers: 120, TotalNGOs: 8, TotalDonations: 310}, nil)

	got, err := svc.AdminStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.APIInt(310), got.TotalDonations)
}
