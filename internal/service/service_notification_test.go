// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"context"
	"testing"
	"time"

	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/internal/mock"
	"github.com/givelink/givelink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var donorSession = models.Session{UserID: 3, RoleID: models.RoleDonor, Username: "ali"}

func newTestNotifications(t *testing.T, now time.Time) (NotificationService, *mock.MockServerAdapter, *mock.MockIdentityStore) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStore := mock.NewMockIdentityStore(ctrl)
	auth := NewAuthService(mockStore, mockAdapter, nil, logger.Nop())
	restoreSession(t, auth, mockStore, donorSession)

	clock := func() time.Time { return now }
	return NewNotificationService(mockAdapter, mockStore, auth, clock, logger.Nop()), mockAdapter, mockStore
}

func TestFeed_DropsPendingAndSortsNewestFirst(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc, mockAdapter, mockStore := newTestNotifications(t, now)
	ctx := context.Background()

	mockAdapter.EXPECT().ListUserDonations(ctx, int64(3)).Return([]models.DonatedItem{
		itemAt(1, models.StatusPending, now.Add(-time.Hour)),
		itemAt(2, models.StatusAccepted, now.Add(-3*time.Hour)),
		itemAt(3, models.StatusCompleted, now.Add(-2*time.Hour)),
	}, nil)
	mockStore.EXPECT().ReadNotifications(ctx).Return(map[int64]bool{3: true}, nil)
	mockStore.EXPECT().SetLastNotificationCheck(ctx, now.UnixMilli()).Return(nil)

	feed, err := svc.Feed(ctx)

	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, int64(3), feed[0].ItemID)
	assert.True(t, feed[0].Read)
	assert.Equal(t, int64(2), feed[1].ItemID)
	assert.False(t, feed[1].Read)
	assert.Equal(t, "2 hours ago", feed[0].AgeLabel)
}

func TestHasUnread_TrueWhenQualifyingItemUnread(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc, mockAdapter, mockStore := newTestNotifications(t, now)
	ctx := context.Background()

	mockAdapter.EXPECT().ListUserDonations(ctx, int64(3)).Return([]models.DonatedItem{
		itemAt(2, models.StatusAccepted, now.Add(-3*time.Hour)),
	}, nil)
	mockStore.EXPECT().ReadNotifications(ctx).Return(map[int64]bool{}, nil)
	mockStore.EXPECT().LastNotificationCheck(ctx).Return(now.UnixMilli(), nil)

	unread, err := svc.HasUnread(ctx)

	require.NoError(t, err)
	assert.True(t, unread)
}

func TestHasUnread_TrueWhenCreatedAfterLastCheck(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc, mockAdapter, mockStore := newTestNotifications(t, now)
	ctx := context.Background()

	// Item is read, but newer than the last feed check.
	created := now.Add(-time.Hour)
	mockAdapter.EXPECT().ListUserDonations(ctx, int64(3)).Return([]models.DonatedItem{
		itemAt(2, models.StatusAccepted, created),
	}, nil)
	mockStore.EXPECT().ReadNotifications(ctx).Return(map[int64]bool{2: true}, nil)
	mockStore.EXPECT().LastNotificationCheck(ctx).Return(created.Add(-time.Minute).UnixMilli(), nil)

	unread, err := svc.HasUnread(ctx)

	require.NoError(t, err)
	assert.True(t, unread)
}

func TestHasUnread_FalseWhenAllReadAndChecked(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc, mockAdapter, mockStore := newTestNotifications(t, now)
	ctx := context.Background()

	mockAdapter.EXPECT().ListUserDonations(ctx, int64(3)).Return([]models.DonatedItem{
		itemAt(1, models.StatusPending, now.Add(-time.Minute)), // pending never qualifies
		itemAt(2, models.StatusAccepted, now.Add(-3*time.Hour)),
	}, nil)
	mockStore.EXPECT().ReadNotifications(ctx).Return(map[int64]bool{2: true}, nil)
	mockStore.EXPECT().LastNotificationCheck(ctx).Return(now.UnixMilli(), nil)

	unread, err := svc.HasUnread(ctx)

	require.NoError(t, err)
	assert.False(t, unread)
}

func TestMarkRead_DelegatesIdempotently(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc, _, mockStore := newTestNotifications(t, now)
	ctx := context.Background()

	mockStore.EXPECT().MarkNotificationRead(ctx, int64(11)).Return(nil).Times(2)

	require.NoError(t, svc.MarkRead(ctx, 11))
	require.NoError(t, svc.MarkRead(ctx, 11))
}

func TestRelativeAge_Boundaries(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want string
	}{
		{name: "under an hour", age: 30 * time.Minute, want: "1 hour ago"},
		{name: "one hour", age: time.Hour, want: "1 hour ago"},
		{name: "23 hours", age: 23 * time.Hour, want: "23 hours ago"},
		{name: "exactly a day", age: 24 * time.Hour, want: "1 day ago"},
		{name: "six days", age: 6 * 24 * time.Hour, want: "6 days ago"},
		{name: "exactly a week", age: 7 * 24 * time.Hour, want: "1 week ago"},
		{name: "13 days", age: 13 * 24 * time.Hour, want: "1 week ago"},
		{name: "three weeks", age: 21 * 24 * time.Hour, want: "3 weeks ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeAge(now, now.Add(-tt.age)))
		})
	}
}
