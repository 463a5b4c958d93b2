// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/givelink/givelink/internal/adapter"
	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/internal/store"
	"github.com/givelink/givelink/models"
)

type notificationService struct {
	adapter    adapter.ServerAdapter
	localStore store.IdentityStore
	auth       AuthService
	now        Clock
	logger     *logger.Logger
}

func NewNotificationService(serverAdapter adapter.ServerAdapter, localStore store.IdentityStore, auth AuthService, now Clock, log *logger.Logger) NotificationService {
	if now == nil {
		now = time.Now
	}
	return &notificationService{
		adapter:    serverAdapter,
		localStore: localStore,
		auth:       auth,
		now:        now,
		logger:     log,
	}
}

func (n *notificationService) Feed(ctx context.Context) ([]models.Notification, error) {
	items, readSet, err := n.qualifying(ctx)
	if err != nil {
		return nil, err
	}

	now := n.now()
	feed := make([]models.Notification, 0, len(items))
	for _, item := range items {
		feed = append(feed, models.Notification{
			ItemID:    item.ItemID.Int64(),
			ItemName:  item.ItemName,
			NGOName:   item.NGOName,
			Status:    item.Status,
			CreatedAt: item.CreatedAt.Time,
			AgeLabel:  RelativeAge(now, item.CreatedAt.Time),
			Read:      readSet[item.ItemID.Int64()],
		})
	}

	// Opening the feed counts as checking it.
	if err = n.localStore.SetLastNotificationCheck(ctx, now.UnixMilli()); err != nil {
		n.logger.Warn().
			Str("func", "notificationService.Feed").
			Err(err).
			Msg("failed to record feed check time")
	}

	return feed, nil
}

func (n *notificationService) MarkRead(ctx context.Context, itemID int64) error {
	if err := n.localStore.MarkNotificationRead(ctx, itemID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

func (n *notificationService) HasUnread(ctx context.Context) (bool, error) {
	items, readSet, err := n.qualifying(ctx)
	if err != nil {
		return false, err
	}

	lastCheck, err := n.localStore.LastNotificationCheck(ctx)
	if err != nil {
		return false, fmt.Errorf("read last notification check: %w", err)
	}

	for _, item := range items {
		if !readSet[item.ItemID.Int64()] {
			return true, nil
		}
		if item.CreatedAt.UnixMilli() > lastCheck {
			return true, nil
		}
	}
	return false, nil
}

// qualifying fetches the donor's items, drops Pending ones, sorts newest
// first, and loads the local read set.
func (n *notificationService) qualifying(ctx context.Context) ([]models.DonatedItem, map[int64]bool, error) {
	session, ok := n.auth.Current()
	if !ok {
		return nil, nil, ErrNotLoggedIn
	}

	items, err := n.adapter.ListUserDonations(ctx, session.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("list own donations: %w", err)
	}

	qualifying := items[:0]
	for _, item := range items {
		if item.Status.Is(models.StatusPending) {
			continue
		}
		qualifying = append(qualifying, item)
	}
	sort.SliceStable(qualifying, func(i, j int) bool {
		return qualifying[i].CreatedAt.After(qualifying[j].CreatedAt.Time)
	})

	readSet, err := n.localStore.ReadNotifications(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("read notifications state: %w", err)
	}

	return qualifying, readSet, nil
}

// RelativeAge renders now-createdAt as the feed's age label: hours under a
// day, days under a week, weeks beyond that, singular at exactly one.
func RelativeAge(now, createdAt time.Time) string {
	age := now.Sub(createdAt)
	if age < 0 {
		age = 0
	}

	switch {
	case age < 24*time.Hour:
		return pluralise(int64(age.Hours()), "hour")
	case age < 7*24*time.Hour:
		return pluralise(int64(age.Hours()/24), "day")
	default:
		return pluralise(int64(age.Hours()/(24*7)), "week")
	}
}

func pluralise(n int64, unit string) string {
	if n <= 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
