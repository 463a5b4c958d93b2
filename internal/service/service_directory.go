// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/givelink/givelink/internal/adapter"
	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/models"
)

type directoryService struct {
	adapter adapter.ServerAdapter
	auth    AuthService
	logger  *logger.Logger
}

func NewDirectoryService(serverAdapter adapter.ServerAdapter, auth AuthService, log *logger.Logger) DirectoryService {
	return &directoryService{
		adapter: serverAdapter,
		auth:    auth,
		logger:  log,
	}
}

func (s *directoryService) ListNGOs(ctx context.Context) ([]models.NGO, error) {
	ngos, err := s.adapter.ListNGOs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list organisations: %w", err)
	}

	sort.SliceStable(ngos, func(i, j int) bool {
		return strings.ToLower(ngos[i].NGOName) < strings.ToLower(ngos[j].NGOName)
	})
	return ngos, nil
}

func (s *directoryService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.adapter.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *directoryService) AdminStats(ctx context.Context) (models.AdminStats, error) {
	stats, err := s.adapter.AdminStats(ctx)
	if err != nil {
		return models.AdminStats{}, fmt.Errorf("admin stats: %w", err)
	}
	return stats, nil
}

// HomeCounts gathers the three NGO home screen numbers. The calls touch
// disjoint view state and carry no ordering requirement between them.
func (s *directoryService) HomeCounts(ctx context.Context) (int64, int64, int64, error) {
	session, ok := s.auth.Current()
	if !ok {
		return 0, 0, 0, ErrNotLoggedIn
	}

	pending, err := s.adapter.PendingDonationCount(ctx)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("pending count: %w", err)
	}

	accepted, completed, err := s.adapter.NgoDonationCounts(ctx, session.NgoID)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("ngo counts: %w", err)
	}

	return pending, accepted, completed, nil
}
