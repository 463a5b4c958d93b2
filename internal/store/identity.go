// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/models"
)

// Keys of the local_state table. They mirror what each screen reads so a
// session survives process restarts field by field.
const (
	keyUserID    = "user_id"
	keyRoleID    = "role_id"
	keyUsername  = "username"
	keyNgoID     = "ngo_id"
	keyNGOName   = "ngoname"
	keyEmail     = "email"
	keyCity      = "city"
	keyReadSet   = "read_notifications"
	keyLastCheck = "last_notification_check"
)

type identityRepository struct {
	*DB
	logger *logger.Logger

	// guards the read-modify-write cycle on the read_notifications value.
	mu sync.Mutex
}

// NewIdentityStore builds the sqlite-backed [IdentityStore].
func NewIdentityStore(db *DB, logger *logger.Logger) IdentityStore {
	return &identityRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *identityRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	pairs := map[string]string{
		keyUserID:   strconv.FormatInt(session.UserID, 10),
		keyRoleID:   strconv.FormatInt(int64(session.RoleID), 10),
		keyUsername: session.Username,
		keyNgoID:    strconv.FormatInt(session.NgoID, 10),
		keyNGOName:  session.NGOName,
		keyEmail:    session.Email,
		keyCity:     session.City,
	}
	for key, value := range pairs {
		if err := r.set(ctx, key, value); err != nil {
			log.Err(err).
				Str("func", "identityRepository.SaveSession").
				Str("key", key).
				Msg("failed to persist session field")
			return fmt.Errorf("failed to save session field %s: %w", key, err)
		}
	}

	return nil
}

func (r *identityRepository) Session(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	rawUserID, err := r.get(ctx, keyUserID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "identityRepository.Session").
			Msg("failed to read session")
		return models.Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	userID, err := strconv.ParseInt(rawUserID, 10, 64)
	if err != nil || userID == 0 {
		return models.Session{}, ErrSessionNotFound
	}

	session := models.Session{UserID: userID}
	session.RoleID = models.Role(r.getInt(ctx, keyRoleID))
	session.NgoID = r.getInt(ctx, keyNgoID)
	session.Username, _ = r.get(ctx, keyUsername)
	session.NGOName, _ = r.get(ctx, keyNGOName)
	session.Email, _ = r.get(ctx, keyEmail)
	session.City, _ = r.get(ctx, keyCity)

	return session, nil
}

func (r *identityRepository) ClearSession(ctx context.Context) error {
	log := logger.FromContext(ctx)

	keys := []string{
		keyUserID, keyRoleID, keyUsername, keyNgoID, keyNGOName,
		keyEmail, keyCity, keyReadSet, keyLastCheck,
	}
	for _, key := range keys {
		if _, err := r.DB.ExecContext(ctx, deleteLocalState, key); err != nil {
			log.Err(err).
				Str("func", "identityRepository.ClearSession").
				Str("key", key).
				Msg("failed to delete session field")
			return fmt.Errorf("failed to clear session field %s: %w", key, err)
		}
	}

	return nil
}

func (r *identityRepository) ReadNotifications(ctx context.Context) (map[int64]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.readSetLocked(ctx)
}

func (r *identityRepository) MarkNotificationRead(ctx context.Context, itemID int64) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	set, err := r.readSetLocked(ctx)
	if err != nil {
		return err
	}
	if set[itemID] {
		return nil
	}
	set[itemID] = true

	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	payload, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode read notifications: %w", err)
	}
	if err = r.set(ctx, keyReadSet, string(payload)); err != nil {
		log.Err(err).
			Str("func", "identityRepository.MarkNotificationRead").
			Int64("item_id", itemID).
			Msg("failed to persist read notifications")
		return fmt.Errorf("failed to save read notifications: %w", err)
	}

	return nil
}

func (r *identityRepository) LastNotificationCheck(ctx context.Context) (int64, error) {
	raw, err := r.get(ctx, keyLastCheck)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read last notification check: %w", err)
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, nil
	}
	return ms, nil
}

func (r *identityRepository) SetLastNotificationCheck(ctx context.Context, unixMillis int64) error {
	if err := r.set(ctx, keyLastCheck, strconv.FormatInt(unixMillis, 10)); err != nil {
		return fmt.Errorf("failed to save last notification check: %w", err)
	}
	return nil
}

func (r *identityRepository) readSetLocked(ctx context.Context) (map[int64]bool, error) {
	set := make(map[int64]bool)

	raw, err := r.get(ctx, keyReadSet)
	if errors.Is(err, sql.ErrNoRows) {
		return set, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read notifications read set: %w", err)
	}

	var ids []int64
	if err = json.Unmarshal([]byte(raw), &ids); err != nil {
		// A corrupted value must not lock the user out of the feed; start
		// a fresh read set instead.
		r.logger.Warn().
			Str("func", "identityRepository.readSetLocked").
			Msg("discarding unreadable notifications read set")
		return set, nil
	}
	for _, id := range ids {
		set[id] = true
	}

	return set, nil
}

func (r *identityRepository) set(ctx context.Context, key, value string) error {
	_, err := r.DB.ExecContext(ctx, upsertLocalState, key, value)
	return err
}

func (r *identityRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.DB.QueryRowContext(ctx, getLocalState, key).Scan(&value)
	return value, err
}

func (r *identityRepository) getInt(ctx context.Context, key string) int64 {
	raw, err := r.get(ctx, key)
	if err != nil {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
