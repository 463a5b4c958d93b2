// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/internal/mock"
	"github.com/givelink/givelink/internal/store"
	"github.com/givelink/givelink/internal/validators"
	"github.com/givelink/givelink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuth(t *testing.T) (AuthService, *mock.MockServerAdapter, *mock.MockIdentityStore) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStore := mock.NewMockIdentityStore(ctrl)
	auth := NewAuthService(mockStore, mockAdapter, validators.NewFormValidator(), logger.Nop())

	return auth, mockAdapter, mockStore
}

// restoreSession seeds a logged-in session through Restore.
func restoreSession(t *testing.T, auth AuthService, mockStore *mock.MockIdentityStore, session models.Session) {
	t.Helper()
	ctx := context.Background()

	mockStore.EXPECT().Session(ctx).Return(session, nil)
	got, err := auth.Restore(ctx)
	require.NoError(t, err)
	require.Equal(t, session, got)
}

func TestLogin_SavesSession(t *testing.T) {
	auth, mockAdapter, mockStore := newTestAuth(t)
	ctx := context.Background()

	session := models.Session{UserID: 7, RoleID: models.RoleNGO, NgoID: 42, NGOName: "Helping Hands"}
	creds := models.Credentials{Email: "f@hh.org", Password: "secret123"}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, creds).Return(models.LoginResult{Session: session}, nil),
		mockStore.EXPECT().SaveSession(ctx, session).Return(nil),
	)

	got, err := auth.Login(ctx, creds)

	require.NoError(t, err)
	assert.Equal(t, session, got)

	current, ok := auth.Current()
	require.True(t, ok)
	assert.Equal(t, session, current)
}

func TestLogin_BlockedAccountRejected(t *testing.T) {
	auth, mockAdapter, _ := newTestAuth(t)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).
		Return(models.LoginResult{Session: models.Session{UserID: 5}, Blocked: true}, nil)

	_, err := auth.Login(ctx, models.Credentials{Email: "x@y.z", Password: "secret123"})

	require.ErrorIs(t, err, ErrAccountBlocked)
	_, ok := auth.Current()
	assert.False(t, ok)
}

func TestLogin_InvalidFormNoNetworkCall(t *testing.T) {
	auth, _, _ := newTestAuth(t)

	_, err := auth.Login(context.Background(), models.Credentials{Email: "not-an-email", Password: "secret123"})

	require.ErrorIs(t, err, validators.ErrValidation)
}

func TestRestore_NoLocalSession(t *testing.T) {
	auth, _, mockStore := newTestAuth(t)
	ctx := context.Background()

	mockStore.EXPECT().Session(ctx).Return(models.Session{}, store.ErrSessionNotFound)

	_, err := auth.Restore(ctx)
	require.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestLogout_ClearsSession(t *testing.T) {
	auth, _, mockStore := newTestAuth(t)
	ctx := context.Background()

	restoreSession(t, auth, mockStore, models.Session{UserID: 3, RoleID: models.RoleDonor})

	mockStore.EXPECT().ClearSession(ctx).Return(nil)
	require.NoError(t, auth.Logout(ctx))

	_, ok := auth.Current()
	assert.False(t, ok)
}

func TestDeleteAccount_DonorUsesUserEndpoint(t *testing.T) {
	auth, mockAdapter, mockStore := newTestAuth(t)
	ctx := context.Background()

	restoreSession(t, auth, mockStore, models.Session{UserID: 3, RoleID: models.RoleDonor})

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteUser(ctx, int64(3)).Return(nil),
		mockStore.EXPECT().ClearSession(ctx).Return(nil),
	)

	require.NoError(t, auth.DeleteAccount(ctx))
	_, ok := auth.Current()
	assert.False(t, ok)
}

func TestDeleteAccount_NGOUsesNGOEndpoint(t *testing.T) {
	auth, mockAdapter, mockStore := newTestAuth(t)
	ctx := context.Background()

	restoreSession(t, auth, mockStore, models.Session{UserID: 7, RoleID: models.RoleNGO, NgoID: 42, NGOName: "Helping Hands"})

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteNGO(ctx, int64(42)).Return(nil),
		mockStore.EXPECT().ClearSession(ctx).Return(nil),
	)

	require.NoError(t, auth.DeleteAccount(ctx))
}

func TestDeleteAccount_NotLoggedIn(t *testing.T) {
	auth, _, _ := newTestAuth(t)

	err := auth.DeleteAccount(context.Background())
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestRegisterDonor_ValidationBeforeNetwork(t *testing.T) {
	auth, _, _ := newTestAuth(t)

	err := auth.RegisterDonor(context.Background(), models.DonorRegistration{Username: "ali"})
	require.ErrorIs(t, err, validators.ErrValidation)
}

func TestRegisterNGO_Success(t *testing.T) {
	auth, mockAdapter, _ := newTestAuth(t)
	ctx := context.Background()

	reg := models.NGORegistration{
		NGOName:  "Helping Hands",
		Email:    "contact@hh.org",
		Phone:    "03001234567",
		City:     "Karachi",
		Address:  "12 Shahrah-e-Faisal",
		Password: "secret123",
	}
	mockAdapter.EXPECT().RegisterNGO(ctx, reg).Return(nil)

	require.NoError(t, auth.RegisterNGO(ctx, reg))
}

func TestResetPassword_ServerError(t *testing.T) {
	auth, mockAdapter, _ := newTestAuth(t)
	ctx := context.Background()

	wantErr := errors.New("no such account")
	mockAdapter.EXPECT().ResetPassword(ctx, "x@y.z", "secret123").Return(wantErr)

	err := auth.ResetPassword(ctx, "x@y.z", "secret123")
	require.ErrorIs(t, err, wantErr)
}
