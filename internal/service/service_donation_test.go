// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/internal/mock"
	"github.com/givelink/givelink/internal/validators"
	"github.com/givelink/givelink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDonations(t *testing.T, session models.Session) (DonationService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStore := mock.NewMockIdentityStore(ctrl)
	auth := NewAuthService(mockStore, mockAdapter, validators.NewFormValidator(), logger.Nop())
	if session.UserID != 0 {
		restoreSession(t, auth, mockStore, session)
	}

	return NewDonationService(mockAdapter, auth, validators.NewFormValidator(), logger.Nop()), mockAdapter
}

func validForm() DonationForm {
	return DonationForm{
		ItemName:      "Winter jackets",
		ItemCondition: "Good",
		Section:       "Clothes",
		Quantity:      4,
		ImageFilename: "u3_jacket.jpg",
	}
}

func TestSubmit_Success(t *testing.T) {
	svc, mockAdapter := newTestDonations(t, donorSession)
	ctx := context.Background()

	mockAdapter.EXPECT().SubmitDonation(ctx, models.DonationSubmission{
		UserID:        3,
		Username:      "ali",
		ItemName:      "Winter jackets",
		ItemCondition: "Good",
		Section:       "Clothes",
		Quantity:      4,
		ImageFilename: "u3_jacket.jpg",
	}).Return(nil)

	require.NoError(t, svc.Submit(ctx, validForm()))
}

func TestSubmit_GatedOnMissingImage(t *testing.T) {
	svc, _ := newTestDonations(t, donorSession)

	form := validForm()
	form.ImageFilename = ""

	err := svc.Submit(context.Background(), form)
	require.ErrorIs(t, err, ErrImageRequired)
}

func TestSubmit_GatedOnEmptyFields(t *testing.T) {
	svc, _ := newTestDonations(t, donorSession)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*DonationForm)
	}{
		{name: "empty item name", mutate: func(f *DonationForm) { f.ItemName = "" }},
		{name: "empty condition", mutate: func(f *DonationForm) { f.ItemCondition = "" }},
		{name: "empty section", mutate: func(f *DonationForm) { f.Section = "" }},
		{name: "zero quantity", mutate: func(f *DonationForm) { f.Quantity = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := svc.Submit(ctx, form)
			require.ErrorIs(t, err, validators.ErrValidation)
		})
	}
}

func TestSubmit_ServerFailureKeepsFormUsable(t *testing.T) {
	svc, mockAdapter := newTestDonations(t, donorSession)
	ctx := context.Background()

	wantErr := errors.New("server unavailable")
	mockAdapter.EXPECT().SubmitDonation(ctx, gomock.Any()).Return(wantErr)

	err := svc.Submit(ctx, validForm())
	require.ErrorIs(t, err, wantErr)
}

func TestSubmit_NotLoggedIn(t *testing.T) {
	svc, _ := newTestDonations(t, models.Session{})

	err := svc.Submit(context.Background(), validForm())
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAttachImage_ReturnsServerFilename(t *testing.T) {
	svc, mockAdapter := newTestDonations(t, donorSession)
	ctx := context.Background()

	mockAdapter.EXPECT().UploadImage(ctx, "jacket.jpg", gomock.Any()).Return("u3_jacket.jpg", nil)

	got, err := svc.AttachImage(ctx, "jacket.jpg", strings.NewReader("bytes"))

	require.NoError(t, err)
	assert.Equal(t, "u3_jacket.jpg", got)
}

func TestListMine_Sorted(t *testing.T) {
	svc, mockAdapter := newTestDonations(t, donorSession)
	ctx := context.Background()

	mockAdapter.EXPECT().ListUserDonations(ctx, int64(3)).Return([]models.DonatedItem{
		{ItemID: 1, Status: models.StatusPending},
		{ItemID: 2, Status: models.StatusAccepted},
	}, nil)

	got, err := svc.ListMine(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.APIInt(2), got[0].ItemID)
}

func TestStats(t *testing.T) {
	svc, mockAdapter := newTestDonations(t, donorSession)
	ctx := context.Background()

	mockAdapter.EXPECT().DonorStats(ctx, int64(3)).Return(models.DonorStats{Pending: 2, Accepted: 1, Completed: 4}, nil)

	got, err := svc.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Total())
}
