// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/givelink/givelink/internal/adapter"
	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/internal/validators"
	"github.com/givelink/givelink/models"
)

// DonationForm is what the donate screen collects. Identity fields are filled
// from the session at submit time, not by the form.
type DonationForm struct {
	ItemName      string
	ItemCondition string
	Section       string
	Quantity      int64
	// ImageFilename is the server-issued name returned by AttachImage.
	// Submission is gated on its presence.
	ImageFilename string
}

type donationService struct {
	adapter   adapter.ServerAdapter
	auth      AuthService
	validator validators.Validator
	logger    *logger.Logger
}

func NewDonationService(serverAdapter adapter.ServerAdapter, auth AuthService, validator validators.Validator, log *logger.Logger) DonationService {
	return &donationService{
		adapter:   serverAdapter,
		auth:      auth,
		validator: validator,
		logger:    log,
	}
}

func (d *donationService) AttachImage(ctx context.Context, filename string, image io.Reader) (string, error) {
	uploaded, err := d.adapter.UploadImage(ctx, filename, image)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	d.logger.Debug().
		Str("func", "donationService.AttachImage").
		Str("filename", uploaded).
		Msg("image uploaded")
	return uploaded, nil
}

func (d *donationService) Submit(ctx context.Context, form DonationForm) error {
	session, ok := d.auth.Current()
	if !ok {
		return ErrNotLoggedIn
	}
	if form.ImageFilename == "" {
		return ErrImageRequired
	}

	sub := models.DonationSubmission{
		UserID:        session.UserID,
		Username:      session.Username,
		ItemName:      form.ItemName,
		ItemCondition: form.ItemCondition,
		Section:       form.Section,
		Quantity:      form.Quantity,
		ImageFilename: form.ImageFilename,
	}
	if err := d.validator.Validate(sub); err != nil {
		return err
	}

	// Exactly one create call per submission. On failure the caller keeps
	// the entered values so resubmission stays possible.
	if err := d.adapter.SubmitDonation(ctx, sub); err != nil {
		return fmt.Errorf("submit donation: %w", err)
	}

	d.logger.Info().
		Str("func", "donationService.Submit").
		Int64("user_id", session.UserID).
		Str("item_name", form.ItemName).
		Msg("donation submitted")
	return nil
}

func (d *donationService) ListMine(ctx context.Context) ([]models.DonatedItem, error) {
	session, ok := d.auth.Current()
	if !ok {
		return nil, ErrNotLoggedIn
	}

	items, err := d.adapter.ListUserDonations(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("list own donations: %w", err)
	}

	SortDonationsForDisplay(items)
	return items, nil
}

func (d *donationService) Stats(ctx context.Context) (models.DonorStats, error) {
	session, ok := d.auth.Current()
	if !ok {
		return models.DonorStats{}, ErrNotLoggedIn
	}

	stats, err := d.adapter.DonorStats(ctx, session.UserID)
	if err != nil {
		return models.DonorStats{}, fmt.Errorf("donor stats: %w", err)
	}
	return stats, nil
}

func (d *donationService) ImageURL(filename string) string {
	return d.adapter.ImageURL(filename)
}
