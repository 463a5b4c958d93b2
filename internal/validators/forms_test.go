// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package validators

import (
	"testing"

	"github.com/givelink/givelink/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormValidator_Credentials(t *testing.T) {
	v := NewFormValidator()

	tests := []struct {
		name    string
		creds   models.Credentials
		wantErr bool
	}{
		{
			name:  "valid",
			creds: models.Credentials{Email: "donor@example.com", Password: "secret1"},
		},
		{
			name:    "missing email",
			creds:   models.Credentials{Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			creds:   models.Credentials{Email: "not-an-email", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "short password",
			creds:   models.Credentials{Email: "donor@example.com", Password: "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.creds)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormValidator_DonationSubmission(t *testing.T) {
	v := NewFormValidator()

	valid := models.DonationSubmission{
		UserID:        7,
		Username:      "alice",
		ItemName:      "Winter jackets",
		ItemCondition: "used",
		Section:       "Donor",
		Quantity:      3,
		ImageFilename: "img_123.jpg",
	}
	require.NoError(t, v.Validate(valid))

	noImage := valid
	noImage.ImageFilename = ""
	err := v.Validate(noImage)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "imagefilename is required")

	zeroQuantity := valid
	zeroQuantity.Quantity = 0
	assert.ErrorIs(t, v.Validate(zeroQuantity), ErrValidation)
}

func TestFormValidator_UrgentNeed(t *testing.T) {
	v := NewFormValidator()

	valid := models.UrgentNeed{
		NgoID:    4,
		NGOName:  "Helping Hands",
		ItemName: "Blankets",
		Quantity: 20,
		Priority: 5,
	}
	require.NoError(t, v.Validate(valid))

	// Priority is optional for backward compatibility with older records.
	noPriority := valid
	noPriority.Priority = 0
	assert.NoError(t, v.Validate(noPriority))

	outOfRange := valid
	outOfRange.Priority = 6
	assert.ErrorIs(t, v.Validate(outOfRange), ErrValidation)
}

func TestFormValidator_UnsupportedValue(t *testing.T) {
	v := NewFormValidator()

	err := v.Validate(42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}
