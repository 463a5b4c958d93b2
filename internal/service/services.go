// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

// Package service holds the client's workflow layer: each service wraps the
// server adapter and the local identity store with the sequencing, ordering,
// and validation rules a screen must not carry itself.
package service

import (
	"github.com/givelink/givelink/internal/adapter"
	"github.com/givelink/givelink/internal/config"
	"github.com/givelink/givelink/internal/logger"
	"github.com/givelink/givelink/internal/store"
	"github.com/givelink/givelink/internal/validators"
)

type ClientServices struct {
	Auth          AuthService
	Donations     DonationService
	Claims        ClaimService
	Inventory     InventoryService
	Notifications NotificationService
	Needs         NeedsService
	Directory     DirectoryService
	Profile       ProfileService
	Contact       ContactService
}

func NewClientServices(
	localStore store.IdentityStore,
	serverAdapter adapter.ServerAdapter,
	emailSender adapter.EmailSender,
	emailCfg config.ClientEmail,
	log *logger.Logger,
) *ClientServices {
	validator := validators.NewFormValidator()
	authSvc := NewAuthService(localStore, serverAdapter, validator, log)

	return &ClientServices{
		Auth:          authSvc,
		Donations:     NewDonationService(serverAdapter, authSvc, validator, log),
		Claims:        NewClaimService(serverAdapter, authSvc, log),
		Inventory:     NewInventoryService(serverAdapter, authSvc, log),
		Notifications: NewNotificationService(serverAdapter, localStore, authSvc, nil, log),
		Needs:         NewNeedsService(serverAdapter, authSvc, validator, log),
		Directory:     NewDirectoryService(serverAdapter, authSvc, log),
		Profile:       NewProfileService(serverAdapter, authSvc, validator, log),
		Contact:       NewContactService(emailSender, emailCfg, validator, log),
	}
}
