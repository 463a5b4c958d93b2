// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/givelink/givelink/internal/service"
	"github.com/givelink/givelink/models"
)

// navigateTo switches the active page of the router that receives it. An
// optional payload is re-dispatched to the new page after the switch.
type navigateTo struct {
	page    string
	payload tea.Msg
}

// Async results from screen-mount loads carry the navigation generation they
// were issued under. The router drops results whose generation is stale, so a
// response arriving after the user left the screen never mutates the page
// that replaced it.

type loginDoneMsg struct {
	session models.Session
	err     error
}

type registerDoneMsg struct {
	err error
}

type resetDoneMsg struct {
	err error
}

type myDonationsLoadedMsg struct {
	gen   int
	items []models.DonatedItem
	err   error
}

type donorStatsLoadedMsg struct {
	gen    int
	stats  models.DonorStats
	unread bool
	err    error
}

type imageUploadedMsg struct {
	filename string
	err      error
}

type submitDoneMsg struct {
	err error
}

type claimablesLoadedMsg struct {
	gen   int
	items []models.DonatedItem
	err   error
}

type claimDoneMsg struct {
	itemID  int64
	outcome service.ClaimOutcome
	err     error
}

type inventoryLoadedMsg struct {
	gen     int
	entries []models.InventoryEntry
	err     error
}

type completeDoneMsg struct {
	inventoryID int64
	err         error
}

type feedLoadedMsg struct {
	gen   int
	items []models.Notification
	err   error
}

type markReadDoneMsg struct {
	itemID int64
	err    error
}

type needsLoadedMsg struct {
	gen   int
	needs []models.UrgentNeed
	err   error
}

type needSavedMsg struct {
	err error
}

type needDeletedMsg struct {
	requirementID int64
	err           error
}

type ngosLoadedMsg struct {
	gen  int
	ngos []models.NGO
	err  error
}

type usersLoadedMsg struct {
	gen   int
	users []models.User
	err   error
}

type adminStatsLoadedMsg struct {
	gen   int
	stats models.AdminStats
	err   error
}

type homeCountsLoadedMsg struct {
	gen       int
	pending   int64
	accepted  int64
	completed int64
	err       error
}

type recentDonationsLoadedMsg struct {
	gen   int
	items []models.DonatedItem
	err   error
}

type profileLoadedMsg struct {
	gen  int
	user models.User
	err  error
}

type profileSavedMsg struct {
	err error
}

type contactSentMsg struct {
	feedback bool
	err      error
}

type accountDeletedMsg struct {
	err error
}
