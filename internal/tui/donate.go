// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/givelink/givelink/internal/service"
	"github.com/givelink/givelink/internal/validators"
)

// donateModel collects a new donation. The image travels first: the user
// points at a local file, uploads it, and only once the server has handed a
// filename back does submission go through. Submitting keeps the entered
// values on failure so nothing is retyped.
type donateModel struct {
	ctx       context.Context
	donations service.DonationService

	inputs []textinput.Model
	focus  int

	uploadedFilename string
	uploading        bool
	submitting       bool
	status           string
	errMsg           string
}

const (
	donateFieldItemName = iota
	donateFieldCondition
	donateFieldSection
	donateFieldQuantity
	donateFieldImagePath
)

func newDonateModel(ctx context.Context, donations service.DonationService) *donateModel {
	m := &donateModel{
		ctx:       ctx,
		donations: donations,
		inputs: []textinput.Model{
			newInput("item name", 40),
			newInput("condition (New / Used)", 40),
			newInput("section (Clothes, Food, ...)", 40),
			newInput("quantity", 40),
			newInput("/path/to/image", 40),
		},
	}
	m.inputs[0].Focus()
	return m
}

func (m *donateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *donateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case imageUploadedMsg:
		m.uploading = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.uploadedFilename = msg.filename
		m.errMsg = ""
		m.status = "Image uploaded"
		return m, nil
	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			switch {
			case errors.Is(msg.err, service.ErrImageRequired):
				m.errMsg = "Upload an image before submitting"
			case errors.Is(msg.err, validators.ErrValidation):
				m.errMsg = msg.err.Error()
			default:
				m.errMsg = humanizeNetworkError(msg.err)
			}
			return m, nil
		}
		m.reset()
		m.status = "Donation submitted!"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return navigateTo{page: "home"} }
		case "tab":
			m.focus = focusNext(m.inputs, m.focus)
			return m, nil
		case "shift+tab":
			m.focus = focusPrev(m.inputs, m.focus)
			return m, nil
		case "ctrl+u":
			if m.uploading {
				return m, nil
			}
			path := strings.TrimSpace(m.inputs[donateFieldImagePath].Value())
			if path == "" {
				m.errMsg = "Enter an image path first"
				return m, nil
			}
			m.errMsg = ""
			m.status = ""
			m.uploading = true
			return m, m.cmdUpload(path)
		case "enter":
			if m.submitting {
				return m, nil
			}

			form, err := m.collectForm()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.submitting = true
			return m, m.cmdSubmit(form)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *donateModel) collectForm() (service.DonationForm, error) {
	quantityRaw := strings.TrimSpace(m.inputs[donateFieldQuantity].Value())
	quantity, err := strconv.ParseInt(quantityRaw, 10, 64)
	if err != nil || quantity <= 0 {
		return service.DonationForm{}, errors.New("quantity must be a positive number")
	}

	return service.DonationForm{
		ItemName:      strings.TrimSpace(m.inputs[donateFieldItemName].Value()),
		ItemCondition: strings.TrimSpace(m.inputs[donateFieldCondition].Value()),
		Section:       strings.TrimSpace(m.inputs[donateFieldSection].Value()),
		Quantity:      quantity,
		ImageFilename: m.uploadedFilename,
	}, nil
}

func (m *donateModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.inputs[m.focus].Blur()
	m.focus = 0
	m.inputs[0].Focus()
	m.uploadedFilename = ""
	m.errMsg = ""
}

func (m *donateModel) View() string {
	var b strings.Builder
	b.WriteString(renderFormRow("Item", m.inputs[donateFieldItemName].View()))
	b.WriteString(renderFormRow("Condition", m.inputs[donateFieldCondition].View()))
	b.WriteString(renderFormRow("Section", m.inputs[donateFieldSection].View()))
	b.WriteString(renderFormRow("Quantity", m.inputs[donateFieldQuantity].View()))
	b.WriteString(renderFormRow("Image", m.inputs[donateFieldImagePath].View()))

	b.WriteString("\nUploaded  : ")
	switch {
	case m.uploading:
		b.WriteString("uploading...")
	case m.uploadedFilename != "":
		b.WriteString(m.uploadedFilename + " ✓")
	default:
		b.WriteString("(none — ctrl+u to upload)")
	}
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Submitting...]\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage("DONATE AN ITEM", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+u: upload image │ enter: submit │ esc: back")
}

func (m *donateModel) cmdUpload(path string) tea.Cmd {
	ctx := m.ctx
	donations := m.donations

	return func() tea.Msg {
		file, err := os.Open(path)
		if err != nil {
			return imageUploadedMsg{err: errors.New("image file not found")}
		}
		defer file.Close()

		filename, err := donations.AttachImage(ctx, filepath.Base(path), file)
		return imageUploadedMsg{filename: filename, err: err}
	}
}

func (m *donateModel) cmdSubmit(form service.DonationForm) tea.Cmd {
	ctx := m.ctx
	donations := m.donations

	return func() tea.Msg {
		return submitDoneMsg{err: donations.Submit(ctx, form)}
	}
}
