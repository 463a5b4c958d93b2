// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/givelink/givelink/internal/service"
	"github.com/givelink/givelink/internal/validators"
	"github.com/givelink/givelink/models"
)

// contactModel sends a message to the platform team, either as a contact
// request or as feedback. There is no retry queue; a failed send is reported
// and the text stays in the form.
type contactModel struct {
	ctx     context.Context
	contact service.ContactService

	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	focus   int

	sending bool
	status  string
	errMsg  string
}

const contactFieldCount = 3

func newContactModel(ctx context.Context, contact service.ContactService, session models.Session) *contactModel {
	name := newInput("your name", 40)
	name.SetValue(session.Username)
	name.Focus()

	email := newInput("your email", 40)
	email.SetValue(session.Email)

	message := textarea.New()
	message.Placeholder = "Your message"
	message.SetWidth(54)
	message.SetHeight(5)

	return &contactModel{
		ctx:     ctx,
		contact: contact,
		name:    name,
		email:   email,
		message: message,
	}
}

func (m *contactModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *contactModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(contactSentMsg); ok {
		m.sending = false
		if result.err != nil {
			if errors.Is(result.err, validators.ErrValidation) {
				m.errMsg = result.err.Error()
			} else {
				m.errMsg = humanizeNetworkError(result.err)
			}
			return m, nil
		}
		m.errMsg = ""
		m.message.SetValue("")
		if result.feedback {
			m.status = "Feedback sent. Thank you!"
		} else {
			m.status = "Message sent. We will get back to you."
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, func() tea.Msg { return navigateTo{page: "home"} }
		case "tab":
			m.cycleFocus(1)
			return m, nil
		case "shift+tab":
			m.cycleFocus(-1)
			return m, nil
		case "ctrl+s":
			return m.send(false)
		case "ctrl+f":
			return m.send(true)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case 0:
		m.name, cmd = m.name.Update(msg)
	case 1:
		m.email, cmd = m.email.Update(msg)
	default:
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

func (m *contactModel) cycleFocus(dir int) {
	switch m.focus {
	case 0:
		m.name.Blur()
	case 1:
		m.email.Blur()
	default:
		m.message.Blur()
	}

	m.focus = (m.focus + dir + contactFieldCount) % contactFieldCount

	switch m.focus {
	case 0:
		m.name.Focus()
	case 1:
		m.email.Focus()
	default:
		m.message.Focus()
	}
}

func (m *contactModel) send(feedback bool) (tea.Model, tea.Cmd) {
	if m.sending {
		return m, nil
	}

	msg := models.ContactMessage{
		Name:    strings.TrimSpace(m.name.Value()),
		Email:   strings.TrimSpace(m.email.Value()),
		Message: strings.TrimSpace(m.message.Value()),
	}

	m.errMsg = ""
	m.status = ""
	m.sending = true

	ctx, contact := m.ctx, m.contact
	return m, func() tea.Msg {
		var err error
		if feedback {
			err = contact.SendFeedback(ctx, msg)
		} else {
			err = contact.SendContact(ctx, msg)
		}
		return contactSentMsg{feedback: feedback, err: err}
	}
}

func (m *contactModel) View() string {
	var b strings.Builder
	b.WriteString(renderFormRow("Name", m.name.View()))
	b.WriteString(renderFormRow("Email", m.email.View()))
	b.WriteString("\nMessage:\n")
	b.WriteString(m.message.View())
	b.WriteString("\n")

	if m.sending {
		b.WriteString("\n[Sending...]\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage("CONTACT US", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+s: send │ ctrl+f: send as feedback │ esc: back")
}
