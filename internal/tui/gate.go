// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-ocr-batch/internal/app"
	"github.com/MKhiriev/go-ocr-batch/internal/auth"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// GateModel blocks the batch screen until the identity session is
// authenticated. It shows a loading, error or sign-in view otherwise.
type GateModel struct {
	ctx     context.Context
	session auth.SessionProvider
	tokens  TokenSink

	spinner   spinner.Model
	logoutURL string
	status    string
}

func NewGateModel(ctx context.Context, session auth.SessionProvider, tokens TokenSink) *GateModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &GateModel{
		ctx:     ctx,
		session: session,
		tokens:  tokens,
		spinner: s,
	}
}

func (m *GateModel) Init() tea.Cmd {
	if m.session.IsLoading() {
		return tea.Batch(m.spinner.Tick, cmdLoadSession(m.ctx, m.session))
	}
	return nil
}

func (m *GateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionLoadedMsg:
		if m.session.IsAuthenticated() {
			m.status = ""
			m.logoutURL = ""
			if user, ok := m.session.User(); ok && m.tokens != nil {
				m.tokens.SetToken(user.AccessToken)
			}
			return m, navigate(pageBatch, nil)
		}
		return m, nil
	case signedOutMsg:
		if m.tokens != nil {
			m.tokens.SetToken("")
		}
		m.logoutURL = msg.logoutURL
		m.status = app.MsgSignedOut
		return m, nil
	case spinner.TickMsg:
		if m.session.IsLoading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.enter):
		if m.session.IsAuthenticated() {
			return m, navigate(pageBatch, nil)
		}
	case key.Matches(keyMsg, keys.reload):
		if !m.session.IsLoading() {
			m.status = ""
			return m, tea.Batch(m.spinner.Tick, cmdLoadSession(m.ctx, m.session))
		}
	}

	return m, nil
}

func (m *GateModel) View() string {
	var b strings.Builder

	switch {
	case m.session.IsLoading():
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(app.MsgSessionLoading)
	case m.session.Err() != nil:
		b.WriteString(errorStyle.Render("Error: " + m.session.Err().Error()))
		b.WriteString("\n\n")
		b.WriteString(app.MsgSignInRequired)
	case m.session.IsAuthenticated():
		user, _ := m.session.User()
		b.WriteString("Hello, ")
		b.WriteString(displayName(user.Profile.Email, user.Profile.Name))
	default:
		if m.status != "" {
			b.WriteString(okStyle.Render(m.status))
			b.WriteString("\n\n")
		}
		b.WriteString(app.MsgSignInRequired)
		b.WriteString("\n")
		b.WriteString("Pass the tokens issued by the identity provider with\n")
		b.WriteString("--id-token/--access-token or AUTH_ID_TOKEN/AUTH_ACCESS_TOKEN.")
	}

	if m.logoutURL != "" {
		b.WriteString("\n\nFinish signing out in the browser:\n")
		b.WriteString(m.logoutURL)
	}

	hotKeys := "r: reload │ q: quit │ v: version"
	if m.session.IsAuthenticated() {
		hotKeys = "enter: continue │ q: quit │ v: version"
	}

	return renderPage("SIGN IN", b.String(), hotKeys)
}

func displayName(email, name string) string {
	if email != "" {
		return email
	}
	if name != "" {
		return name
	}
	return "unknown user"
}
