// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ocr-batch/internal/auth"
	"github.com/MKhiriev/go-ocr-batch/internal/service"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

func cmdLoadSession(ctx context.Context, session auth.SessionProvider) tea.Cmd {
	return func() tea.Msg {
		return sessionLoadedMsg{err: session.Load(ctx)}
	}
}

func cmdSubmit(ctx context.Context, svc service.ClientSubmitService) tea.Cmd {
	return func() tea.Msg {
		result, err := svc.Submit(ctx)
		return submitDoneMsg{result: result, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: page, Payload: payload}
	}
}
