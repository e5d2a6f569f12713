// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-ocr-batch/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type sessionLoadedMsg struct {
	err error
}

type signedOutMsg struct {
	logoutURL string
}

type submitDoneMsg struct {
	result models.SubmissionResult
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
