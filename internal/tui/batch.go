// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-ocr-batch/internal/app"
	"github.com/MKhiriev/go-ocr-batch/internal/auth"
	"github.com/MKhiriev/go-ocr-batch/internal/files"
	"github.com/MKhiriev/go-ocr-batch/internal/service"
	"github.com/MKhiriev/go-ocr-batch/internal/store"
	"github.com/MKhiriev/go-ocr-batch/models"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// BatchModel is the main screen: the pending batch, its OCR flags, the
// submit action and the last response.
type BatchModel struct {
	ctx     context.Context
	batch   store.BatchStore
	submit  service.ClientSubmitService
	session auth.SessionProvider
	tokens  TokenSink
	gated   bool

	openFile func(path string) (models.File, error)
	describe func(file models.File) (files.Preview, error)

	idx      int
	previews map[models.File]files.Preview

	picking   bool
	picker    filepicker.Model
	pickerDir string

	submitting bool
	spinner    spinner.Model

	status string
	warn   string
	errMsg string
}

func NewBatchModel(
	ctx context.Context,
	batch store.BatchStore,
	submit service.ClientSubmitService,
	session auth.SessionProvider,
	tokens TokenSink,
	gated bool,
) *BatchModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &BatchModel{
		ctx:     ctx,
		batch:   batch,
		submit:  submit,
		session: session,
		tokens:  tokens,
		gated:   gated,
		openFile: func(path string) (models.File, error) {
			f, err := files.Open(path)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
		describe: files.Describe,
		previews: make(map[models.File]files.Preview),
		spinner:  s,
	}
}

func (m *BatchModel) Init() tea.Cmd {
	return nil
}

func (m *BatchModel) capturesInput() bool {
	return m.picking
}

func (m *BatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.status = ""
			m.errMsg = submitErrorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.warn = ""
		m.status = app.MsgUploadSucceeded
		m.syncPreviews()
		return m, cmdClearStatus()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = app.MsgCopied
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.picking {
		return m.updatePicker(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < m.batch.Len()-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.add):
		return m.openPicker()
	case key.Matches(keyMsg, keys.toggle):
		m.handleStoreErr(m.batch.ToggleOCR(m.idx))
	case key.Matches(keyMsg, keys.remove):
		if m.handleStoreErr(m.batch.Remove(m.idx)) {
			m.syncPreviews()
		}
	case key.Matches(keyMsg, keys.clear):
		if m.handleStoreErr(m.batch.Clear()) {
			m.warn = ""
			m.syncPreviews()
		}
	case key.Matches(keyMsg, keys.submit):
		return m.startSubmit()
	case key.Matches(keyMsg, keys.copy):
		if result, ok := m.submit.LastResult(); ok {
			return m, cmdCopyToClipboard(result.Pretty())
		}
	case key.Matches(keyMsg, keys.signOut):
		if m.gated && !m.busy() {
			return m, navigate(pageGate, signedOutMsg{logoutURL: m.session.SignOut()})
		}
	}

	return m, nil
}

func (m *BatchModel) openPicker() (tea.Model, tea.Cmd) {
	if m.busy() {
		m.errMsg = app.MsgSubmitInProgress
		return m, nil
	}
	if m.batch.Len() >= store.MaxBatchSize {
		m.warn = app.MsgBatchFull + " " + app.MsgSelectUpTo
		return m, nil
	}

	m.errMsg = ""
	m.picking = true
	m.picker = newImagePicker(m.pickerDir)
	return m, m.picker.Init()
}

func (m *BatchModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		m.picking = false
		m.pickerDir = filepath.Dir(path)
		m.addPath(path)
		return m, nil
	}
	if didSelect, path := m.picker.DidSelectDisabledFile(msg); didSelect {
		m.errMsg = fmt.Sprintf("%s: %s", filepath.Base(path), app.MsgNotAnImage)
	}

	return m, cmd
}

// addPath sniffs path and appends it to the batch.
func (m *BatchModel) addPath(path string) {
	file, err := m.openFile(path)
	if err != nil {
		if errors.Is(err, files.ErrNotImage) {
			m.errMsg = fmt.Sprintf("%s: %s", filepath.Base(path), app.MsgNotAnImage)
		} else {
			m.errMsg = err.Error()
		}
		return
	}

	added, err := m.batch.Add(file)
	switch {
	case errors.Is(err, store.ErrBatchFull):
		m.warn = app.MsgBatchFull + " " + app.MsgSelectUpTo
	case errors.Is(err, store.ErrSubmitInProgress):
		m.errMsg = app.MsgSubmitInProgress
	case err != nil:
		m.errMsg = err.Error()
	}

	if added > 0 {
		m.errMsg = ""
		if p, derr := m.describe(file); derr == nil {
			m.previews[file] = p
		}
		m.status = "Added " + file.Name()
		m.idx = m.batch.Len() - 1
	}
}

// busy reports whether a submit cycle is running or about to start.
func (m *BatchModel) busy() bool {
	return m.submitting || m.batch.Submitting()
}

func (m *BatchModel) startSubmit() (tea.Model, tea.Cmd) {
	if m.busy() {
		return m, nil
	}
	if m.batch.Len() == 0 {
		m.errMsg = app.MsgNoImagesSelected + " " + app.MsgSelectUpTo
		return m, nil
	}

	m.submitting = true
	m.status = ""
	m.errMsg = ""
	return m, tea.Batch(m.spinner.Tick, cmdSubmit(m.ctx, m.submit))
}

// handleStoreErr renders a store error and reports whether the call
// succeeded.
func (m *BatchModel) handleStoreErr(err error) bool {
	switch {
	case err == nil:
		m.errMsg = ""
		return true
	case errors.Is(err, store.ErrSubmitInProgress):
		m.errMsg = app.MsgSubmitInProgress
	case errors.Is(err, store.ErrIndexOutOfRange):
		// nothing under the cursor
	default:
		m.errMsg = err.Error()
	}
	return false
}

// syncPreviews drops previews of items no longer in the batch and keeps the
// cursor in range.
func (m *BatchModel) syncPreviews() {
	items := m.batch.Items()

	keep := make(map[models.File]files.Preview, len(items))
	for _, it := range items {
		if p, ok := m.previews[it.File]; ok {
			keep[it.File] = p
		}
	}
	m.previews = keep

	if m.idx >= len(items) {
		m.idx = len(items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *BatchModel) View() string {
	if m.picking {
		var b strings.Builder
		b.WriteString(m.picker.CurrentDirectory)
		b.WriteString("\n\n")
		b.WriteString(m.picker.View())
		if m.errMsg != "" {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(m.errMsg))
		}
		return renderPage("SELECT IMAGE", b.String(), "enter: select │ h/←: up │ esc: cancel")
	}

	var b strings.Builder

	if m.session != nil {
		if user, ok := m.session.User(); ok {
			b.WriteString("Signed in as ")
			b.WriteString(displayName(user.Profile.Email, user.Profile.Name))
			b.WriteString("\n\n")
		}
	}

	items := m.batch.Items()
	b.WriteString(fmt.Sprintf("Batch (%d/%d)\n", len(items), store.MaxBatchSize))

	if len(items) == 0 {
		b.WriteString(helpStyle.Render("No images selected. Press a to add up to 2 images."))
		b.WriteString("\n")
	}
	for i, it := range items {
		b.WriteString(m.renderItem(i, it))
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Uploading...\n")
	}
	if m.warn != "" {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(m.warn))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	if result, ok := m.submit.LastResult(); ok {
		b.WriteString("\nResponse:\n")
		b.WriteString(responseBoxStyle.Render(result.Pretty()))
	}

	hotKeys := "a: add │ space: ocr │ d: remove │ c: clear │ enter: submit │ y: copy │ v: version │ q: quit"
	if m.gated {
		hotKeys += " │ L: sign out"
	}

	return renderPage("OCR BATCH", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *BatchModel) renderItem(i int, it models.Item) string {
	cursor := "  "
	if i == m.idx {
		cursor = cursorStyle.Render("> ")
	}

	check := "[ ]"
	if it.OCR {
		check = "[x]"
	}

	line := fmt.Sprintf("%s%s OCR  %s", cursor, check, fitText(it.FileName, 40))
	if p, ok := m.previews[it.File]; ok {
		line += fmt.Sprintf("  %s  %s", p.HumanSize(), p.Dimensions())
		if p.Format != "" {
			line += "  " + strings.ToUpper(p.Format)
		}
		line += "  #" + p.ShortDigest()
	}
	return line
}
