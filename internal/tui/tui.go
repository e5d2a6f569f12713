// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal client: the identity gate
// and the batch screen where images are picked, flagged for OCR and
// submitted.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-ocr-batch/internal/auth"
	"github.com/MKhiriev/go-ocr-batch/internal/logger"
	"github.com/MKhiriev/go-ocr-batch/internal/service"
	"github.com/MKhiriev/go-ocr-batch/internal/store"
	"github.com/MKhiriev/go-ocr-batch/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

const (
	pageGate  = "gate"
	pageBatch = "batch"
)

// TokenSink receives the access token of the current session.
type TokenSink interface {
	SetToken(token string)
}

type TUI struct {
	services  *service.ClientServices
	storages  *store.ClientStorages
	session   auth.SessionProvider
	tokens    TokenSink
	buildInfo models.AppBuildInfo

	// gated reports whether the identity gate is shown before the batch
	// screen.
	gated bool

	logger *logger.Logger
}

// New builds the terminal client. When gated is false the batch screen opens
// directly and no session is required.
func New(
	services *service.ClientServices,
	storages *store.ClientStorages,
	session auth.SessionProvider,
	tokens TokenSink,
	buildInfo models.AppBuildInfo,
	gated bool,
	logger *logger.Logger,
) (*TUI, error) {
	if services == nil || storages == nil {
		return nil, errors.New("tui: services and storages are required")
	}

	return &TUI{
		services:  services,
		storages:  storages,
		session:   session,
		tokens:    tokens,
		buildInfo: buildInfo,
		gated:     gated && session != nil,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits. It returns [ErrUserQuit] on ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRoot(ctx)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

func (t *TUI) newRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageBatch: NewBatchModel(ctx, t.storages.Batch, t.services.SubmitService, t.session, t.tokens, t.gated),
	}

	start := pageBatch
	if t.gated {
		pages[pageGate] = NewGateModel(ctx, t.session, t.tokens)
		start = pageGate
	}

	return NewRootModel(pages, start, t.buildInfo)
}
