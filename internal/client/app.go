// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-ocr-batch/internal/adapter"
	"github.com/MKhiriev/go-ocr-batch/internal/auth"
	"github.com/MKhiriev/go-ocr-batch/internal/config"
	"github.com/MKhiriev/go-ocr-batch/internal/files"
	"github.com/MKhiriev/go-ocr-batch/internal/logger"
	"github.com/MKhiriev/go-ocr-batch/internal/service"
	"github.com/MKhiriev/go-ocr-batch/internal/store"
	"github.com/MKhiriev/go-ocr-batch/internal/tui"
	"github.com/MKhiriev/go-ocr-batch/models"
)

var (
	ErrNoFiles         = errors.New("no files given")
	ErrTooManyFiles    = errors.New("too many files for one batch")
	ErrUnknownSkipName = errors.New("--skip-ocr names a file that is not in the batch")
	ErrNotSignedIn     = errors.New("not signed in")
)

var (
	_ Client    = (*App)(nil)
	_ Submitter = (*App)(nil)
)

// App owns the batch, the submit pipeline and the identity session of one
// client process.
type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo

	adapter  adapter.ProcessorAdapter
	storages *store.ClientStorages
	services *service.ClientServices
	session  auth.SessionProvider

	logger *logger.Logger
}

// NewApp wires the client from cfg.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	processorAdapter, err := adapter.NewHTTPProcessorAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create processor adapter: %w", err)
	}

	return newApp(cfg, buildInfo, processorAdapter, log), nil
}

func newApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, processorAdapter adapter.ProcessorAdapter, log *logger.Logger) *App {
	storages := store.NewClientStorages(log)

	return &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		adapter:   processorAdapter,
		storages:  storages,
		services:  service.NewClientServices(storages, processorAdapter, log),
		session:   auth.NewStaticSession(cfg.Auth, log),
		logger:    log,
	}
}

// authEnabled reports whether an identity session is expected.
func (a *App) authEnabled() bool {
	return a.cfg.Auth.CognitoDomain != "" || a.cfg.Auth.IDToken != ""
}

// Run implements [Client]. It starts the terminal UI and blocks until the
// user quits.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	if !a.authEnabled() {
		// no identity provider: forward a configured access token as is
		a.adapter.SetToken(a.cfg.Auth.AccessToken)
	}

	ui, err := tui.New(a.services, a.storages, a.session, a.adapter, a.buildInfo, a.authEnabled(), a.logger)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	a.logger.Info().Bool("auth", a.authEnabled()).Msg("starting ui")

	if err = ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return err
	}
	return nil
}

// SubmitFiles implements [Submitter].
func (a *App) SubmitFiles(ctx context.Context, paths []string, skipOCR []string) (models.SubmissionResult, error) {
	if len(paths) == 0 {
		return models.SubmissionResult{}, ErrNoFiles
	}
	if len(paths) > store.MaxBatchSize {
		return models.SubmissionResult{}, fmt.Errorf("%w: %d given, at most %d", ErrTooManyFiles, len(paths), store.MaxBatchSize)
	}

	if err := a.authenticate(ctx); err != nil {
		return models.SubmissionResult{}, err
	}

	candidates, err := files.OpenAll(paths...)
	if err != nil {
		return models.SubmissionResult{}, err
	}

	batch := a.storages.Batch
	if _, err = batch.Add(candidates...); err != nil {
		return models.SubmissionResult{}, fmt.Errorf("add files: %w", err)
	}

	items := batch.Items()
	skip := make(map[string]struct{}, len(skipOCR))
	for _, name := range skipOCR {
		if !slices.ContainsFunc(items, func(it models.Item) bool { return it.FileName == name }) {
			return models.SubmissionResult{}, fmt.Errorf("%w: %s", ErrUnknownSkipName, name)
		}
		skip[name] = struct{}{}
	}
	for i, it := range items {
		if _, ok := skip[it.FileName]; ok && it.OCR {
			if err = batch.ToggleOCR(i); err != nil {
				return models.SubmissionResult{}, err
			}
		}
	}

	return a.services.SubmitService.Submit(ctx)
}

func (a *App) authenticate(ctx context.Context) error {
	if !a.authEnabled() {
		a.adapter.SetToken(a.cfg.Auth.AccessToken)
		return nil
	}

	if err := a.session.Load(ctx); err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	user, ok := a.session.User()
	if !ok {
		return ErrNotSignedIn
	}
	a.adapter.SetToken(user.AccessToken)
	return nil
}
