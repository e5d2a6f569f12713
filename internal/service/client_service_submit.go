// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-ocr-batch/internal/adapter"
	"github.com/MKhiriev/go-ocr-batch/internal/logger"
	"github.com/MKhiriev/go-ocr-batch/internal/store"
	"github.com/MKhiriev/go-ocr-batch/internal/utils"
	"github.com/MKhiriev/go-ocr-batch/internal/validators"
	"github.com/MKhiriev/go-ocr-batch/models"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

type clientSubmitService struct {
	batch     store.BatchStore
	encoder   ClientEncodeService
	adapter   adapter.ProcessorAdapter
	validator validators.Validator
	ids       utils.IDGenerator

	mu         sync.RWMutex
	lastResult models.SubmissionResult
	hasResult  bool

	logger *logger.Logger
}

// NewClientSubmitService wires the submit cycle over batch.
func NewClientSubmitService(
	batch store.BatchStore,
	encoder ClientEncodeService,
	processorAdapter adapter.ProcessorAdapter,
	validator validators.Validator,
	ids utils.IDGenerator,
	logger *logger.Logger,
) ClientSubmitService {
	return &clientSubmitService{
		batch:     batch,
		encoder:   encoder,
		adapter:   processorAdapter,
		validator: validator,
		ids:       ids,
		logger:    logger,
	}
}

func (s *clientSubmitService) Submit(ctx context.Context) (models.SubmissionResult, error) {
	items, err := s.batch.BeginSubmit()
	if err != nil {
		return models.SubmissionResult{}, fmt.Errorf("begin submit: %w", err)
	}
	if len(items) == 0 {
		s.batch.EndSubmit(false)
		return models.SubmissionResult{}, ErrEmptyBatch
	}

	submitID := s.ids.Generate()
	log := &logger.Logger{Logger: s.logger.With().Str("submit_id", submitID).Logger()}
	ctx = utils.WithSubmitID(log.WithContext(ctx), submitID)

	start := time.Now()
	log.Info().Int("items", len(items)).Msg("submit started")

	result, err := s.run(ctx, log, items)
	if err != nil {
		s.batch.EndSubmit(false)
		log.Err(err).
			Dur("elapsed", time.Since(start)).
			Msg("submit failed, batch kept")
		return models.SubmissionResult{}, err
	}

	s.setLastResult(result)
	s.batch.EndSubmit(true)

	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("response_bytes", len(result.Raw())).
		Msg("submit succeeded, batch cleared")

	return result, nil
}

func (s *clientSubmitService) run(ctx context.Context, log *logger.Logger, items []models.Item) (models.SubmissionResult, error) {
	encoded, err := s.encodeAll(ctx, items)
	if err != nil {
		return models.SubmissionResult{}, err
	}

	for i, item := range encoded {
		log.Debug().
			Int("index", i).
			Str("file_name", item.FileName).
			Bool("ocr", item.OCR).
			Int("payload_len", len(item.File)).
			Str("digest", fmt.Sprintf("%016x", item.Digest)).
			Msg("item encoded")
	}

	req := models.SubmitRequest{Batch: encoded}
	if err = s.validator.Validate(ctx, req); err != nil {
		return models.SubmissionResult{}, fmt.Errorf("%w: %w", ErrInvalidBatch, err)
	}

	result, err := s.adapter.Submit(ctx, req)
	if err != nil {
		mapped := mapAdapterError(err)

		var transportErr *TransportError
		if errors.As(mapped, &transportErr) && transportErr.StatusCode != 0 {
			log.Warn().Int("status_code", transportErr.StatusCode).Msg("processor rejected batch")
		}
		return models.SubmissionResult{}, mapped
	}

	return result, nil
}

// encodeAll encodes items concurrently. The first failure cancels the rest
// and nothing is returned.
func (s *clientSubmitService) encodeAll(ctx context.Context, items []models.Item) ([]models.EncodedItem, error) {
	encoded := make([]models.EncodedItem, len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			payload, err := s.encoder.Encode(gctx, item.File)
			if err != nil {
				return &EncodeError{Index: i, FileName: item.FileName, Err: err}
			}

			encoded[i] = models.EncodedItem{
				FileName: item.FileName,
				File:     payload,
				OCR:      item.OCR,
				Digest:   xxhash.Sum64String(payload),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return encoded, nil
}

func (s *clientSubmitService) LastResult() (models.SubmissionResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastResult, s.hasResult
}

func (s *clientSubmitService) setLastResult(result models.SubmissionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastResult = result
	s.hasResult = true
}
