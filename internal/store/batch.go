// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-ocr-batch/internal/logger"
	"github.com/MKhiriev/go-ocr-batch/models"
)

type batchStore struct {
	mu         sync.RWMutex
	items      []models.Item
	submitting bool

	logger *logger.Logger
}

// NewBatchStore returns an empty in-memory [BatchStore].
func NewBatchStore(logger *logger.Logger) BatchStore {
	return &batchStore{
		items:  make([]models.Item, 0, MaxBatchSize),
		logger: logger,
	}
}

func (b *batchStore) Add(candidates ...models.File) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.submitting {
		return 0, ErrSubmitInProgress
	}

	added := 0
	for _, file := range candidates {
		if len(b.items) >= MaxBatchSize {
			break
		}
		b.items = append(b.items, models.NewItem(file))
		added++
	}

	if dropped := len(candidates) - added; dropped > 0 {
		b.logger.Warn().
			Int("added", added).
			Int("dropped", dropped).
			Int("max", MaxBatchSize).
			Msg("batch size limit reached")
		return added, fmt.Errorf("%d of %d files rejected: %w", dropped, len(candidates), ErrBatchFull)
	}

	return added, nil
}

func (b *batchStore) ToggleOCR(index int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.submitting {
		return ErrSubmitInProgress
	}
	if index < 0 || index >= len(b.items) {
		return fmt.Errorf("toggle ocr at %d: %w", index, ErrIndexOutOfRange)
	}

	b.items[index].OCR = !b.items[index].OCR
	return nil
}

func (b *batchStore) Remove(index int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.submitting {
		return ErrSubmitInProgress
	}
	if index < 0 || index >= len(b.items) {
		return fmt.Errorf("remove at %d: %w", index, ErrIndexOutOfRange)
	}

	b.items = slices.Delete(b.items, index, index+1)
	return nil
}

func (b *batchStore) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.submitting {
		return ErrSubmitInProgress
	}

	b.items = nil
	return nil
}

func (b *batchStore) Items() []models.Item {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return slices.Clone(b.items)
}

func (b *batchStore) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.items)
}

func (b *batchStore) Submitting() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.submitting
}

func (b *batchStore) BeginSubmit() ([]models.Item, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.submitting {
		return nil, ErrSubmitInProgress
	}

	b.submitting = true
	return slices.Clone(b.items), nil
}

func (b *batchStore) EndSubmit(clear bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.submitting {
		return
	}

	if clear {
		b.items = nil
	}
	b.submitting = false
}
