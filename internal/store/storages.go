// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-ocr-batch/internal/logger"
)

// ClientStorages groups all client-side state holders into a single value
// that can be passed around the service layer. Nothing outlives the process.
type ClientStorages struct {
	// Batch holds the pending items of the current session.
	Batch BatchStore
}

// NewClientStorages initialises the in-memory storage layer.
func NewClientStorages(logger *logger.Logger) *ClientStorages {
	logger.Info().Msg("creating new storages...")

	return &ClientStorages{
		Batch: NewBatchStore(logger),
	}
}
