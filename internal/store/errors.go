// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [BatchStore] methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrBatchFull is returned by Add when at least one candidate was
	// rejected because the batch reached [MaxBatchSize]. It is a warning:
	// the candidates that fit were still added.
	ErrBatchFull = errors.New("batch is full")

	// ErrIndexOutOfRange is returned when ToggleOCR or Remove targets a
	// position that does not exist.
	ErrIndexOutOfRange = errors.New("item index out of range")

	// ErrSubmitInProgress is returned when the batch is edited or submitted
	// again while a submit cycle is open.
	ErrSubmitInProgress = errors.New("submit in progress")
)
