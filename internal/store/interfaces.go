// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the in-memory state of the client session: the batch
// of pending image items awaiting submission.
package store

import "github.com/MKhiriev/go-ocr-batch/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/batch_store_mock.go -package=mock

// MaxBatchSize is the maximum number of items a batch may hold.
const MaxBatchSize = 2

// BatchStore is the ordered collection of pending items and their OCR flags.
//
// All methods are safe for concurrent use. While a submit cycle is open
// (between [BatchStore.BeginSubmit] and [BatchStore.EndSubmit]) every mutating
// method returns [ErrSubmitInProgress] and leaves the batch unchanged.
type BatchStore interface {
	// Add appends candidates in order while the batch has room; each new item
	// starts with OCR enabled. Returns the number of items added and
	// [ErrBatchFull] if at least one candidate was dropped. Items already in
	// the batch are never displaced.
	Add(candidates ...models.File) (int, error)

	// ToggleOCR flips the OCR flag of the item at index. Returns
	// [ErrIndexOutOfRange] without any change when index is out of bounds.
	ToggleOCR(index int) error

	// Remove deletes the item at index, shifting later items left. Returns
	// [ErrIndexOutOfRange] without any change when index is out of bounds.
	Remove(index int) error

	// Clear empties the batch.
	Clear() error

	// Items returns a copy of the batch in insertion order.
	Items() []models.Item

	// Len returns the number of items in the batch.
	Len() int

	// Submitting reports whether a submit cycle is open.
	Submitting() bool

	// BeginSubmit opens a submit cycle and returns a snapshot of the batch.
	// Returns [ErrSubmitInProgress] if a cycle is already open.
	BeginSubmit() ([]models.Item, error)

	// EndSubmit closes the open submit cycle, emptying the batch first when
	// clear is true. It is a no-op when no cycle is open.
	EndSubmit(clear bool)
}
