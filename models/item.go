// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the data types shared between the batch store, the
// submit pipeline, the processor adapter and the terminal UI.
package models

import "io"

// File is an opaque handle to binary file content picked by the user.
//
// The handle is owned by the [Item] that wraps it until the item is encoded
// or removed from the batch. Open may be called more than once; every call
// returns an independent reader positioned at the start of the content.
type File interface {
	// Name returns the display name of the file (base name, no directory).
	Name() string

	// Open returns a reader over the raw file bytes. The caller must close it.
	Open() (io.ReadCloser, error)
}

// Item is one pending upload unit of a batch.
type Item struct {
	// File is the binary content handle.
	File File

	// FileName is used for display and reporting only.
	FileName string

	// OCR requests an optical character recognition pass from the remote
	// processor. New items always start with OCR enabled.
	OCR bool
}

// NewItem wraps file into an [Item] with the OCR flag set.
func NewItem(file File) Item {
	return Item{
		File:     file,
		FileName: file.Name(),
		OCR:      true,
	}
}
