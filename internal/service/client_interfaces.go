// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the batch submission pipeline of the client:
// per-file encoding and the aggregate encode-then-send cycle.
package service

import (
	"context"

	"github.com/MKhiriev/go-ocr-batch/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientEncodeService converts file handles into transport-safe payloads.
// Implementations are stateless and safe for concurrent use.
type ClientEncodeService interface {
	// Encode reads the whole file and returns its standard, padded base64
	// encoding. On any read failure it returns an error wrapping [ErrEncode]
	// and never a partial payload.
	Encode(ctx context.Context, file models.File) (string, error)
}

// ClientSubmitService drives one encode-then-send cycle over the current
// batch and keeps the most recent successful response.
type ClientSubmitService interface {
	// Submit encodes every pending item concurrently, posts them as one
	// request and, on success, stores the response as the last result and
	// clears the batch. On any failure the batch and the last result are left
	// unchanged.
	//
	// Returns [ErrEmptyBatch] without any network call when the batch is
	// empty, an error wrapping [ErrEncode] when a file cannot be read, and an
	// error wrapping [ErrTransport] when the exchange fails.
	Submit(ctx context.Context) (models.SubmissionResult, error)

	// LastResult returns the response of the most recent successful Submit.
	// The flag is false until the first success.
	LastResult() (models.SubmissionResult, bool)
}
