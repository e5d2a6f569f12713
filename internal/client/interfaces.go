// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-ocr-batch/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// Submitter sends a set of local files as one batch without the UI.
type Submitter interface {
	// SubmitFiles adds paths to the batch in order, clears the OCR flag of
	// every file whose base name is in skipOCR, and submits once.
	SubmitFiles(ctx context.Context, paths []string, skipOCR []string) (models.SubmissionResult, error)
}
