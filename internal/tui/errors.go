// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-ocr-batch/internal/app"
	"github.com/MKhiriev/go-ocr-batch/internal/service"
	"github.com/MKhiriev/go-ocr-batch/internal/store"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the processing service is unavailable"
	}

	return err.Error()
}

// submitErrorMessage renders the notice shown after a failed submit.
func submitErrorMessage(err error) string {
	var transportErr *service.TransportError

	switch {
	case errors.Is(err, service.ErrEmptyBatch):
		return app.MsgNoImagesSelected + " " + app.MsgSelectUpTo
	case errors.Is(err, store.ErrSubmitInProgress):
		return app.MsgSubmitInProgress
	case errors.As(err, &transportErr) && transportErr.StatusCode != 0:
		return fmt.Sprintf("%s (status %d)", app.MsgUploadFailed, transportErr.StatusCode)
	case errors.As(err, &transportErr):
		return app.MsgUploadFailed + " " + humanizeServerUnavailableError(transportErr.Err)
	default:
		return app.MsgUploadFailed + " " + err.Error()
	}
}
