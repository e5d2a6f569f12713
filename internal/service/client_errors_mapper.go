// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-ocr-batch/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// [TransportError], lifting the HTTP status when one was received.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	transportErr := &TransportError{Err: err}

	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		transportErr.StatusCode = statusErr.StatusCode
	}

	return transportErr
}
