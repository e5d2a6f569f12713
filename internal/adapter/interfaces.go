// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote image processing endpoint.
//
// The primary abstraction is [ProcessorAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPProcessorAdapter]).
//
// Non-2xx responses are reported as [*StatusError]. Callers can match them with
// [errors.As] to read the status code, or with [errors.Is] against the
// sentinels in errors.go (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ocr-batch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/processor_adapter_mock.go -package=mock

// ProcessorAdapter defines transport-agnostic communication with the image
// processing endpoint. Implementations are responsible for serialisation,
// authentication headers, and mapping transport-level failures to the error
// values defined in this package.
type ProcessorAdapter interface {
	// SetToken stores the bearer token attached to every subsequent
	// submission. An empty token disables the Authorization header.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set.
	Token() string

	// Submit sends req as a single POST and returns the decoded response body.
	// Returns a [*StatusError] for non-2xx statuses, [ErrInvalidResponse]
	// (wrapped) when the body is not JSON, or a wrapped network error.
	Submit(ctx context.Context, req models.SubmitRequest) (models.SubmissionResult, error)
}
