// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth exposes the identity session issued by the external hosted
// identity provider. The client never signs users in itself: it consumes the
// tokens it was given, reads the profile from the ID token and forwards the
// access token to the processing endpoint.
package auth

import (
	"context"

	"github.com/MKhiriev/go-ocr-batch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_provider_mock.go -package=mock

// SessionProvider is the read-only view of the identity session.
type SessionProvider interface {
	// Load resolves the session from its token source. Until it returns,
	// IsLoading reports true.
	Load(ctx context.Context) error

	// IsLoading reports whether the session is still being resolved.
	IsLoading() bool

	// IsAuthenticated reports whether a valid, unexpired session is present.
	IsAuthenticated() bool

	// Err returns the error that prevented the session from resolving, if
	// any. A missing token is not an error.
	Err() error

	// User returns the signed-in user. The flag is false when the session is
	// not authenticated.
	User() (models.User, bool)

	// SignOut drops the session and returns the identity provider URL that
	// ends the hosted session, or an empty string when none is configured.
	SignOut() string
}
