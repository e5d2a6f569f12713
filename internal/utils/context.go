// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the client.
// Includes tools for working with context, type-safe keys, request body
// signing, HTTP client initialization and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SubmitIDCtxKey is the key used to store the identifier of the current
// submit cycle in the context.
var SubmitIDCtxKey = contextKey("submitID")

// WithSubmitID returns a copy of ctx carrying submitID.
func WithSubmitID(ctx context.Context, submitID string) context.Context {
	return context.WithValue(ctx, SubmitIDCtxKey, submitID)
}

// GetSubmitIDFromContext retrieves the submit cycle identifier from the
// context.
//
// Returns the identifier and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetSubmitIDFromContext(ctx context.Context) (string, bool) {
	submitID, ok := ctx.Value(SubmitIDCtxKey).(string)
	return submitID, ok && submitID != ""
}
