// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyBatch   = errors.New("batch is empty")
	ErrEncode       = errors.New("failed to encode file")
	ErrTransport    = errors.New("failed to submit batch")
	ErrInvalidBatch = errors.New("invalid batch")
)

// EncodeError describes which batch item could not be encoded. It matches
// [ErrEncode] and the underlying cause with [errors.Is].
type EncodeError struct {
	Index    int
	FileName string
	Err      error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode item %d (%s): %v", e.Index, e.FileName, e.Err)
}

func (e *EncodeError) Unwrap() []error {
	return []error{ErrEncode, e.Err}
}

// TransportError reports a failed network exchange. StatusCode is zero when
// no response was received. It matches [ErrTransport] and the underlying
// cause with [errors.Is].
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%v: status %d: %v", ErrTransport, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%v: %v", ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}
