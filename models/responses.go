// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrInvalidSubmissionResult is returned by [NewSubmissionResult] when the
// response body is not a JSON document.
var ErrInvalidSubmissionResult = errors.New("submission result is not valid json")

// SubmissionResult is the opaque structured response of the processing
// endpoint. The schema is owned by the remote service, so the value is kept
// verbatim and only checked for JSON well-formedness.
type SubmissionResult struct {
	raw json.RawMessage
}

// NewSubmissionResult validates body as JSON and returns a result holding a
// private copy of it.
func NewSubmissionResult(body []byte) (SubmissionResult, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return SubmissionResult{}, ErrInvalidSubmissionResult
	}

	return SubmissionResult{raw: append(json.RawMessage(nil), trimmed...)}, nil
}

// IsZero reports whether the result holds no response.
func (r SubmissionResult) IsZero() bool {
	return len(r.raw) == 0
}

// Raw returns the response bytes exactly as received (surrounding whitespace
// trimmed).
func (r SubmissionResult) Raw() json.RawMessage {
	return r.raw
}

// Pretty renders the response indented with two spaces, the way it is shown
// to the user.
func (r SubmissionResult) Pretty() string {
	if r.IsZero() {
		return ""
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, r.raw, "", "  "); err != nil {
		return string(r.raw)
	}
	return buf.String()
}

// MarshalJSON implements [json.Marshaler] by emitting the raw response.
func (r SubmissionResult) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return r.raw, nil
}
