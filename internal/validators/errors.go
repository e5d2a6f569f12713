// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyBatch     = errors.New("batch cannot be empty")
	ErrBatchTooLarge  = errors.New("batch exceeds maximum size")
	ErrEmptyFileName  = errors.New("file name is required")
	ErrInvalidBase64  = errors.New("file payload is not valid base64")
	ErrInvalidRequest = errors.New("invalid submit request")
)
