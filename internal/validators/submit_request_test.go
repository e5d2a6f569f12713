// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ocr-batch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func item(name, file string, ocr bool) models.EncodedItem {
	return models.EncodedItem{FileName: name, File: file, OCR: ocr}
}

func request(items ...models.EncodedItem) models.SubmitRequest {
	return models.SubmitRequest{Batch: items}
}

// ---------------------------------------------------------------------------
// Whole request
// ---------------------------------------------------------------------------

func TestSubmitRequestValidator_Validate(t *testing.T) {
	v := NewSubmitRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		value   any
		wantErr error
	}{
		{name: "one item", value: request(item("a.png", "AAEC", true))},
		{name: "two items, pointer", value: ptr(request(item("a.png", "AAEC", true), item("b.jpg", "/w==", false)))},
		{name: "nil batch", value: request(), wantErr: ErrEmptyBatch},
		{name: "empty batch", value: models.SubmitRequest{Batch: []models.EncodedItem{}}, wantErr: ErrEmptyBatch},
		{name: "three items", value: request(item("a", "AA==", true), item("b", "AA==", true), item("c", "AA==", true)), wantErr: ErrBatchTooLarge},
		{name: "missing file name", value: request(item("", "AAEC", true)), wantErr: ErrEmptyFileName},
		{name: "empty payload", value: request(item("empty.png", "", true))},
		{name: "data uri payload", value: request(item("a.png", "data:image/png;base64,AAEC", true)), wantErr: ErrInvalidBase64},
		{name: "unsupported type", value: "batch", wantErr: ErrUnsupportedType},
		{name: "nil pointer", value: (*models.SubmitRequest)(nil), wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.value)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmitRequestValidator_ErrorsUseJSONNames(t *testing.T) {
	v := NewSubmitRequestValidator()

	err := v.Validate(context.Background(), request(item("a.png", "AAEC", true), item("b.png", "not base64!", true)))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBase64)
	assert.Contains(t, err.Error(), "batch[1].file")
}

func ptr[T any](v T) *T { return &v }
