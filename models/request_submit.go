// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncodedItem is the wire form of one [Item]. It exists only for the duration
// of a single submit cycle.
type EncodedItem struct {
	// FileName mirrors Item.FileName.
	FileName string `json:"fileName" validate:"required"`

	// File is the pure base64 (standard alphabet, padded) encoding of the raw
	// file bytes. It never carries a data URI prefix and is empty for an
	// empty file.
	File string `json:"file" validate:"omitempty,base64"`

	// OCR mirrors Item.OCR.
	OCR bool `json:"ocr"`

	// Digest is an xxhash fingerprint of the payload used for log
	// correlation. It is never sent.
	Digest uint64 `json:"-"`
}

// SubmitRequest is the JSON body posted to the processing endpoint.
//
// Batch order equals the order of the pending batch at the moment the submit
// cycle started; the remote service correlates its results by position.
type SubmitRequest struct {
	Batch []EncodedItem `json:"batch" validate:"required,min=1,max=2,dive"`
}
