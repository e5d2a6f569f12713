// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// BodySigner computes keyed HMAC-SHA256 signatures of request bodies. The
// processing endpoint may verify them against the HashSHA256 header.
//
// Hashers are pooled, so a single BodySigner can be shared by concurrent
// submit cycles.
type BodySigner struct {
	pool sync.Pool
}

// NewBodySigner returns a signer for hashKey, or nil when hashKey is empty.
// A nil *BodySigner is valid and signs nothing.
func NewBodySigner(hashKey string) *BodySigner {
	if hashKey == "" {
		return nil
	}

	key := []byte(hashKey)
	return &BodySigner{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sign returns the hex-encoded HMAC-SHA256 of data. It returns an empty
// string on a nil signer.
func (s *BodySigner) Sign(data []byte) string {
	if s == nil {
		return ""
	}

	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return hex.EncodeToString(sum)
}
