// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

const testHashKey = "test-secret-key"

func TestBodySigner_MatchesDirectHMAC(t *testing.T) {
	signer := NewBodySigner(testHashKey)
	body := []byte(`{"batch":[{"fileName":"a.png","file":"AAEC","ocr":true}]}`)

	got := signer.Sign(body)

	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(body)
	want := hex.EncodeToString(h.Sum(nil))

	if got != want {
		t.Fatalf("unexpected signature\nwant: %s\ngot:  %s", want, got)
	}
}

func TestBodySigner_Deterministic(t *testing.T) {
	signer := NewBodySigner(testHashKey)
	data := []byte("test-data")

	if signer.Sign(data) != signer.Sign(data) {
		t.Fatal("signature must be deterministic for the same input")
	}
}

func TestBodySigner_DifferentKeys(t *testing.T) {
	data := []byte("test-data")

	if NewBodySigner("k1").Sign(data) == NewBodySigner("k2").Sign(data) {
		t.Fatal("different keys must produce different signatures")
	}
}

func TestBodySigner_EmptyKeyIsNil(t *testing.T) {
	signer := NewBodySigner("")
	if signer != nil {
		t.Fatal("expected nil signer for empty key")
	}
	if got := signer.Sign([]byte("data")); got != "" {
		t.Fatalf("nil signer must return empty signature, got %q", got)
	}
}

func TestBodySigner_Concurrent(t *testing.T) {
	signer := NewBodySigner(testHashKey)
	want := signer.Sign([]byte("payload"))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := signer.Sign([]byte("payload")); got != want {
				t.Errorf("concurrent sign mismatch: %s != %s", got, want)
			}
		}()
	}
	wg.Wait()
}
