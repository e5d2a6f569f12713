// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-ocr-batch/internal/logger"
	"github.com/MKhiriev/go-ocr-batch/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

type stubFile struct {
	name string
}

func (s stubFile) Name() string { return s.name }

func (s stubFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.name)), nil
}

func files(names ...string) []models.File {
	out := make([]models.File, 0, len(names))
	for _, n := range names {
		out = append(out, stubFile{name: n})
	}
	return out
}

func names(items []models.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.FileName)
	}
	return out
}

func newStore(t *testing.T, initial ...string) BatchStore {
	t.Helper()
	s := NewBatchStore(logger.Nop())
	if len(initial) > 0 {
		_, err := s.Add(files(initial...)...)
		require.NoError(t, err)
	}
	return s
}

// ─────────────────────────────────────────────
// Add
// ─────────────────────────────────────────────

func TestAdd(t *testing.T) {
	tests := []struct {
		name      string
		initial   []string
		add       []string
		wantAdded int
		wantFull  bool
		wantNames []string
	}{
		{name: "empty batch, one file", add: []string{"a"}, wantAdded: 1, wantNames: []string{"a"}},
		{name: "empty batch, two files", add: []string{"a", "b"}, wantAdded: 2, wantNames: []string{"a", "b"}},
		{name: "empty batch, three files", add: []string{"a", "b", "c"}, wantAdded: 2, wantFull: true, wantNames: []string{"a", "b"}},
		{name: "one in batch, two more", initial: []string{"a"}, add: []string{"b", "c"}, wantAdded: 1, wantFull: true, wantNames: []string{"a", "b"}},
		{name: "full batch", initial: []string{"a", "b"}, add: []string{"c"}, wantAdded: 0, wantFull: true, wantNames: []string{"a", "b"}},
		{name: "nothing to add", initial: []string{"a"}, add: nil, wantAdded: 0, wantNames: []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t, tt.initial...)

			added, err := s.Add(files(tt.add...)...)

			assert.Equal(t, tt.wantAdded, added)
			if tt.wantFull {
				assert.ErrorIs(t, err, ErrBatchFull)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantNames, names(s.Items()))
			assert.LessOrEqual(t, s.Len(), MaxBatchSize)
		})
	}
}

func TestAdd_DefaultsOCRTrue(t *testing.T) {
	s := newStore(t, "a", "b")

	for _, it := range s.Items() {
		assert.True(t, it.OCR, it.FileName)
		assert.NotNil(t, it.File)
	}
}

func TestAdd_CeilingUnderRandomSequence(t *testing.T) {
	s := newStore(t)
	ops := []func(){
		func() { _, _ = s.Add(files("x", "y", "z")...) },
		func() { _ = s.Remove(0) },
		func() { _, _ = s.Add(files("w")...) },
		func() { _ = s.Clear() },
		func() { _, _ = s.Add(files("p", "q")...) },
		func() { _, _ = s.Add(files("r")...) },
		func() { _ = s.Remove(1) },
		func() { _, _ = s.Add(files("s", "t")...) },
	}

	for _, op := range ops {
		op()
		require.LessOrEqual(t, s.Len(), MaxBatchSize)
	}
}

// ─────────────────────────────────────────────
// ToggleOCR
// ─────────────────────────────────────────────

func TestToggleOCR_IsOwnInverse(t *testing.T) {
	s := newStore(t, "a", "b")

	require.NoError(t, s.ToggleOCR(1))
	items := s.Items()
	assert.True(t, items[0].OCR)
	assert.False(t, items[1].OCR)

	require.NoError(t, s.ToggleOCR(1))
	items = s.Items()
	assert.True(t, items[0].OCR)
	assert.True(t, items[1].OCR)
}

func TestToggleOCR_OutOfRange(t *testing.T) {
	s := newStore(t, "a")

	for _, idx := range []int{-1, 1, 5} {
		err := s.ToggleOCR(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
	assert.True(t, s.Items()[0].OCR)
}

// ─────────────────────────────────────────────
// Remove
// ─────────────────────────────────────────────

func TestRemove_ShiftsAndDropsFlag(t *testing.T) {
	s := newStore(t, "a", "b")
	require.NoError(t, s.ToggleOCR(0))

	require.NoError(t, s.Remove(0))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].FileName)
	assert.True(t, items[0].OCR)
}

func TestRemove_ReaddedItemStartsFresh(t *testing.T) {
	s := newStore(t, "a")
	require.NoError(t, s.ToggleOCR(0))
	require.NoError(t, s.Remove(0))

	_, err := s.Add(files("a")...)
	require.NoError(t, err)

	assert.True(t, s.Items()[0].OCR)
}

func TestRemove_OutOfRange(t *testing.T) {
	s := newStore(t, "a")

	assert.ErrorIs(t, s.Remove(1), ErrIndexOutOfRange)
	assert.ErrorIs(t, s.Remove(-1), ErrIndexOutOfRange)
	assert.Equal(t, 1, s.Len())
}

// ─────────────────────────────────────────────
// Clear / Items
// ─────────────────────────────────────────────

func TestClear(t *testing.T) {
	s := newStore(t, "a", "b")

	require.NoError(t, s.Clear())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Items())
	assert.Nil(t, s.(*batchStore).items)

	require.NoError(t, s.Clear())
	assert.Equal(t, 0, s.Len())
}

func TestItems_ReturnsCopy(t *testing.T) {
	s := newStore(t, "a")

	items := s.Items()
	items[0].OCR = false
	items[0].FileName = "mutated"

	got := s.Items()[0]
	assert.True(t, got.OCR)
	assert.Equal(t, "a", got.FileName)
}

// ─────────────────────────────────────────────
// Submit cycle
// ─────────────────────────────────────────────

func TestBeginSubmit_LocksMutations(t *testing.T) {
	s := newStore(t, "a")

	snapshot, err := s.BeginSubmit()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names(snapshot))
	assert.True(t, s.Submitting())

	_, err = s.Add(files("b")...)
	assert.ErrorIs(t, err, ErrSubmitInProgress)
	assert.ErrorIs(t, s.ToggleOCR(0), ErrSubmitInProgress)
	assert.ErrorIs(t, s.Remove(0), ErrSubmitInProgress)
	assert.ErrorIs(t, s.Clear(), ErrSubmitInProgress)

	_, err = s.BeginSubmit()
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	assert.Equal(t, []string{"a"}, names(s.Items()))
	assert.True(t, s.Items()[0].OCR)
}

func TestEndSubmit(t *testing.T) {
	t.Run("clear on success", func(t *testing.T) {
		s := newStore(t, "a", "b")
		_, err := s.BeginSubmit()
		require.NoError(t, err)

		s.EndSubmit(true)

		assert.False(t, s.Submitting())
		assert.Equal(t, 0, s.Len())
		// submitted file handles are no longer referenced
		assert.Nil(t, s.(*batchStore).items)
	})

	t.Run("keep on failure", func(t *testing.T) {
		s := newStore(t, "a", "b")
		require.NoError(t, s.ToggleOCR(1))
		_, err := s.BeginSubmit()
		require.NoError(t, err)

		s.EndSubmit(false)

		assert.False(t, s.Submitting())
		items := s.Items()
		assert.Equal(t, []string{"a", "b"}, names(items))
		assert.True(t, items[0].OCR)
		assert.False(t, items[1].OCR)
	})

	t.Run("no open cycle", func(t *testing.T) {
		s := newStore(t, "a")

		s.EndSubmit(true)

		assert.Equal(t, 1, s.Len())
	})
}

func TestBatchStore_Concurrent(t *testing.T) {
	s := newStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, _ = s.Add(files("f")...)
		}()
		go func() {
			defer wg.Done()
			_ = s.ToggleOCR(0)
		}()
		go func() {
			defer wg.Done()
			_ = s.Remove(0)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, s.Len(), MaxBatchSize)
}

func TestNewClientStorages(t *testing.T) {
	st := NewClientStorages(logger.Nop())

	require.NotNil(t, st)
	require.NotNil(t, st.Batch)
	assert.Equal(t, 0, st.Batch.Len())
}
