// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package files turns local paths into batch candidates. Only image files are
// accepted; the content type is sniffed from the file bytes, not taken from
// the extension.
package files

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-ocr-batch/models"
	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrNotImage    = errors.New("file is not an image")
	ErrIsDirectory = errors.New("path is a directory")
)

// LocalFile is a [models.File] backed by a path on disk. The bytes are read
// lazily on every Open.
type LocalFile struct {
	path     string
	name     string
	mimeType string
}

// Open validates path and returns it as a batch candidate.
//
// Returns [ErrIsDirectory] for directories and [ErrNotImage] (wrapped, with
// the detected type) when the content is not image/*.
func Open(path string) (*LocalFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("detect content type of %s: %w", path, err)
	}
	if !isImage(mtype) {
		return nil, fmt.Errorf("%s (%s): %w", filepath.Base(path), mtype.String(), ErrNotImage)
	}

	return &LocalFile{
		path:     path,
		name:     filepath.Base(path),
		mimeType: mtype.String(),
	}, nil
}

// OpenAll opens every path in order and stops at the first failure.
func OpenAll(paths ...string) ([]models.File, error) {
	out := make([]models.File, 0, len(paths))
	for _, p := range paths {
		f, err := Open(p)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func isImage(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return true
		}
	}
	return false
}

// Name implements [models.File].
func (f *LocalFile) Name() string {
	return f.name
}

// Open implements [models.File].
func (f *LocalFile) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}

// MIMEType returns the sniffed content type, e.g. "image/png".
func (f *LocalFile) MIMEType() string {
	return f.mimeType
}
