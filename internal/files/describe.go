// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package files

import (
	"fmt"
	"image"
	"io"
	"strings"

	// image decoders used by image.DecodeConfig
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/MKhiriev/go-ocr-batch/models"
	"github.com/cespare/xxhash/v2"
)

// Preview is what the batch list shows for one item.
//
// Format is the decoder name ("png", "webp", ...) or, for images without a
// registered decoder, the subtype of the sniffed content type.
type Preview struct {
	Name   string
	Size   int64
	Width  int
	Height int
	Format string
	Digest uint64
}

// Dimensions renders "WxH", or "?" when the header could not be decoded.
func (p Preview) Dimensions() string {
	if p.Width == 0 || p.Height == 0 {
		return "?"
	}
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// ShortDigest renders the first 8 hex digits of Digest.
func (p Preview) ShortDigest() string {
	return fmt.Sprintf("%016x", p.Digest)[:8]
}

// HumanSize renders Size with a binary unit.
func (p Preview) HumanSize() string {
	const unit = 1024
	if p.Size < unit {
		return fmt.Sprintf("%d B", p.Size)
	}
	div, exp := int64(unit), 0
	for n := p.Size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(p.Size)/float64(div), "KMGTPE"[exp])
}

// Describe reads file once and returns its size, content digest and, for
// formats with a registered decoder, pixel dimensions. Undecodable images are
// not an error; their dimensions stay zero.
func Describe(file models.File) (Preview, error) {
	rc, err := file.Open()
	if err != nil {
		return Preview{}, fmt.Errorf("open %s: %w", file.Name(), err)
	}
	defer rc.Close()

	digest := xxhash.New()
	counter := &countingWriter{}
	tee := io.TeeReader(rc, io.MultiWriter(digest, counter))

	p := Preview{Name: file.Name()}
	if cfg, format, err := image.DecodeConfig(tee); err == nil {
		p.Width, p.Height, p.Format = cfg.Width, cfg.Height, format
	} else if typed, ok := file.(mimeTyped); ok {
		p.Format = strings.TrimPrefix(typed.MIMEType(), "image/")
	}

	// drain the rest so size and digest cover the whole file
	if _, err = io.Copy(io.Discard, tee); err != nil {
		return Preview{}, fmt.Errorf("read %s: %w", file.Name(), err)
	}

	p.Size = counter.n
	p.Digest = digest.Sum64()
	return p, nil
}

type mimeTyped interface {
	MIMEType() string
}

type countingWriter struct {
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}
