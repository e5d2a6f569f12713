// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-ocr-batch/models"
)

type clientEncodeService struct{}

// NewClientEncodeService returns the base64 [ClientEncodeService].
func NewClientEncodeService() ClientEncodeService {
	return &clientEncodeService{}
}

func (e *clientEncodeService) Encode(ctx context.Context, file models.File) (string, error) {
	if file == nil {
		return "", fmt.Errorf("%w: no file handle", ErrEncode)
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrEncode, file.Name(), err)
	}

	rc, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %w", ErrEncode, file.Name(), err)
	}
	defer rc.Close()

	var sb strings.Builder
	enc := base64.NewEncoder(base64.StdEncoding, &sb)

	if _, err = io.Copy(enc, readerWithContext(ctx, rc)); err != nil {
		return "", fmt.Errorf("%w: read %s: %w", ErrEncode, file.Name(), err)
	}
	if err = enc.Close(); err != nil {
		return "", fmt.Errorf("%w: flush %s: %w", ErrEncode, file.Name(), err)
	}

	return sb.String(), nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

// Read stops a long copy once ctx is done.
func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
