// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-ocr-batch/internal/config"
	"github.com/MKhiriev/go-ocr-batch/internal/logger"
	"github.com/MKhiriev/go-ocr-batch/internal/utils"
	"github.com/MKhiriev/go-ocr-batch/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	headerRequestID = "X-Request-ID"
	headerHash      = "HashSHA256"
	userAgentPrefix = "go-ocr-batch/"
)

type httpProcessorAdapter struct {
	client     *utils.HTTPClient
	submitPath string

	signer *utils.BodySigner
	ids    utils.IDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPProcessorAdapter constructs an HTTP/REST implementation of
// [ProcessorAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress, configures the underlying HTTP client with the
// resolved base URL and request timeout, and prepares the body signer when
// appCfg.HashKey is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPProcessorAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ProcessorAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	version := appCfg.Version
	if version == "" {
		version = "dev"
	}
	client.SetHeader("User-Agent", userAgentPrefix+version)

	return &httpProcessorAdapter{
		client:     client,
		submitPath: normalizeSubmitPath(adapterCfg.SubmitPath),
		signer:     utils.NewBodySigner(appCfg.HashKey),
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func normalizeSubmitPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = config.DefaultSubmitPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// SetToken implements [ProcessorAdapter].
func (h *httpProcessorAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ProcessorAdapter].
func (h *httpProcessorAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Submit implements [ProcessorAdapter]. The body is serialised once so the
// HashSHA256 header covers exactly the bytes on the wire. The X-Request-ID
// header carries the submit ID from ctx, or a fresh UUIDv7 when ctx has none.
func (h *httpProcessorAdapter) Submit(ctx context.Context, req models.SubmitRequest) (models.SubmissionResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return models.SubmissionResult{}, fmt.Errorf("encode submit request: %w", err)
	}

	requestID, ok := utils.GetSubmitIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	r := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerRequestID, requestID).
		SetBody(body)
	if sign := h.signer.Sign(body); sign != "" {
		r.SetHeader(headerHash, sign)
	}

	log := h.requestLogger(ctx)
	log.Debug().
		Str("request_id", requestID).
		Int("items", len(req.Batch)).
		Int("bytes", len(body)).
		Msg("posting batch")

	resp, err := r.Post(h.submitPath)
	if err != nil {
		return models.SubmissionResult{}, fmt.Errorf("submit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SubmissionResult{}, err
	}
	log.Debug().
		Int("status_code", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("batch accepted")

	result, err := models.NewSubmissionResult(resp.Body())
	if err != nil {
		return models.SubmissionResult{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return result, nil
}

// requestLogger returns the logger carried by ctx, e.g. the submit cycle
// logger, and falls back to the adapter logger.
func (h *httpProcessorAdapter) requestLogger(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return h.logger
}

func (h *httpProcessorAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
