// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key used for request body signing.
	HashKey string
	// Version is reported in the User-Agent header.
	Version string
}

// ClientAdapter holds network settings used by the processor adapter.
type ClientAdapter struct {
	// HTTPAddress is the processing API base URL.
	HTTPAddress string
	// SubmitPath is the batch submission resource path.
	SubmitPath string
	// RequestTimeout is the timeout of one submit request.
	RequestTimeout time.Duration
}

// ClientAuth holds identity provider settings and session tokens.
type ClientAuth struct {
	ClientID      string
	CognitoDomain string
	LogoutURI     string
	IDToken       string
	AccessToken   string
	RefreshToken  string
}

// ClientLog holds logger settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Auth    ClientAuth
	Log     ClientLog
}

// GetClientConfig builds and validates the client configuration view.
//
// It loads the base config via [GetStructuredConfig], maps the fields used by
// the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			SubmitPath:     cfg.Adapter.SubmitPath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Auth: ClientAuth{
			ClientID:      cfg.Auth.ClientID,
			CognitoDomain: cfg.Auth.CognitoDomain,
			LogoutURI:     cfg.Auth.LogoutURI,
			IDToken:       cfg.Auth.IDToken,
			AccessToken:   cfg.Auth.AccessToken,
			RefreshToken:  cfg.Auth.RefreshToken,
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
	}
}
