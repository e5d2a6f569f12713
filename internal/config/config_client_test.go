// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "https://api.example.com",
			SubmitPath:     DefaultSubmitPath,
			RequestTimeout: time.Second,
		},
		Log: ClientLog{Level: "info"},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "missing address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "  " }, wantErr: ErrInvalidAdapterConfigs},
		{name: "missing submit path", mutate: func(c *ClientConfig) { c.Adapter.SubmitPath = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "domain without client id", mutate: func(c *ClientConfig) { c.Auth.CognitoDomain = "https://auth" }, wantErr: ErrInvalidAuthConfigs},
		{name: "domain with client id", mutate: func(c *ClientConfig) {
			c.Auth.CognitoDomain = "https://auth"
			c.Auth.ClientID = "id"
		}},
		{name: "unknown log level", mutate: func(c *ClientConfig) { c.Log.Level = "loud" }, wantErr: ErrInvalidLogConfigs},
		{name: "empty log level", mutate: func(c *ClientConfig) { c.Log.Level = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetClientConfig_FromEnvWithDefaults(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "https://api.example.com",
		"APP_HASH_KEY":    "hk",
		"AUTH_ID_TOKEN":   "id.token",
	})

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultSubmitPath, cfg.Adapter.SubmitPath)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "hk", cfg.App.HashKey)
	assert.Equal(t, "id.token", cfg.Auth.IDToken)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestGetClientConfig_EnvBeatsFlags(t *testing.T) {
	setEnvVars(t, map[string]string{"ADAPTER_ADDRESS": "https://env.example.com"})

	fs := newTestFlagSet()
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"-a", "https://flag.example.com",
		"--request-timeout", "7s",
		"--env-file", "",
	}))

	cfg, err := GetClientConfig(flags)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_MissingAddress(t *testing.T) {
	clearEnvVars(t)

	fs := newTestFlagSet()
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--env-file", ""}))

	cfg, err := GetClientConfig(flags)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
