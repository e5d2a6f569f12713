// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_HASH_KEY": "security_hash",
		"APP_VERSION":  "1.2.3",

		"ADAPTER_ADDRESS":         "https://api.example.com",
		"ADAPTER_SUBMIT_PATH":     "/prod/imageprocess",
		"ADAPTER_REQUEST_TIMEOUT": "45s",

		"AUTH_CLIENT_ID":      "client-id",
		"AUTH_COGNITO_DOMAIN": "https://auth.example.com",
		"AUTH_LOGOUT_URI":     "http://localhost:5173/",
		"AUTH_ID_TOKEN":       "id.token.value",
		"AUTH_ACCESS_TOKEN":   "access.token.value",
		"AUTH_REFRESH_TOKEN":  "refresh-token",

		"LOG_LEVEL": "info",
		"LOG_FILE":  "/tmp/client.log",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "security_hash", cfg.App.HashKey)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/prod/imageprocess", cfg.Adapter.SubmitPath)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "client-id", cfg.Auth.ClientID)
	assert.Equal(t, "https://auth.example.com", cfg.Auth.CognitoDomain)
	assert.Equal(t, "http://localhost:5173/", cfg.Auth.LogoutURI)
	assert.Equal(t, "id.token.value", cfg.Auth.IDToken)
	assert.Equal(t, "access.token.value", cfg.Auth.AccessToken)
	assert.Equal(t, "refresh-token", cfg.Auth.RefreshToken)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/tmp/client.log", cfg.Log.File)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "localhost:8080",
		"AUTH_ID_TOKEN":   "id.token.value",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Empty(t, cfg.Adapter.SubmitPath)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "id.token.value", cfg.Auth.IDToken)
	assert.Empty(t, cfg.Auth.AccessToken)
	assert.Empty(t, cfg.App.HashKey)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		value string
		want  time.Duration
	}{
		{value: "500ms", want: 500 * time.Millisecond},
		{value: "1m", want: time.Minute},
		{value: "1m30s", want: 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			setEnvVars(t, map[string]string{"ADAPTER_REQUEST_TIMEOUT": tt.value})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.want, cfg.Adapter.RequestTimeout)
		})
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_HASH_KEY",
		"APP_VERSION",

		"ADAPTER_ADDRESS",
		"ADAPTER_SUBMIT_PATH",
		"ADAPTER_REQUEST_TIMEOUT",

		"AUTH_CLIENT_ID",
		"AUTH_COGNITO_DOMAIN",
		"AUTH_LOGOUT_URI",
		"AUTH_ID_TOKEN",
		"AUTH_ACCESS_TOKEN",
		"AUTH_REFRESH_TOKEN",

		"LOG_LEVEL",
		"LOG_FILE",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
