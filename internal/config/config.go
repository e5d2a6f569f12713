// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	// DefaultSubmitPath is the resource path of the processing endpoint.
	DefaultSubmitPath = "/default/imageprocess"

	// DefaultRequestTimeout bounds a whole submit round-trip.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "debug"

	// DefaultEnvFile is the dotenv file looked up in the working directory.
	DefaultEnvFile = ".env"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the processing endpoint location and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Auth holds the identity provider settings and the session tokens
	// handed over by it.
	Auth Auth `envPrefix:"AUTH_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used to sign request bodies (HashSHA256
	// header). Signing is skipped when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string reported to the endpoint in the
	// User-Agent header.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds settings of the outbound processor adapter.
type Adapter struct {
	// HTTPAddress is the base URL of the processing API
	// (e.g. "https://abc.execute-api.us-east-2.amazonaws.com"). A missing
	// scheme defaults to https.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// SubmitPath is appended to HTTPAddress for batch submissions.
	// Env: ADAPTER_SUBMIT_PATH
	SubmitPath string `env:"SUBMIT_PATH"`

	// RequestTimeout is the maximum duration of one submit request
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds identity provider settings. Tokens are issued by the provider
// outside of this program and are only read.
type Auth struct {
	// Env: AUTH_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// CognitoDomain is the hosted UI domain used to build the logout URL.
	// Env: AUTH_COGNITO_DOMAIN
	CognitoDomain string `env:"COGNITO_DOMAIN"`

	// Env: AUTH_LOGOUT_URI
	LogoutURI string `env:"LOGOUT_URI"`

	// Env: AUTH_ID_TOKEN
	IDToken string `env:"ID_TOKEN"`

	// Env: AUTH_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// Env: AUTH_REFRESH_TOKEN
	RefreshToken string `env:"REFRESH_TOKEN"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the path of the client log file. Empty means "logs" next to
	// the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. flags may be nil when no command line is bound.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(flags.envFilePath()).
		withEnv().
		withFlags(flags).
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			SubmitPath:     DefaultSubmitPath,
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}
