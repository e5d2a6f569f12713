// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds configuration values bound to a command-line flag set.
// Create it with [BindFlags] before the flag set is parsed; the values are
// read when the config is built.
type Flags struct {
	address        string
	submitPath     string
	requestTimeout time.Duration
	hashKey        string
	jsonConfigPath string
	envFile        string
	logLevel       string
	logFile        string
	idToken        string
	accessToken    string
}

// BindFlags registers all configuration flags on fs.
//
// Flags:
//
//	-a, --address          processing API base URL
//	    --submit-path      batch submission resource path
//	    --request-timeout  request timeout (e.g. "30s", "1m")
//	    --hash-key         request body HMAC key
//	-c, --config           json file path with configs
//	    --env-file         dotenv file path
//	    --log-level        log level
//	    --log-file         log file path
//	    --id-token         identity provider ID token
//	    --access-token     identity provider access token
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVarP(&f.address, "address", "a", "", "Processing API base URL")
	fs.StringVar(&f.submitPath, "submit-path", "", "Batch submission resource path")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&f.hashKey, "hash-key", "", "Request body HMAC key")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&f.envFile, "env-file", DefaultEnvFile, "Dotenv file path")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&f.logFile, "log-file", "", "Log file path")
	fs.StringVar(&f.idToken, "id-token", "", "Identity provider ID token")
	fs.StringVar(&f.accessToken, "access-token", "", "Identity provider access token")

	return f
}

func (f *Flags) config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			HashKey: f.hashKey,
		},
		Adapter: Adapter{
			HTTPAddress:    f.address,
			SubmitPath:     f.submitPath,
			RequestTimeout: f.requestTimeout,
		},
		Auth: Auth{
			IDToken:     f.idToken,
			AccessToken: f.accessToken,
		},
		Log: Log{
			Level: f.logLevel,
			File:  f.logFile,
		},
		JSONFilePath: f.jsonConfigPath,
	}
}

func (f *Flags) envFilePath() string {
	if f == nil {
		return DefaultEnvFile
	}
	return f.envFile
}
