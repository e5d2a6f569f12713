// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/go-ocr-batch/internal/config"
)

// LogoutURL builds the hosted logout URL:
//
//	<cognito domain>/logout?client_id=<id>&logout_uri=<escaped uri>
//
// A domain without a scheme is treated as https. Returns an empty string when
// the domain or the client ID is missing.
func LogoutURL(cfg config.ClientAuth) string {
	domain := strings.TrimRight(strings.TrimSpace(cfg.CognitoDomain), "/")
	if domain == "" || cfg.ClientID == "" {
		return ""
	}
	if !strings.Contains(domain, "://") {
		domain = "https://" + domain
	}

	q := url.Values{}
	q.Set("client_id", cfg.ClientID)
	q.Set("logout_uri", cfg.LogoutURI)

	return domain + "/logout?" + q.Encode()
}
