// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	ErrInvalidIDToken = errors.New("invalid id token")
	ErrSessionExpired = errors.New("session expired")
)
