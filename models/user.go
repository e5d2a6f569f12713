// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserProfile holds the identity claims the client displays. It is read from
// the ID token issued by the external identity provider.
type UserProfile struct {
	Subject string
	Email   string
	Name    string
}

// User is the token bundle of an authenticated session. The client never
// issues or refreshes tokens itself; it only forwards the access token to the
// processing endpoint.
type User struct {
	Profile      UserProfile
	IDToken      string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Expired reports whether the ID token expiry has passed at now. A zero
// expiry never expires.
func (u User) Expired(now time.Time) bool {
	return !u.ExpiresAt.IsZero() && now.After(u.ExpiresAt)
}
