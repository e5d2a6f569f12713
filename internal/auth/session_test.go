// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-ocr-batch/internal/config"
	"github.com/MKhiriev/go-ocr-batch/internal/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ─────────────────────────────────────────────────────────────────

func signIDToken(t *testing.T, claims idTokenClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("any-key"))
	require.NoError(t, err)
	return s
}

func testAuthConfig(idToken string) config.ClientAuth {
	return config.ClientAuth{
		ClientID:      "client-123",
		CognitoDomain: "https://auth.example.com",
		LogoutURI:     "http://localhost:3000/",
		IDToken:       idToken,
		AccessToken:   " access ",
		RefreshToken:  "refresh",
	}
}

// ── Load ────────────────────────────────────────────────────────────────────

func TestStaticSession_Load_Valid(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signIDToken(t, idTokenClaims{
		Email: "alice@example.com",
		Name:  "Alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "sub-1",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	s := NewStaticSession(testAuthConfig(raw), logger.Nop())
	assert.True(t, s.IsLoading())
	assert.False(t, s.IsAuthenticated())

	require.NoError(t, s.Load(context.Background()))

	assert.False(t, s.IsLoading())
	assert.True(t, s.IsAuthenticated())
	assert.NoError(t, s.Err())

	user, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", user.Profile.Email)
	assert.Equal(t, "Alice", user.Profile.Name)
	assert.Equal(t, "sub-1", user.Profile.Subject)
	assert.Equal(t, "access", user.AccessToken)
	assert.Equal(t, "refresh", user.RefreshToken)
	assert.Equal(t, raw, user.IDToken)
	assert.True(t, exp.Equal(user.ExpiresAt))
}

func TestStaticSession_Load_UsernameFallback(t *testing.T) {
	raw := signIDToken(t, idTokenClaims{Username: "alice01"})

	s := NewStaticSession(testAuthConfig(raw), logger.Nop())
	require.NoError(t, s.Load(context.Background()))

	user, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "alice01", user.Profile.Name)
	assert.True(t, user.ExpiresAt.IsZero())
}

func TestStaticSession_Load_NoToken(t *testing.T) {
	s := NewStaticSession(testAuthConfig(""), logger.Nop())

	require.NoError(t, s.Load(context.Background()))

	assert.False(t, s.IsLoading())
	assert.False(t, s.IsAuthenticated())
	assert.NoError(t, s.Err())
	_, ok := s.User()
	assert.False(t, ok)
}

func TestStaticSession_Load_Malformed(t *testing.T) {
	s := NewStaticSession(testAuthConfig("not.a.jwt"), logger.Nop())

	err := s.Load(context.Background())

	assert.ErrorIs(t, err, ErrInvalidIDToken)
	assert.ErrorIs(t, s.Err(), ErrInvalidIDToken)
	assert.False(t, s.IsAuthenticated())
}

func TestStaticSession_Load_Expired(t *testing.T) {
	raw := signIDToken(t, idTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
	})
	s := NewStaticSession(testAuthConfig(raw), logger.Nop())

	err := s.Load(context.Background())

	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.False(t, s.IsAuthenticated())
}

func TestStaticSession_Load_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewStaticSession(testAuthConfig("x"), logger.Nop())
	assert.ErrorIs(t, s.Load(ctx), context.Canceled)
	assert.False(t, s.IsLoading())
}

func TestStaticSession_ExpiresWhileRunning(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	raw := signIDToken(t, idTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
	})

	s := NewStaticSession(testAuthConfig(raw), logger.Nop()).(*staticSession)
	require.NoError(t, s.Load(context.Background()))
	require.True(t, s.IsAuthenticated())

	s.now = func() time.Time { return exp.Add(time.Minute) }
	assert.False(t, s.IsAuthenticated())
}

// ── SignOut / LogoutURL ─────────────────────────────────────────────────────

func TestStaticSession_SignOut(t *testing.T) {
	raw := signIDToken(t, idTokenClaims{Email: "a@b.c"})
	s := NewStaticSession(testAuthConfig(raw), logger.Nop())
	require.NoError(t, s.Load(context.Background()))

	got := s.SignOut()

	assert.Equal(t, "https://auth.example.com/logout?client_id=client-123&logout_uri=http%3A%2F%2Flocalhost%3A3000%2F", got)
	assert.False(t, s.IsAuthenticated())
	_, ok := s.User()
	assert.False(t, ok)

	// the dropped tokens are not picked up again
	require.NoError(t, s.Load(context.Background()))
	assert.False(t, s.IsAuthenticated())
}

func TestLogoutURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ClientAuth
		want string
	}{
		{
			name: "bare domain",
			cfg:  config.ClientAuth{ClientID: "id", CognitoDomain: "auth.example.com/", LogoutURI: "https://app.example.com"},
			want: "https://auth.example.com/logout?client_id=id&logout_uri=https%3A%2F%2Fapp.example.com",
		},
		{
			name: "no domain",
			cfg:  config.ClientAuth{ClientID: "id"},
			want: "",
		},
		{
			name: "no client id",
			cfg:  config.ClientAuth{CognitoDomain: "https://auth.example.com"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LogoutURL(tt.cfg)
			assert.Equal(t, tt.want, got)
			if got != "" {
				u, err := url.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, "/logout", u.Path)
			}
		})
	}
}
