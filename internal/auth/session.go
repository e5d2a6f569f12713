// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-ocr-batch/internal/config"
	"github.com/MKhiriev/go-ocr-batch/internal/logger"
	"github.com/MKhiriev/go-ocr-batch/models"
	"github.com/golang-jwt/jwt/v5"
)

// idTokenClaims are the OIDC claims read from the ID token.
type idTokenClaims struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"cognito:username"`
	jwt.RegisteredClaims
}

type staticSession struct {
	cfg config.ClientAuth
	now func() time.Time

	mu      sync.RWMutex
	loading bool
	user    *models.User
	err     error

	logger *logger.Logger
}

// NewStaticSession returns a [SessionProvider] backed by the tokens in cfg.
//
// The ID token signature is not verified: it was obtained from the identity
// provider over TLS and is only used to display the profile. The processing
// endpoint verifies the access token on every request.
func NewStaticSession(cfg config.ClientAuth, logger *logger.Logger) SessionProvider {
	return &staticSession{
		cfg:     cfg,
		now:     time.Now,
		loading: true,
		logger:  logger,
	}
}

func (s *staticSession) Load(ctx context.Context) error {
	user, err := s.resolve(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
	s.user, s.err = user, err

	switch {
	case err != nil:
		s.logger.Err(err).Msg("identity session rejected")
	case user == nil:
		s.logger.Info().Msg("no identity session")
	default:
		s.logger.Info().
			Str("subject", user.Profile.Subject).
			Time("expires_at", user.ExpiresAt).
			Msg("identity session loaded")
	}

	return err
}

func (s *staticSession) resolve(ctx context.Context) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	cfg := s.cfg
	s.mu.RUnlock()

	raw := strings.TrimSpace(cfg.IDToken)
	if raw == "" {
		return nil, nil
	}

	claims := &idTokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidIDToken, err)
	}

	user := &models.User{
		Profile: models.UserProfile{
			Subject: claims.Subject,
			Email:   claims.Email,
			Name:    claims.Name,
		},
		IDToken:      raw,
		AccessToken:  strings.TrimSpace(cfg.AccessToken),
		RefreshToken: strings.TrimSpace(cfg.RefreshToken),
	}
	if user.Profile.Name == "" {
		user.Profile.Name = claims.Username
	}
	if claims.ExpiresAt != nil {
		user.ExpiresAt = claims.ExpiresAt.Time
	}

	if user.Expired(s.now()) {
		return nil, fmt.Errorf("%w at %s", ErrSessionExpired, user.ExpiresAt.Format(time.RFC3339))
	}

	return user, nil
}

func (s *staticSession) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *staticSession) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.loading && s.user != nil && !s.user.Expired(s.now())
}

func (s *staticSession) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *staticSession) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loading || s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *staticSession) SignOut() string {
	s.mu.Lock()
	s.user = nil
	s.err = nil
	s.loading = false
	s.cfg.IDToken, s.cfg.AccessToken, s.cfg.RefreshToken = "", "", ""
	logoutURL := LogoutURL(s.cfg)
	s.mu.Unlock()

	s.logger.Info().Msg("signed out")
	return logoutURL
}
