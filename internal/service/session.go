package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ecowaste/fieldsync/internal/adapter"
	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/internal/store"
	"github.com/ecowaste/fieldsync/models"
)

type sessionService struct {
	api    adapter.RemoteAPI
	tokens store.TokenRepository
	sync   SyncService
	logger *logger.Logger

	now func() time.Time
}

func NewSessionService(api adapter.RemoteAPI, tokens store.TokenRepository, sync SyncService, logger *logger.Logger) SessionService {
	return &sessionService{api: api, tokens: tokens, sync: sync, logger: logger, now: time.Now}
}

// Login implements [SessionService]. A failed initial load is logged but
// does not fail the login: the session is established and the data arrives
// with the next refresh pass.
func (s *sessionService) Login(ctx context.Context, username, password string) error {
	resp, err := s.api.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	session := models.SessionFromTokenResponse(resp, s.now())
	if session.Username == "" {
		session.Username = username
	}
	if err = s.tokens.SetSession(ctx, session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	if !s.sync.Load(ctx) {
		s.logger.Warn().Msg("initial load incomplete, will retry on next refresh")
	}
	return nil
}

// Resume implements [SessionService]. When the access token is inside its
// expiry margin but a refresh token exists, the pair is refreshed before the
// sync pass.
func (s *sessionService) Resume(ctx context.Context) bool {
	if !s.tokens.HasValidToken(ctx) {
		refreshToken, ok := s.tokens.RefreshToken(ctx)
		if !ok {
			s.logger.Info().Msg("resume without credentials, login required")
			return false
		}

		resp, err := s.api.Refresh(ctx, refreshToken)
		if err != nil {
			s.logger.Warn().Err(err).Msg("token refresh failed")
			return false
		}

		session := models.SessionFromTokenResponse(resp, s.now())
		if session.Username == "" {
			session.Username = s.tokens.Username(ctx)
		}
		if err = s.tokens.SetSession(ctx, session); err != nil {
			s.logger.Error().Err(err).Msg("persist refreshed session")
			return false
		}
	}

	return s.sync.Refresh(ctx)
}

// Logout implements [SessionService]. The close pass already wipes all
// storage rows on success, credentials included; a failed pass leaves
// everything in place and reports false so the caller can retry or export.
func (s *sessionService) Logout(ctx context.Context) bool {
	return s.sync.Close(ctx)
}
