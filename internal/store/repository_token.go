package store

import (
	"context"
	"time"

	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/models"
)

// expiryMargin is the safety window before the recorded expiry within which
// the access token is already treated as invalid. Refreshing proactively
// beats racing an expiring token against the server.
const expiryMargin = 300 * time.Second

type tokenRepository struct {
	*DB
	logger *logger.Logger

	// now is swapped in tests to pin the clock.
	now func() time.Time
}

func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	return &tokenRepository{DB: db, logger: logger, now: time.Now}
}

func (t *tokenRepository) SetSession(ctx context.Context, session models.Session) error {
	if err := t.setValue(ctx, keyAccessToken, session.AccessToken); err != nil {
		return err
	}
	if err := t.setValue(ctx, keyRefreshToken, session.RefreshToken); err != nil {
		return err
	}
	if err := t.setValue(ctx, keyUsername, session.Username); err != nil {
		return err
	}
	return t.setValue(ctx, keyTokenExpiresAt, session.ExpiresAt.UTC().Format(time.RFC3339))
}

// Token implements [TokenRepository]. Any storage read failure is treated as
// "no token": the caller must re-authenticate rather than proceed with a
// credential of unknown validity.
func (t *tokenRepository) Token(ctx context.Context) (string, bool) {
	token, err := t.getValue(ctx, keyAccessToken)
	if err != nil || token == "" {
		return "", false
	}

	raw, err := t.getValue(ctx, keyTokenExpiresAt)
	if err != nil {
		return "", false
	}
	expiresAt, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		t.logger.Warn().Err(err).Msg("unreadable token expiry, treating token as expired")
		return "", false
	}

	if t.now().After(expiresAt.Add(-expiryMargin)) {
		return "", false
	}

	return token, true
}

func (t *tokenRepository) RefreshToken(ctx context.Context) (string, bool) {
	token, err := t.getValue(ctx, keyRefreshToken)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

func (t *tokenRepository) Username(ctx context.Context) string {
	name, err := t.getValue(ctx, keyUsername)
	if err != nil {
		return ""
	}
	return name
}

func (t *tokenRepository) HasValidToken(ctx context.Context) bool {
	_, ok := t.Token(ctx)
	return ok
}

func (t *tokenRepository) HasRefreshToken(ctx context.Context) bool {
	_, ok := t.RefreshToken(ctx)
	return ok
}

func (t *tokenRepository) Clear(ctx context.Context) error {
	for _, key := range []string{keyAccessToken, keyRefreshToken, keyUsername, keyTokenExpiresAt} {
		if err := t.deleteValue(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
