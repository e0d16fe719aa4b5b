package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/models"
)

// newTestTokenRepo builds a tokenRepository over a sqlmock connection with
// the clock pinned to now.
func newTestTokenRepo(t *testing.T, now time.Time) (*tokenRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	repo := NewTokenRepository(db, logger.Nop()).(*tokenRepository)
	repo.now = func() time.Time { return now }

	return repo, mock
}

func expiryRow(expiresAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"value"}).AddRow(expiresAt.UTC().Format(time.RFC3339))
}

// ── SetSession ───────────────────────────────────────────────────────────────

func TestTokenRepository_SetSession(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo, mock := newTestTokenRepo(t, now)

	session := models.Session{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Username:     "driver7",
		ExpiresAt:    now.Add(time.Hour),
	}

	mock.ExpectExec("INSERT INTO records").WithArgs(keyAccessToken, "access").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO records").WithArgs(keyRefreshToken, "refresh").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO records").WithArgs(keyUsername, "driver7").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO records").WithArgs(keyTokenExpiresAt, "2025-06-01T13:00:00Z").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetSession(context.Background(), session))
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── Token ────────────────────────────────────────────────────────────────────

func TestTokenRepository_Token_Valid(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo, mock := newTestTokenRepo(t, now)

	mock.ExpectQuery("SELECT value").WithArgs(keyAccessToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("access"))
	mock.ExpectQuery("SELECT value").WithArgs(keyTokenExpiresAt).
		WillReturnRows(expiryRow(now.Add(time.Hour)))

	token, ok := repo.Token(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "access", token)
}

func TestTokenRepository_Token_InsideExpiryMargin(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo, mock := newTestTokenRepo(t, now)

	mock.ExpectQuery("SELECT value").WithArgs(keyAccessToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("access"))
	// Expires in 2 minutes: inside the 5-minute safety margin.
	mock.ExpectQuery("SELECT value").WithArgs(keyTokenExpiresAt).
		WillReturnRows(expiryRow(now.Add(2 * time.Minute)))

	_, ok := repo.Token(context.Background())
	assert.False(t, ok)
}

func TestTokenRepository_Token_Missing(t *testing.T) {
	repo, mock := newTestTokenRepo(t, time.Now())

	mock.ExpectQuery("SELECT value").WithArgs(keyAccessToken).WillReturnError(sql.ErrNoRows)

	_, ok := repo.Token(context.Background())
	assert.False(t, ok)
}

func TestTokenRepository_Token_ReadErrorFailsClosed(t *testing.T) {
	repo, mock := newTestTokenRepo(t, time.Now())

	mock.ExpectQuery("SELECT value").WithArgs(keyAccessToken).
		WillReturnError(errors.New("database is locked"))

	_, ok := repo.Token(context.Background())
	assert.False(t, ok)
}

func TestTokenRepository_Token_UnparsableExpiry(t *testing.T) {
	repo, mock := newTestTokenRepo(t, time.Now())

	mock.ExpectQuery("SELECT value").WithArgs(keyAccessToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("access"))
	mock.ExpectQuery("SELECT value").WithArgs(keyTokenExpiresAt).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("garbage"))

	_, ok := repo.Token(context.Background())
	assert.False(t, ok)
}

// ── RefreshToken / Username ──────────────────────────────────────────────────

func TestTokenRepository_RefreshToken(t *testing.T) {
	repo, mock := newTestTokenRepo(t, time.Now())

	mock.ExpectQuery("SELECT value").WithArgs(keyRefreshToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("refresh"))

	token, ok := repo.RefreshToken(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "refresh", token)
}

func TestTokenRepository_RefreshToken_Empty(t *testing.T) {
	repo, mock := newTestTokenRepo(t, time.Now())

	mock.ExpectQuery("SELECT value").WithArgs(keyRefreshToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(""))

	_, ok := repo.RefreshToken(context.Background())
	assert.False(t, ok)
}

func TestTokenRepository_Username_Missing(t *testing.T) {
	repo, mock := newTestTokenRepo(t, time.Now())

	mock.ExpectQuery("SELECT value").WithArgs(keyUsername).WillReturnError(sql.ErrNoRows)

	assert.Empty(t, repo.Username(context.Background()))
}

// ── Clear ────────────────────────────────────────────────────────────────────

func TestTokenRepository_Clear(t *testing.T) {
	repo, mock := newTestTokenRepo(t, time.Now())

	for _, key := range []string{keyAccessToken, keyRefreshToken, keyUsername, keyTokenExpiresAt} {
		mock.ExpectExec("DELETE FROM records").WithArgs(key).WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, repo.Clear(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
