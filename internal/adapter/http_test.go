package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecowaste/fieldsync/internal/config"
	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/models"
)

// staticTokens is a fixed TokenSource for tests.
type staticTokens struct {
	token string
	ok    bool
}

func (s staticTokens) Token(context.Context) (string, bool) { return s.token, s.ok }

func newTestAPI(t *testing.T, srv *httptest.Server, tokens TokenSource) RemoteAPI {
	t.Helper()

	api, err := NewHTTPRemoteAPI(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 2 * time.Second,
	}, tokens, logger.Nop())
	require.NoError(t, err)

	return api
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewHTTPRemoteAPI_EmptyAddress(t *testing.T) {
	_, err := NewHTTPRemoteAPI(config.ClientAdapter{}, staticTokens{}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid adapter http address")
}

func TestNormalizeBaseURL(t *testing.T) {
	url, err := normalizeBaseURL("localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", url)

	url, err = normalizeBaseURL("https://api.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", url)

	_, err = normalizeBaseURL("   ")
	require.Error(t, err)
}

// ── authentication header ────────────────────────────────────────────────────

func TestHTTPRemoteAPI_BearerAttachedOnPrivatePaths(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.Material{})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv, staticTokens{token: "tok-123", ok: true})

	_, err := api.Materials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestHTTPRemoteAPI_NoBearerOnPublicPaths(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.TokenResponse{AccessToken: "a", ExpiresIn: 3600})
	}))
	defer srv.Close()

	// A token is available, but login must not carry it.
	api := newTestAPI(t, srv, staticTokens{token: "tok-123", ok: true})

	_, err := api.Login(context.Background(), models.Credentials{Username: "u", Password: "p"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

// ── status mapping ───────────────────────────────────────────────────────────

func TestHTTPRemoteAPI_StatusErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", tt.status)
		}))

		api := newTestAPI(t, srv, staticTokens{ok: true, token: "t"})
		_, err := api.Materials(context.Background())
		srv.Close()

		require.Error(t, err)
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, tt.status, statusErr.StatusCode)
	}
}

func TestHTTPRemoteAPI_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	api := newTestAPI(t, srv, staticTokens{ok: true, token: "t"})

	_, err := api.Materials(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

// ── Ping ─────────────────────────────────────────────────────────────────────

func TestHTTPRemoteAPI_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathPing, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv, staticTokens{})
	assert.True(t, api.Ping(context.Background()))
}

func TestHTTPRemoteAPI_Ping_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv, staticTokens{})
	assert.False(t, api.Ping(context.Background()))
}

func TestHTTPRemoteAPI_Ping_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	api := newTestAPI(t, srv, staticTokens{})
	assert.False(t, api.Ping(context.Background()))
}

// ── endpoints ────────────────────────────────────────────────────────────────

func TestHTTPRemoteAPI_CreateActivity_ReturnsServerID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathCreateActivity, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var act models.Activity
		require.NoError(t, json.NewDecoder(r.Body).Decode(&act))
		assert.Equal(t, "act-local", act.ID)

		json.NewEncoder(w).Encode(models.CreateResponse{ID: "act-server"})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv, staticTokens{ok: true, token: "t"})

	id, err := api.CreateActivity(context.Background(), models.Activity{
		SyncMeta: models.SyncMeta{ID: "act-local", Tag: models.TagCreate},
	})
	require.NoError(t, err)
	assert.Equal(t, "act-server", id)
}

func TestHTTPRemoteAPI_TransactionRoot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathTransactionRoot, r.URL.Path)
		json.NewEncoder(w).Encode(models.SyncRoot{
			Activities: []models.Activity{{SyncMeta: models.SyncMeta{ID: "act-1"}}},
		})
	}))
	defer srv.Close()

	api := newTestAPI(t, srv, staticTokens{ok: true, token: "t"})

	root, err := api.TransactionRoot(context.Background())
	require.NoError(t, err)
	require.Len(t, root.Activities, 1)
	assert.Equal(t, "act-1", root.Activities[0].ID)
}

func TestHTTPRemoteAPI_EmitCertificate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathEmitCertificate, r.URL.Path)

		var req models.CertificateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tx-1", req.TransactionID)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv, staticTokens{ok: true, token: "t"})
	require.NoError(t, api.EmitCertificate(context.Background(), "tx-1"))
}

func TestHTTPRemoteAPI_Backup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathBackup, r.URL.Path)

		var env models.BackupEnvelope
		require.NoError(t, json.NewDecoder(r.Body).Decode(&env))
		assert.Len(t, env.Requests, 1)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv, staticTokens{ok: true, token: "t"})

	env := models.NewBackupEnvelope(models.SyncRoot{
		Tasks: []models.Task{{SyncMeta: models.SyncMeta{ID: "task-1"}}},
	}, nil, time.Now())
	require.NoError(t, api.Backup(context.Background(), env))
}

func TestMapHTTPError_SuccessRange(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv, staticTokens{ok: true, token: "t"})
	assert.NoError(t, api.UpdateTask(context.Background(), models.Task{SyncMeta: models.SyncMeta{ID: "task-1"}}))
}

func TestStatusError_UnknownStatusHasNoSentinel(t *testing.T) {
	err := &StatusError{StatusCode: http.StatusTeapot}
	assert.Nil(t, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "418")
}
