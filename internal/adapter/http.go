package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/ecowaste/fieldsync/internal/config"
	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/models"
)

// Logical endpoint paths of the remote API.
const (
	pathLogin   = "/authentication/login"
	pathRefresh = "/authentication/refreshtoken"
	pathPing    = "/authentication/ping"

	pathMaterials    = "/materials/get"
	pathPoints       = "/points/get"
	pathThirdParties = "/thirdparties/get"
	pathTreatments   = "/treatments/get"
	pathVehicles     = "/vehicles/get"
	pathPackaging    = "/packaging/get"

	pathTransactionRoot   = "/transactions/get"
	pathCreateActivity    = "/transactions/createactividad"
	pathStartActivity     = "/transactions/startactividad"
	pathUpdateActivity    = "/transactions/updateactividad"
	pathCreateTransaction = "/transactions/createtransaccion"
	pathUpdateTransaction = "/transactions/updatetransaccion"
	pathCreateTask        = "/transactions/createtarea"
	pathUpdateTask        = "/transactions/updatetarea"
	pathCreateThirdParty  = "/thirdparties/createtercero"
	pathEmitCertificate   = "/transactions/emitcertificate"
	pathBackup            = "/transactions/backup"
)

// publicPaths never carry an Authorization header, even when a token is
// available.
var publicPaths = map[string]bool{
	pathLogin:   true,
	pathRefresh: true,
	pathPing:    true,
}

type httpRemoteAPI struct {
	client *HTTPClient
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPRemoteAPI constructs the HTTP/REST implementation of [RemoteAPI].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. tokens supplies the bearer token for authenticated paths.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPRemoteAPI(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (RemoteAPI, error) {
	client := NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpRemoteAPI{client: client, tokens: tokens, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request builds a resty request for path, attaching the bearer token unless
// the path is on the public allow-list.
func (h *httpRemoteAPI) request(ctx context.Context, path string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if publicPaths[path] {
		return req
	}

	if token, ok := h.tokens.Token(ctx); ok {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpRemoteAPI) get(ctx context.Context, path string, out any) error {
	resp, err := h.request(ctx, path).Get(path)
	if err != nil {
		return fmt.Errorf("%w: get %s: %v", ErrNetwork, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (h *httpRemoteAPI) post(ctx context.Context, path string, body, out any) error {
	req := h.request(ctx, path).SetHeader("Content-Type", "application/json")
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("%w: post %s: %v", ErrNetwork, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// Login implements [RemoteAPI].
func (h *httpRemoteAPI) Login(ctx context.Context, creds models.Credentials) (models.TokenResponse, error) {
	var tokens models.TokenResponse
	if err := h.post(ctx, pathLogin, creds, &tokens); err != nil {
		return models.TokenResponse{}, fmt.Errorf("login: %w", err)
	}
	return tokens, nil
}

// Refresh implements [RemoteAPI].
func (h *httpRemoteAPI) Refresh(ctx context.Context, refreshToken string) (models.TokenResponse, error) {
	var tokens models.TokenResponse
	req := models.RefreshRequest{RefreshToken: refreshToken}
	if err := h.post(ctx, pathRefresh, req, &tokens); err != nil {
		return models.TokenResponse{}, fmt.Errorf("refresh token: %w", err)
	}
	return tokens, nil
}

// Ping implements [RemoteAPI]. Every failure reads as "offline".
func (h *httpRemoteAPI) Ping(ctx context.Context) bool {
	resp, err := h.request(ctx, pathPing).Get(pathPing)
	if err != nil {
		h.logger.Debug().Err(err).Msg("ping failed")
		return false
	}
	return resp.IsSuccess()
}

func (h *httpRemoteAPI) Materials(ctx context.Context) ([]models.Material, error) {
	var rows []models.Material
	if err := h.get(ctx, pathMaterials, &rows); err != nil {
		return nil, fmt.Errorf("get materials: %w", err)
	}
	return rows, nil
}

func (h *httpRemoteAPI) Points(ctx context.Context) ([]models.Point, error) {
	var rows []models.Point
	if err := h.get(ctx, pathPoints, &rows); err != nil {
		return nil, fmt.Errorf("get points: %w", err)
	}
	return rows, nil
}

func (h *httpRemoteAPI) ThirdParties(ctx context.Context) ([]models.ThirdParty, error) {
	var rows []models.ThirdParty
	if err := h.get(ctx, pathThirdParties, &rows); err != nil {
		return nil, fmt.Errorf("get third parties: %w", err)
	}
	return rows, nil
}

func (h *httpRemoteAPI) Treatments(ctx context.Context) ([]models.Treatment, error) {
	var rows []models.Treatment
	if err := h.get(ctx, pathTreatments, &rows); err != nil {
		return nil, fmt.Errorf("get treatments: %w", err)
	}
	return rows, nil
}

func (h *httpRemoteAPI) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	var rows []models.Vehicle
	if err := h.get(ctx, pathVehicles, &rows); err != nil {
		return nil, fmt.Errorf("get vehicles: %w", err)
	}
	return rows, nil
}

func (h *httpRemoteAPI) Packaging(ctx context.Context) ([]models.Packaging, error) {
	var rows []models.Packaging
	if err := h.get(ctx, pathPackaging, &rows); err != nil {
		return nil, fmt.Errorf("get packaging: %w", err)
	}
	return rows, nil
}

// TransactionRoot implements [RemoteAPI].
func (h *httpRemoteAPI) TransactionRoot(ctx context.Context) (models.SyncRoot, error) {
	var root models.SyncRoot
	if err := h.get(ctx, pathTransactionRoot, &root); err != nil {
		return models.SyncRoot{}, fmt.Errorf("get transaction root: %w", err)
	}
	return root, nil
}

// CreateActivity implements [RemoteAPI].
func (h *httpRemoteAPI) CreateActivity(ctx context.Context, activity models.Activity) (string, error) {
	var ack models.CreateResponse
	if err := h.post(ctx, pathCreateActivity, activity, &ack); err != nil {
		return "", fmt.Errorf("create activity %s: %w", activity.ID, err)
	}
	return ack.ID, nil
}

// StartActivity implements [RemoteAPI].
func (h *httpRemoteAPI) StartActivity(ctx context.Context, activity models.Activity) (string, error) {
	var ack models.CreateResponse
	if err := h.post(ctx, pathStartActivity, activity, &ack); err != nil {
		return "", fmt.Errorf("start activity %s: %w", activity.ID, err)
	}
	return ack.ID, nil
}

// UpdateActivity implements [RemoteAPI].
func (h *httpRemoteAPI) UpdateActivity(ctx context.Context, activity models.Activity) error {
	if err := h.post(ctx, pathUpdateActivity, activity, nil); err != nil {
		return fmt.Errorf("update activity %s: %w", activity.ID, err)
	}
	return nil
}

// CreateTransaction implements [RemoteAPI].
func (h *httpRemoteAPI) CreateTransaction(ctx context.Context, tx models.Transaction) (string, error) {
	var ack models.CreateResponse
	if err := h.post(ctx, pathCreateTransaction, tx, &ack); err != nil {
		return "", fmt.Errorf("create transaction %s: %w", tx.ID, err)
	}
	return ack.ID, nil
}

// UpdateTransaction implements [RemoteAPI].
func (h *httpRemoteAPI) UpdateTransaction(ctx context.Context, tx models.Transaction) error {
	if err := h.post(ctx, pathUpdateTransaction, tx, nil); err != nil {
		return fmt.Errorf("update transaction %s: %w", tx.ID, err)
	}
	return nil
}

// CreateTask implements [RemoteAPI].
func (h *httpRemoteAPI) CreateTask(ctx context.Context, task models.Task) (string, error) {
	var ack models.CreateResponse
	if err := h.post(ctx, pathCreateTask, task, &ack); err != nil {
		return "", fmt.Errorf("create task %s: %w", task.ID, err)
	}
	return ack.ID, nil
}

// UpdateTask implements [RemoteAPI].
func (h *httpRemoteAPI) UpdateTask(ctx context.Context, task models.Task) error {
	if err := h.post(ctx, pathUpdateTask, task, nil); err != nil {
		return fmt.Errorf("update task %s: %w", task.ID, err)
	}
	return nil
}

// CreateThirdParty implements [RemoteAPI].
func (h *httpRemoteAPI) CreateThirdParty(ctx context.Context, row models.ThirdParty) (string, error) {
	var ack models.CreateResponse
	if err := h.post(ctx, pathCreateThirdParty, row, &ack); err != nil {
		return "", fmt.Errorf("create third party %s: %w", row.ID, err)
	}
	return ack.ID, nil
}

// EmitCertificate implements [RemoteAPI].
func (h *httpRemoteAPI) EmitCertificate(ctx context.Context, transactionID string) error {
	req := models.CertificateRequest{TransactionID: transactionID}
	if err := h.post(ctx, pathEmitCertificate, req, nil); err != nil {
		return fmt.Errorf("emit certificate for %s: %w", transactionID, err)
	}
	return nil
}

// Backup implements [RemoteAPI].
func (h *httpRemoteAPI) Backup(ctx context.Context, envelope models.BackupEnvelope) error {
	if err := h.post(ctx, pathBackup, envelope, nil); err != nil {
		return fmt.Errorf("remote backup: %w", err)
	}
	return nil
}
