// Package apiclient is the HTTP client the browser-facing handlers use to
// call the server's own JSON API with the system service token.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"plateful/config"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultTimeout is deliberately long; code delivery can sit behind a slow
// outbound mail hop.
const defaultTimeout = 180 * time.Second

// CodeAPI is the surface of the JSON API the login handlers consume.
type CodeAPI interface {
	// RequestLoginCode asks the API to create or resend a login code.
	RequestLoginCode(ctx context.Context, email string, sessionID uuid.UUID) error

	// VerifyLoginCode asks the API to check a submitted code.
	VerifyLoginCode(ctx context.Context, email, code string, sessionID uuid.UUID) error

	// DeleteLoginCode discards any pending code for an address.
	DeleteLoginCode(ctx context.Context, email string) error
}

var _ CodeAPI = (*Client)(nil)

// Client calls the internal JSON API over HTTP, authenticating every request
// with the system service token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      service.SystemCredentials
	logger     *slog.Logger
}

// NewClient builds a Client from config. The base URL normally points back
// at this same process.
func NewClient(cfg *config.Config, creds service.SystemCredentials, logger *slog.Logger) *Client {
	timeout := defaultTimeout
	baseURL := ""
	if cfg.InternalAPI != nil {
		if cfg.InternalAPI.Timeout > 0 {
			timeout = cfg.InternalAPI.Timeout
		}
		baseURL = strings.TrimSuffix(cfg.InternalAPI.BaseURL, "/")
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		creds:      creds,
		logger:     logger,
	}
}

// RequestLoginCode asks the API to create or resend a login code.
func (c *Client) RequestLoginCode(ctx context.Context, email string, sessionID uuid.UUID) error {
	body := map[string]string{"email": email, "session_id": sessionID.String()}

	return c.do(ctx, http.MethodPost, "/api/code", body, nil)
}

// VerifyLoginCode asks the API to check a submitted code.
func (c *Client) VerifyLoginCode(ctx context.Context, email, code string, sessionID uuid.UUID) error {
	body := map[string]string{"email": email, "code": code, "session_id": sessionID.String()}

	return c.do(ctx, http.MethodPost, "/api/code/verify", body, nil)
}

// DeleteLoginCode discards any pending code for an address.
func (c *Client) DeleteLoginCode(ctx context.Context, email string) error {
	body := map[string]string{"email": email}

	return c.do(ctx, http.MethodDelete, "/api/code", body, nil)
}

// envelope mirrors the API's unified response structure.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

// do sends one authenticated request and decodes the response envelope into
// out. API-level failures come back as AppError values carrying the remote
// business error code, so callers can surface them unchanged.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	token, err := c.creds.ValidToken()
	if err != nil {
		// A stale token is still worth trying; the server grants the
		// system subject a grace window.
		c.logger.Warn("proceeding with stale system token",
			slog.String("error", err.Error()))
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "call internal api")
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return errors.Wrapf(err, "decode internal api response (status %d)", resp.StatusCode)
	}

	if !env.Success {
		errorCode := "INTERNAL_API_ERROR"
		details := ""
		if env.Error != nil {
			errorCode = env.Error.Code
			details = env.Error.Details
		}

		return domainerrors.NewBaseError(resp.StatusCode, errorCode, env.Message, details)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "decode internal api payload")
		}
	}

	return nil
}
