package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/GbFerrera/asc-admin-api/internal/logger"
	"go.uber.org/zap"
)

// Errors surfaced by the backend client. Handlers translate them into the
// operator-facing notifications; everything else is wrapped with context.
var (
	ErrUnauthorized = errors.New("backend rejected the credential")
	ErrForbidden    = errors.New("backend denied access")
	ErrServer       = errors.New("backend internal error")
	ErrUnavailable  = errors.New("backend is unreachable")
	ErrNotFound     = errors.New("resource not found")
)

type credentialFieldType string

const credentialField credentialFieldType = "backendCredential"

// WithCredential returns a context carrying the bearer token that every
// backend call issued from it will present. The token lives in the request
// context instead of a process-wide singleton so each request keeps its own
// credential.
func WithCredential(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, credentialField, token)
}

// CredentialFromContext extracts the bearer token placed by WithCredential.
func CredentialFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(credentialField).(string)
	return token, ok && token != ""
}

// Client talks to the certificates backend. It holds no state beyond the
// endpoint and the HTTP client; all order state belongs to the backend.
type Client struct {
	endpoint string
	client   *http.Client
}

// New creates a backend client. The timeout bounds every call; there is no
// retrying and no per-request cancellation beyond the caller's context.
func New(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// backendError is the optional error envelope the backend returns alongside
// a non-2xx status.
type backendError struct {
	Message string `json:"message"`
}

// do issues one request and decodes a 2xx response body into out when out is
// non-nil. A 2xx response with an empty or null body leaves out untouched and
// returns ErrNotFound so callers can tell "no resource" apart from success.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := CredentialFromContext(ctx); ok {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %s", ErrUnavailable, method, path, err)
	}

	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := c.checkStatus(res.StatusCode, method, path, data); err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return ErrNotFound
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func (c *Client) checkStatus(status int, method, path string, data []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		// Logged only; the dashboard shows nothing special for 403.
		logger.Log.Error("backend denied access",
			zap.String("method", method),
			zap.String("path", path),
		)
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= 500:
		logger.Log.Error("backend server error",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
		return ErrServer
	}

	var parsed backendError
	if err := json.Unmarshal(data, &parsed); err == nil && parsed.Message != "" {
		return fmt.Errorf("backend returned status %d: %s", status, parsed.Message)
	}

	return fmt.Errorf("backend returned status %d", status)
}
