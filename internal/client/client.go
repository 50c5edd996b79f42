package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"messmate-admin/internal/session"

	"github.com/rs/zerolog"
)

// AuthError signals that the backend rejected the session token. The
// client never tears the session down itself; the handler layer clears
// the store and issues the login redirect.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// APIError carries a non-2xx backend response: the status, the
// backend's error code and its human-readable message when one was
// supplied, otherwise a generic per-operation fallback.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Client issues JSON requests against the mess backend, attaching the
// session's bearer token when one exists. It does not retry, queue or
// deduplicate requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   *session.Store
	logger     zerolog.Logger
}

func New(baseURL string, sessions *session.Store, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		sessions: sessions,
		logger:   logger,
	}
}

type requestOptions struct {
	skipAuth bool
	fallback string
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, opts requestOptions) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if !opts.skipAuth {
		if token := c.sessions.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("Backend request failed")
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	// A 401 on an authenticated call means the session token was
	// rejected. On the login call itself it just means bad credentials.
	if resp.StatusCode == http.StatusUnauthorized && !opts.skipAuth {
		c.logger.Warn().Str("method", method).Str("path", path).Msg("Backend rejected session token")
		return &AuthError{Message: "session expired or invalid"}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp, opts.fallback)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) apiError(resp *http.Response, fallback string) *APIError {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: fallback,
	}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Code = body.Error
		if body.Error != "" {
			apiErr.Message = body.Error
		}
		if body.Message != "" {
			apiErr.Message = body.Message
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("backend returned status %d", resp.StatusCode)
	}

	return apiErr
}
