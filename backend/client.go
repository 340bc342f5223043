// Package backend is the client for the remote storefront REST API. Every
// authenticated call sends "Authorization: Bearer <token>"; token validity is
// entirely the backend's concern, and a 401 surfaces as errors.ErrUnauthorized
// so pages can clear the session and send the visitor back to login.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/shopfront/storefront/internal/errors"
)

// Client talks to the storefront backend. Construct with New; the zero value
// is not usable.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return c
}

// envelope is the response wrapper every resource endpoint uses:
// { success, message?, data, pagination? }.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
	Pagination *Pagination     `json:"pagination"`
}

// do issues a request and decodes the raw response body into out (which may
// be nil). Used by the few endpoints that do not wrap their payload in the
// standard envelope, such as login.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	resp, raw, err := c.roundTrip(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return c.statusError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.Wrapf(apperrors.ErrMalformedResponse, "%s %s: %v", method, path, err)
	}
	return nil
}

// doEnvelope issues a request, unwraps the standard envelope, and decodes its
// data field into out (which may be nil). A response with success:false is a
// recoverable *APIError, never a crash.
func (c *Client) doEnvelope(ctx context.Context, method, path, token string, body, out any) (*Pagination, error) {
	resp, raw, err := c.roundTrip(ctx, method, path, token, body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, c.statusError(resp.StatusCode, raw)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrMalformedResponse, "%s %s: %v", method, path, err)
	}
	if !env.Success {
		return nil, &APIError{Status: resp.StatusCode, Message: envelopeMessage(env)}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, apperrors.Wrapf(apperrors.ErrMalformedResponse, "%s %s data: %v", method, path, err)
		}
	}
	return env.Pagination, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path, token string, body any) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, nil, apperrors.Wrapf(err, "marshal %s %s request", method, path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, apperrors.Wrapf(err, "build %s %s request", method, path)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend unreachable")
		return nil, nil, apperrors.Wrapf(apperrors.ErrBackendUnreachable, "%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, apperrors.Wrapf(err, "read %s %s response", method, path)
	}
	return resp, raw, nil
}

func (c *Client) statusError(status int, raw []byte) error {
	var env envelope
	_ = json.Unmarshal(raw, &env)
	return &APIError{Status: status, Message: envelopeMessage(env)}
}

func envelopeMessage(env envelope) string {
	if env.Message != "" {
		return env.Message
	}
	if env.Error != "" {
		return env.Error
	}
	return "request failed"
}

func pagePath(path string, page int) string {
	if page <= 1 {
		return path
	}
	return fmt.Sprintf("%s?page=%d", path, page)
}
