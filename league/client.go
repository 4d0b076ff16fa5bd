// Package league is the client for the upstream league REST API, which owns
// all persistence and is the authority for every bracket, match, and roster
// this tier renders. Calls are one-shot: no retries, no backoff; a failure is
// mapped to a sentinel error and surfaced to the user.
package league

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pitchside/league-web/models"
)

var (
	// ErrSessionExpired covers 401 responses: the caller's token is missing,
	// invalid, or stale, and they need to log in again.
	ErrSessionExpired = errors.New("session expired, please log in again")
	ErrAccessDenied   = errors.New("access denied")
	ErrNotFound       = errors.New("requested resource not found")
	ErrUpstream       = errors.New("league API request failed")
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// playoffPath selects the admin or regular variant of a playoff action
// endpoint. The split is an authorization routing decision, kept in one
// place rather than duplicated per action.
func playoffPath(role models.Role, action string) string {
	if role == models.RoleAdmin {
		return "/api/admin/playoffs/" + action
	}
	return "/api/playoffs/" + action
}

// do issues one request and decodes the JSON response into out (when out is
// non-nil). The bearer token is forwarded as-is; an empty token sends an
// unauthenticated request.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapError(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) mapError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	// Best effort: the upstream error message adds context when present.
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&envelope)

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrSessionExpired
	case http.StatusForbidden:
		return ErrAccessDenied
	case http.StatusNotFound:
		return ErrNotFound
	default:
		if envelope.Error != "" {
			return fmt.Errorf("%w: %s (status %d)", ErrUpstream, envelope.Error, resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
}
