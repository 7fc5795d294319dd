/*
Package api contains the HTTP client for the Pariksha Mitra REST API.

It mirrors the server's wire contract: JSON requests, success payloads of the
form {message, user, token}, and failures of the form {"error": message}.
*/
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// User is the client-side projection of an account.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// AuthResult is the session payload returned by register and login.
type AuthResult struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
	Token   string `json:"token"`
}

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	InvitationCode string `json:"invitationCode,omitempty"`
}

// Client defines the remote operations the CLI depends on.
//
// All methods honor context cancellation; a failed network round trip is
// reported as ErrUnavailable.
type Client interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context, token string) (*User, error)
	TeacherOverview(ctx context.Context, token string) (string, error)
}

// HTTPClient is the concrete Client talking to a running API server.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// New constructs an HTTPClient for the given base URL (e.g. "http://localhost:5000").
func New(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// errorBody matches the server's failure envelope.
type errorBody struct {
	Error string `json:"error"`
}

// do executes one JSON round trip and decodes the response into out.
// Non-2xx responses are converted into sentinel-wrapped errors carrying the
// server's message.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	var e errorBody
	_ = json.NewDecoder(res.Body).Decode(&e)
	if e.Error == "" {
		e.Error = res.Status
	}

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, e.Error)
	case res.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, e.Error)
	case res.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, e.Error)
	case res.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, e.Error)
	case res.StatusCode >= 500:
		return fmt.Errorf("%w: %s", ErrServer, e.Error)
	default:
		// Validation, conflict, and credential failures surface as the
		// server message verbatim.
		return fmt.Errorf("%s", e.Error)
	}
}

// Register creates a new account and returns the initial session payload.
func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Login exchanges credentials for a session payload.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me fetches the profile behind the given token.
func (c *HTTPClient) Me(ctx context.Context, token string) (*User, error) {
	var result struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users/me", token, nil, &result); err != nil {
		return nil, err
	}
	return result.User, nil
}

// TeacherOverview fetches the role-gated dashboard greeting.
func (c *HTTPClient) TeacherOverview(ctx context.Context, token string) (string, error) {
	var result struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/teacher/overview", token, nil, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}
