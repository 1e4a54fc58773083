// Package api calls the remote submissions backend over HTTP/JSON.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/maitri-healthcare/portal/internal/platform/timeouts"
	"github.com/maitri-healthcare/portal/internal/submission"
	apperrors "github.com/maitri-healthcare/portal/internal/services/portal/platform/errors"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/observability"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Backend routes relative to the base URL.
const (
	LoginPath     = "/api/auth/login"
	SignupPath    = "/api/auth/signup"
	DashboardPath = "/api/dashboard"
)

// Operation labels used for metrics and logs.
const (
	OperationLogin     = "login"
	OperationSignup    = "signup"
	OperationDashboard = "dashboard"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// Config configures a Client.
type Config struct {
	// BaseURL is the absolute http(s) backend origin.
	BaseURL string
	// Timeout caps each call. Zero uses timeouts.APIRequest.
	Timeout time.Duration
	// Transport overrides the base round tripper. It is wrapped for tracing.
	Transport http.RoundTripper
	Metrics   *observability.Metrics
}

// Credentials are the login form fields.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration are the signup form fields.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is a successful login or signup.
type AuthResult struct {
	Token string `json:"token"`
}

type dashboardResponse struct {
	Submissions []submission.Submission `json:"submissions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Client is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	metrics *observability.Metrics
	now     func() time.Time
}

// New validates cfg and returns a client.
func New(cfg Config) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = timeouts.APIRequest
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(transport),
		},
		metrics: cfg.Metrics,
		now:     time.Now,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("api base url is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("api base url must be http or https, got %q", raw)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("api base url must include a host, got %q", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}

// BaseURL returns the normalized backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, credentials Credentials) (AuthResult, error) {
	return c.authenticate(ctx, OperationLogin, LoginPath, credentials)
}

// Signup registers an account and returns its token.
func (c *Client) Signup(ctx context.Context, registration Registration) (AuthResult, error) {
	return c.authenticate(ctx, OperationSignup, SignupPath, registration)
}

func (c *Client) authenticate(ctx context.Context, operation, path string, payload any) (AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, operation, http.MethodPost, path, "", payload, &result); err != nil {
		return AuthResult{}, err
	}
	result.Token = strings.TrimSpace(result.Token)
	if result.Token == "" {
		return AuthResult{}, failure(apperrors.KindUnavailable, fmt.Errorf("%s response did not include a token", operation))
	}
	return result, nil
}

// Dashboard fetches every submission visible to token.
func (c *Client) Dashboard(ctx context.Context, token string) ([]submission.Submission, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, failure(apperrors.KindUnauthorized, errors.New("token is required"))
	}
	var result dashboardResponse
	if err := c.do(ctx, OperationDashboard, http.MethodGet, DashboardPath, token, nil, &result); err != nil {
		return nil, err
	}
	if result.Submissions == nil {
		return []submission.Submission{}, nil
	}
	return result.Submissions, nil
}

func (c *Client) do(ctx context.Context, operation, method, path, token string, payload, out any) (err error) {
	started := c.now()
	defer func() {
		c.metrics.ObserveBackend(operation, outcome(err), c.now().Sub(started))
	}()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", operation, err)
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return failure(apperrors.KindUnavailable, fmt.Errorf("%s request: %w", operation, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(operation, resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return failure(apperrors.KindUnavailable, fmt.Errorf("decode %s response: %w", operation, err))
	}
	return nil
}

// statusError maps a non-2xx response to a typed error carrying the
// backend's {"error": "..."} message when present.
func statusError(operation string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	message := ""
	var decoded errorResponse
	if json.Unmarshal(raw, &decoded) == nil {
		message = strings.TrimSpace(decoded.Error)
	}
	cause := fmt.Errorf("%s returned %s", operation, resp.Status)
	return apperrors.Error{Kind: kindForStatus(resp.StatusCode), Message: message, Err: cause}
}

func kindForStatus(status int) apperrors.Kind {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return apperrors.KindUnauthorized
	case status >= 500:
		return apperrors.KindUnavailable
	case status >= 400:
		return apperrors.KindInvalidInput
	default:
		return apperrors.KindUnavailable
	}
}

func outcome(err error) string {
	if err == nil {
		return observability.OutcomeSuccess
	}
	switch apperrors.KindOf(err) {
	case apperrors.KindUnauthorized:
		return observability.OutcomeUnauthorized
	case apperrors.KindInvalidInput:
		return observability.OutcomeRejected
	default:
		return observability.OutcomeUnavailable
	}
}

// failure builds a typed error with no user-facing message, so callers fall
// back to their own localized text.
func failure(kind apperrors.Kind, cause error) error {
	return apperrors.Error{Kind: kind, Err: cause}
}
