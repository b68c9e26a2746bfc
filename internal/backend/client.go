// Package backend talks to the FieldBase REST API. It only moves requests and
// replies; deciding what a reply means is left to the callers.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fieldbase/admin/internal/domain"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Endpoint paths relative to the configured base URL.
const (
	PathValidateToken  = "/api/validate-token"
	PathLogin          = "/login"
	PathForgotPassword = "/forgot-password"
	PathRegister       = "/register"
)

// maxReplyBytes bounds how much of a reply body is read.
const maxReplyBytes = 1 << 20

// Reply fields are looked up in order; the first non-empty one wins.
var (
	tokenFields     = []string{"token", "access_token", "authToken"}
	firstNameFields = []string{"firstname", "first_name", "user.firstname", "user.first_name"}
	lastNameFields  = []string{"lastname", "last_name", "user.lastname", "user.last_name"}
)

// Reply is the decoded part of a backend response the front-end cares about.
type Reply struct {
	Status    int
	Message   string
	Token     string
	FirstName string
	LastName  string
}

// Identity returns the login outcome carried by the reply.
func (r Reply) Identity() domain.Identity {
	return domain.Identity{Token: r.Token, FirstName: r.FirstName, LastName: r.LastName}
}

// OK reports whether the reply carried a 2xx status.
func (r Reply) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Is reports whether the reply message equals the given success sentinel.
func (r Reply) Is(sentinel string) bool {
	return r.Message == sentinel
}

// Client is an HTTP client for the backend API.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  trace.Tracer
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTracer sets the tracer used to wrap each call in a span.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// NewClient creates a backend client for baseURL with the given request timeout.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tracer:  noop.NewTracerProvider().Tracer("backend"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ValidateToken checks a bearer token. It returns nil for a 2xx answer,
// domain.ErrInvalidToken for any other status and a wrapped transport error
// when the backend could not be reached.
func (c *Client) ValidateToken(ctx context.Context, token string) error {
	ctx, span := c.tracer.Start(ctx, "backend.ValidateToken")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+PathValidateToken, nil)
	if err != nil {
		return c.fail(span, fmt.Errorf("failed to build validate-token request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(span, fmt.Errorf("failed to reach validate-token endpoint: %w", err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxReplyBytes))

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.fail(span, fmt.Errorf("%w: status %d", domain.ErrInvalidToken, resp.StatusCode))
	}
	return nil
}

// Login exchanges credentials for a token. Any decodable answer is returned as
// a Reply regardless of its status; only transport failures and non-JSON
// bodies produce an error.
func (c *Client) Login(ctx context.Context, username, password string) (Reply, error) {
	body := map[string]string{"username": username, "password": password}
	return c.postJSON(ctx, "backend.Login", PathLogin, "", body)
}

// ForgotPassword asks the backend to send a password reset email.
func (c *Client) ForgotPassword(ctx context.Context, email string) (Reply, error) {
	body := map[string]string{"email": email}
	return c.postJSON(ctx, "backend.ForgotPassword", PathForgotPassword, "", body)
}

// RegisterUser creates a user on behalf of the authenticated administrator.
func (c *Client) RegisterUser(ctx context.Context, token string, user domain.NewUser) (Reply, error) {
	return c.postJSON(ctx, "backend.RegisterUser", PathRegister, token, user)
}

func (c *Client) postJSON(ctx context.Context, op, path, token string, payload any) (Reply, error) {
	ctx, span := c.tracer.Start(ctx, op, trace.WithAttributes(attribute.String("http.route", path)))
	defer span.End()

	body, err := json.Marshal(payload)
	if err != nil {
		return Reply{}, c.fail(span, fmt.Errorf("failed to marshal %s payload: %w", path, err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return Reply{}, c.fail(span, fmt.Errorf("failed to build %s request: %w", path, err))
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Reply{}, c.fail(span, fmt.Errorf("failed to send request to %s: %w", path, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return Reply{}, c.fail(span, fmt.Errorf("failed to read %s reply: %w", path, err))
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	reply, err := decodeReply(resp.StatusCode, raw)
	if err != nil {
		return Reply{}, c.fail(span, fmt.Errorf("%s: %w", path, err))
	}

	slog.Debug("Backend reply", "path", path, "status", reply.Status, "message", reply.Message)
	return reply, nil
}

// decodeReply extracts the message, token and user names from a JSON body.
func decodeReply(status int, raw []byte) (Reply, error) {
	if !gjson.ValidBytes(raw) {
		return Reply{}, fmt.Errorf("%w: status %d", domain.ErrMalformedReply, status)
	}

	return Reply{
		Status:    status,
		Message:   gjson.GetBytes(raw, "message").String(),
		Token:     firstOf(raw, tokenFields),
		FirstName: firstOf(raw, firstNameFields),
		LastName:  firstOf(raw, lastNameFields),
	}, nil
}

func firstOf(raw []byte, paths []string) string {
	for _, res := range gjson.GetManyBytes(raw, paths...) {
		if s := res.String(); s != "" {
			return s
		}
	}
	return ""
}

func (c *Client) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
