package apiclient

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
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Mode selects how a 401 is handled.
type Mode int

const (
	// ModeBrowser tears the session down: one logout call, token cleared, navigate to login.
	ModeBrowser Mode = iota
	// ModeServer returns an AuthError carrying a redirect for the page layer.
	ModeServer
)

const (
	PathLogin    = "auth/login"
	PathRegister = "auth/register"
	PathLogout   = "auth/logout"
)

// Navigator performs the forced navigation after a 401.
type Navigator interface {
	Navigate(ctx context.Context, path string)
}

type NavigatorFunc func(ctx context.Context, path string)

func (f NavigatorFunc) Navigate(ctx context.Context, path string) { f(ctx, path) }

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	Tokens     TokenStore
	Navigator  Navigator
	Mode       Mode
	Logger     *logrus.Logger
	LoginPage  string // default "/login"
	LogoutPage string // default "/logout"
}

// Client is the single entry point for backend calls.
type Client struct {
	baseURL    string
	http       *http.Client
	tokens     TokenStore
	nav        Navigator
	mode       Mode
	logger     *logrus.Logger
	loginPage  string
	logoutPage string

	logouts   singleflight.Group
	teardowns singleflight.Group

	mu      sync.Mutex
	revoked map[string]time.Time
}

// revokedTTL is how long a logged-out token is remembered, so 401s that land
// after the logout finished do not revoke it again.
const revokedTTL = 2 * time.Minute

type Request struct {
	Method string
	Path   string
	Body   any
	Header http.Header
	Params url.Values
}

type Response struct {
	Status  int
	Payload json.RawMessage
}

func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = NewMemoryStore("")
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		http:       hc,
		tokens:     tokens,
		nav:        cfg.Navigator,
		mode:       cfg.Mode,
		logger:     cfg.Logger,
		loginPage:  cfg.LoginPage,
		logoutPage: cfg.LogoutPage,
		revoked:    map[string]time.Time{},
	}
	if c.loginPage == "" {
		c.loginPage = "/login"
	}
	if c.logoutPage == "" {
		c.logoutPage = "/logout"
	}
	return c
}

// Tokens exposes the store so callers can mirror token changes elsewhere.
func (c *Client) Tokens() TokenStore { return c.tokens }

// Do issues the request and maps non-2xx statuses onto EntityError, AuthError or HTTPError.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	token := c.tokens.Get(ctx)
	resp, err := c.send(ctx, req, token)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.Status >= 200 && resp.Status < 300:
		c.afterSuccess(ctx, req.Path, resp.Payload)
		return resp, nil
	case resp.Status == http.StatusUnprocessableEntity:
		return nil, &EntityError{Status: resp.Status, Payload: resp.Payload, Errors: NormalizeEntityErrors(resp.Payload)}
	case resp.Status == http.StatusUnauthorized:
		return nil, c.unauthorized(ctx, req.Path, token, resp)
	default:
		return nil, &HTTPError{Status: resp.Status, Payload: resp.Payload, Message: messageFrom(resp.Payload, resp.Status)}
	}
}

func (c *Client) send(ctx context.Context, req Request, token string) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var (
		body        io.Reader
		contentType string
	)
	switch b := req.Body.(type) {
	case nil:
	case *FormData:
		buf, ct, err := b.encode()
		if err != nil {
			return nil, fmt.Errorf("encode form data: %w", err)
		}
		body, contentType = buf, ct
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body, contentType = bytes.NewReader(raw), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.url(req.Path, req.Params), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	if token != "" && httpReq.Header.Get("Authorization") == "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	if id := requestIDFrom(ctx); id != "" {
		httpReq.Header.Set("X-Request-ID", id)
	}

	started := time.Now()
	res, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, req.Path, err)
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"method":     method,
			"path":       req.Path,
			"status":     res.StatusCode,
			"latency_ms": time.Since(started).Milliseconds(),
			"request_id": requestIDFrom(ctx),
		}).Debug("backend call")
	}
	return &Response{Status: res.StatusCode, Payload: asJSON(raw)}, nil
}

func (c *Client) url(path string, params url.Values) string {
	u := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *Client) afterSuccess(ctx context.Context, path string, payload []byte) {
	switch normalizePath(path) {
	case PathLogin, PathRegister:
		if tok := extractToken(payload); tok != "" {
			c.tokens.Set(ctx, tok)
		}
	case PathLogout:
		c.tokens.Clear(ctx)
	}
}

func (c *Client) unauthorized(ctx context.Context, path, token string, resp *Response) error {
	authErr := &AuthError{Status: resp.Status, Payload: resp.Payload}

	// a 401 from the logout endpoint itself must not trigger another logout
	if normalizePath(path) == PathLogout {
		c.tokens.Clear(ctx)
		if c.mode == ModeServer {
			authErr.RedirectTo = c.loginPage
		}
		return authErr
	}

	if c.mode == ModeServer {
		if err := c.Logout(ctx, token); err != nil && c.logger != nil {
			c.logger.WithError(err).Warn("logout after 401 failed")
		}
		authErr.RedirectTo = c.logoutPage + "?sessionToken=" + url.QueryEscape(token)
		return authErr
	}

	_, _, _ = c.teardowns.Do(token, func() (any, error) {
		// a later 401 carrying a token that was already torn down is stale
		if token != "" && c.tokens.Get(ctx) != token {
			return nil, nil
		}
		if err := c.Logout(ctx, token); err != nil && c.logger != nil {
			c.logger.WithError(err).Warn("logout after 401 failed")
		}
		c.tokens.Clear(ctx)
		if c.nav != nil {
			c.nav.Navigate(ctx, c.loginPage)
		}
		return nil, nil
	})
	return authErr
}

// Logout revokes token at the backend and drops it from the token store.
// Concurrent callers share one backend call, and a token revoked in the last
// revokedTTL is not sent again.
func (c *Client) Logout(ctx context.Context, token string) error {
	if c.tokens.Get(ctx) == token {
		defer c.tokens.Clear(ctx)
	}
	if token == "" || c.wasRevoked(token) {
		return nil
	}
	_, err, _ := c.logouts.Do(token, func() (any, error) {
		if c.wasRevoked(token) {
			return nil, nil
		}
		err := c.logout(context.WithoutCancel(ctx), token)
		c.markRevoked(token)
		return nil, err
	})
	return err
}

func (c *Client) wasRevoked(token string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	at, ok := c.revoked[token]
	return ok && time.Since(at) < revokedTTL
}

func (c *Client) markRevoked(token string) {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for t, at := range c.revoked {
		if now.Sub(at) >= revokedTTL {
			delete(c.revoked, t)
		}
	}
	c.revoked[token] = now
}

func (c *Client) logout(ctx context.Context, token string) error {
	resp, err := c.send(ctx, Request{Method: http.MethodPost, Path: PathLogout, Body: map[string]any{}}, token)
	if err != nil {
		return err
	}
	if resp.Status >= 300 && resp.Status != http.StatusUnauthorized {
		return fmt.Errorf("logout returned status %d", resp.Status)
	}
	return nil
}

// Decode unmarshals a response payload into T.
func Decode[T any](resp *Response) (T, error) {
	var out T
	if resp == nil || len(resp.Payload) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(resp.Payload, &out); err != nil {
		return out, fmt.Errorf("decode payload: %w", err)
	}
	return out, nil
}

// Call is Do followed by Decode.
func Call[T any](ctx context.Context, c *Client, req Request) (T, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](resp)
}

// IsUnauthorized reports whether err is an AuthError.
func IsUnauthorized(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

func normalizePath(p string) string {
	p = strings.Trim(p, "/")
	if i := strings.IndexByte(p, '?'); i >= 0 {
		p = p[:i]
	}
	return p
}

func extractToken(payload []byte) string {
	var body struct {
		AccessToken string `json:"accessToken"`
		Data        struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	if body.Data.AccessToken != "" {
		return body.Data.AccessToken
	}
	return body.AccessToken
}

func asJSON(raw []byte) json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	if json.Valid(raw) {
		return raw
	}
	wrapped, _ := json.Marshal(map[string]string{"message": string(raw)})
	return wrapped
}
