package core

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"

	"github.com/goliatone/go-analytics/auth"
)

type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Client is the sole gateway for every outbound call. It owns the access
// token and the refresh-on-401 retry protocol.
//
// The token cell is guarded by a mutex. Two concurrent calls that both
// observe an empty token may both trigger a refresh; that is duplicate work,
// not a correctness problem, since refresh is idempotent and the last writer
// wins.
type Client struct {
	config       Config
	mode         auth.Mode
	clientID     string
	clientSecret string
	transport    Transport
	logger       Logger
	now          func() time.Time

	mu          sync.Mutex
	accessToken string
}

// New resolves configuration (defaults < loaded < runtime), classifies
// credentials, and returns a ready client. Credential classification runs
// exactly once, here, before any network activity.
func New(runtime Config, options ...Option) (*Client, error) {
	builder := defaultClientBuilder(runtime)
	for _, option := range options {
		if option == nil {
			continue
		}
		option(&builder)
	}
	if builder.transport == nil {
		return nil, configurationError("core: transport is required")
	}
	_, logger := glog.Resolve("analytics", builder.loggerProvider, builder.logger)
	if builder.now == nil {
		builder.now = func() time.Time { return time.Now().UTC() }
	}

	defaults := DefaultConfig()
	loaded, err := builder.configProvider.Load(context.Background(), defaults)
	if err != nil {
		return nil, configurationError("core: load configuration: " + err.Error())
	}
	resolved, err := builder.optionsResolver.Resolve(defaults, loaded, builder.runtimeConfig)
	if err != nil {
		return nil, configurationError("core: resolve configuration: " + err.Error())
	}
	if resolved.Timeout <= 0 {
		resolved.Timeout = DefaultTimeout
	}

	creds, err := auth.Resolve(auth.Credentials{
		ClientID:     resolved.ClientID,
		ClientSecret: resolved.ClientSecret,
		AccessToken:  resolved.AccessToken,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		config:       resolved,
		mode:         creds.Mode,
		clientID:     creds.ClientID,
		clientSecret: creds.ClientSecret,
		transport:    builder.transport,
		logger:       logger,
		now:          builder.now,
		accessToken:  creds.AccessToken,
	}, nil
}

// Config returns the resolved configuration.
func (c *Client) Config() Config {
	return c.config
}

// AccessMode reports the mode fixed at construction.
func (c *Client) AccessMode() auth.Mode {
	return c.mode
}

// AccessToken returns the current token; empty means unauthenticated.
func (c *Client) AccessToken() string {
	return c.token()
}

func (c *Client) token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

func (c *Client) requestURL(endpoint string) string {
	return strings.TrimRight(strings.TrimSpace(c.config.BaseURL), "/") + endpoint
}

// refreshToken exchanges the client id/secret for a fresh access token. On
// any failure the token is cleared, moving the session back to
// unauthenticated.
func (c *Client) refreshToken(ctx context.Context) error {
	payload, err := json.Marshal(tokenRequest{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
	})
	if err != nil {
		return asError(ensureAnalyticsEnvelope(
			goerrors.Wrap(err, goerrors.CategoryInternal, "core: encode token request"),
		))
	}
	body, err := c.transport.Post(ctx, PostRequest{
		URL:     c.requestURL(TokenEndpoint),
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    payload,
		Timeout: c.config.Timeout,
	})
	if err != nil {
		c.setToken("")
		normalized := c.normalize(err)
		c.logError("token refresh failed", map[string]any{
			"code": normalized.Code,
		})
		return asError(normalized)
	}
	var decoded tokenResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		c.setToken("")
		return decodeError(err, TokenEndpoint)
	}
	token := strings.TrimSpace(decoded.AccessToken)
	if token == "" {
		c.setToken("")
		return asError(ensureAnalyticsEnvelope(
			goerrors.New("core: token endpoint returned no access token", goerrors.CategoryAuth).
				WithCode(http.StatusUnauthorized).
				WithTextCode(AnalyticsErrorUnauthorized),
		))
	}
	c.setToken(token)
	c.logDebug("access token refreshed", nil)
	return nil
}

// dispatch issues the request once and, in OAuth mode, retries exactly once
// after a refresh when the failure normalized to a 401. A second 401
// surfaces; a refresh failure replaces the original error.
func (c *Client) dispatch(ctx context.Context, operation string, call func(token string) ([]byte, error)) ([]byte, error) {
	fields := map[string]any{
		"operation":  operation,
		"request_id": uuid.NewString(),
	}
	body, err := call(c.token())
	if err == nil {
		return body, nil
	}
	normalized := c.normalize(err)
	if c.mode == auth.ModeOAuth && normalized.Code == http.StatusUnauthorized {
		c.logDebug("unauthorized, refreshing token and retrying once", fields)
		if refreshErr := c.refreshToken(ctx); refreshErr != nil {
			return nil, refreshErr
		}
		body, err = call(c.token())
		if err == nil {
			return body, nil
		}
		normalized = c.normalize(err)
	}
	fields["code"] = normalized.Code
	c.logError(operation+" failed", fields)
	return nil, asError(normalized)
}

func (c *Client) performPost(ctx context.Context, operation string, endpoint string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return asError(ensureAnalyticsEnvelope(
			goerrors.Wrap(err, goerrors.CategoryInternal, "core: encode "+operation+" payload"),
		))
	}
	_, err = c.dispatch(ctx, operation, func(token string) ([]byte, error) {
		return c.transport.Post(ctx, PostRequest{
			URL:     c.requestURL(endpoint),
			Headers: c.requestHeaders(token, true),
			Body:    body,
			Timeout: c.config.Timeout,
		})
	})
	return err
}

// performGet backs every statistics read: access-mode gate first, then a
// proactive refresh when the session is still unauthenticated, then the
// shared dispatch. Tracking writes never refresh proactively; they rely on
// the retry path.
func (c *Client) performGet(ctx context.Context, operation string, endpoint string, query map[string]string, out any) error {
	if c.mode != auth.ModeOAuth {
		return invalidAccessModeError(operation)
	}
	if c.token() == "" {
		if err := c.refreshToken(ctx); err != nil {
			return err
		}
	}
	body, err := c.dispatch(ctx, operation, func(token string) ([]byte, error) {
		return c.transport.Get(ctx, GetRequest{
			URL:     c.requestURL(endpoint),
			Headers: c.requestHeaders(token, false),
			Query:   query,
			Timeout: c.config.Timeout,
		})
	})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return decodeError(err, endpoint)
	}
	return nil
}

func (c *Client) requestHeaders(token string, write bool) map[string]string {
	headers := map[string]string{
		"Accept": "application/json",
	}
	if write {
		headers["Content-Type"] = "application/json"
	}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return headers
}

func (c *Client) normalize(err error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if c.transport != nil {
		if rich := c.transport.NormalizeError(err); rich != nil {
			return ensureAnalyticsEnvelope(rich)
		}
	}
	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		return ensureAnalyticsEnvelope(rich)
	}
	return ensureAnalyticsEnvelope(
		goerrors.Wrap(err, goerrors.CategoryInternal, "core: request failed").
			WithCode(http.StatusInternalServerError).
			WithTextCode(AnalyticsErrorInternal),
	)
}

func asError(err *goerrors.Error) error {
	if err == nil {
		return nil
	}
	return err
}

func (c *Client) logDebug(message string, fields map[string]any) {
	c.log(func(l Logger, args ...any) { l.Debug(message, args...) }, fields)
}

func (c *Client) logError(message string, fields map[string]any) {
	c.log(func(l Logger, args ...any) { l.Error(message, args...) }, fields)
}

func (c *Client) log(emit func(Logger, ...any), fields map[string]any) {
	if c == nil || c.logger == nil {
		return
	}
	logger := c.logger
	if fieldsLogger, ok := logger.(FieldsLogger); ok && len(fields) > 0 {
		logger = fieldsLogger.WithFields(fields)
	}
	emit(logger, flattenFields(fields)...)
}

func flattenFields(fields map[string]any) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	args := make([]any, 0, len(keys)*2)
	for _, key := range keys {
		args = append(args, key, fields[key])
	}
	return args
}
