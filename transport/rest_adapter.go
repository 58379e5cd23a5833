package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-analytics/core"
)

const defaultClientTimeout = 30 * time.Second
const defaultResponseBodyLimit int64 = 1 << 20 // 1 MiB

type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RESTAdapter performs the client's HTTP calls over an injected doer and
// maps transport failures into normalized envelopes.
type RESTAdapter struct {
	Client               HTTPDoer
	DefaultHeaders       map[string]string
	MaxResponseBodyBytes int64
}

func NewRESTAdapter(client HTTPDoer) *RESTAdapter {
	if client == nil {
		client = &http.Client{Timeout: defaultClientTimeout}
	}
	return &RESTAdapter{
		Client:               client,
		DefaultHeaders:       map[string]string{},
		MaxResponseBodyBytes: defaultResponseBodyLimit,
	}
}

func (a *RESTAdapter) Get(ctx context.Context, req core.GetRequest) ([]byte, error) {
	return a.do(ctx, http.MethodGet, req.URL, nil, req.Headers, req.Query, req.Timeout)
}

func (a *RESTAdapter) Post(ctx context.Context, req core.PostRequest) ([]byte, error) {
	return a.do(ctx, http.MethodPost, req.URL, req.Body, req.Headers, nil, req.Timeout)
}

func (a *RESTAdapter) do(
	ctx context.Context,
	method string,
	rawURL string,
	body []byte,
	headers map[string]string,
	query map[string]string,
	timeout time.Duration,
) ([]byte, error) {
	if a == nil || a.Client == nil {
		return nil, transportError(
			"transport: rest adapter requires an http client",
			goerrors.CategoryInternal,
			http.StatusInternalServerError,
			nil,
		)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	parsedURL, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: invalid request url",
			http.StatusBadRequest,
			map[string]any{"url": strings.TrimSpace(rawURL)},
		)
	}
	if parsedURL.String() == "" {
		return nil, transportError(
			"transport: request url is required",
			goerrors.CategoryBadInput,
			http.StatusBadRequest,
			nil,
		)
	}
	if len(query) > 0 {
		values := parsedURL.Query()
		for key, value := range query {
			if strings.TrimSpace(key) == "" {
				continue
			}
			values.Set(strings.TrimSpace(key), value)
		}
		parsedURL.RawQuery = values.Encode()
	}

	requestCtx := ctx
	cancel := func() {}
	if timeout > 0 {
		requestCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(requestCtx, method, parsedURL.String(), reader)
	if err != nil {
		return nil, transportWrapError(
			err,
			goerrors.CategoryBadInput,
			"transport: create http request",
			http.StatusBadRequest,
			map[string]any{"method": method, "url": parsedURL.String()},
		)
	}
	for key, value := range a.DefaultHeaders {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(strings.TrimSpace(key), value)
	}
	for key, value := range headers {
		if strings.TrimSpace(key) == "" {
			continue
		}
		httpReq.Header.Set(strings.TrimSpace(key), value)
	}

	httpRes, err := a.Client.Do(httpReq)
	if err != nil {
		return nil, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: execute http request",
			http.StatusInternalServerError,
			map[string]any{"method": method, "url": parsedURL.String()},
		)
	}
	defer httpRes.Body.Close()

	maxBodyBytes := a.MaxResponseBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultResponseBodyLimit
	}
	responseBody, err := io.ReadAll(io.LimitReader(httpRes.Body, maxBodyBytes+1))
	if err != nil {
		return nil, transportWrapError(
			err,
			goerrors.CategoryExternal,
			"transport: read response body",
			http.StatusInternalServerError,
			map[string]any{"status_code": httpRes.StatusCode},
		)
	}
	if int64(len(responseBody)) > maxBodyBytes {
		return nil, transportError(
			fmt.Sprintf("transport: response body exceeds limit of %d bytes", maxBodyBytes),
			goerrors.CategoryExternal,
			http.StatusInternalServerError,
			map[string]any{"status_code": httpRes.StatusCode},
		)
	}

	if httpRes.StatusCode < http.StatusOK || httpRes.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{
			StatusCode: httpRes.StatusCode,
			Body:       responseBody,
		}
	}
	return responseBody, nil
}

var _ core.Transport = (*RESTAdapter)(nil)
