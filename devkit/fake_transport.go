// Package devkit holds test doubles shared by the SDK's test suites.
package devkit

import (
	"context"
	"net/http"
	"sync"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-analytics/core"
)

// Script is one canned transport outcome, consumed in call order. When the
// scripts run out, the last one repeats.
type Script struct {
	Body []byte
	Err  error
}

// Call records one transport invocation for later assertions.
type Call struct {
	Method  string
	URL     string
	Headers map[string]string
	Query   map[string]string
	Body    []byte
}

// FakeTransport is a scripted core.Transport recording every call.
type FakeTransport struct {
	mu      sync.Mutex
	scripts []Script
	calls   []Call
}

func NewFakeTransport(scripts ...Script) *FakeTransport {
	return &FakeTransport{
		scripts: append([]Script(nil), scripts...),
	}
}

func (t *FakeTransport) Get(_ context.Context, req core.GetRequest) ([]byte, error) {
	return t.record(Call{
		Method:  http.MethodGet,
		URL:     req.URL,
		Headers: cloneMap(req.Headers),
		Query:   cloneMap(req.Query),
	})
}

func (t *FakeTransport) Post(_ context.Context, req core.PostRequest) ([]byte, error) {
	return t.record(Call{
		Method:  http.MethodPost,
		URL:     req.URL,
		Headers: cloneMap(req.Headers),
		Body:    append([]byte(nil), req.Body...),
	})
}

func (t *FakeTransport) NormalizeError(err error) *goerrors.Error {
	if err == nil {
		return nil
	}
	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		if rich.Code == 0 {
			rich.Code = http.StatusInternalServerError
		}
		return rich
	}
	return goerrors.Wrap(err, goerrors.CategoryExternal, "devkit: scripted failure").
		WithCode(http.StatusInternalServerError)
}

// Calls returns a copy of every recorded invocation.
func (t *FakeTransport) Calls() []Call {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Call, len(t.calls))
	copy(out, t.calls)
	return out
}

func (t *FakeTransport) record(call Call) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls = append(t.calls, call)
	index := len(t.calls) - 1
	if index < len(t.scripts) {
		script := t.scripts[index]
		return append([]byte(nil), script.Body...), script.Err
	}
	if len(t.scripts) > 0 {
		last := t.scripts[len(t.scripts)-1]
		return append([]byte(nil), last.Body...), last.Err
	}
	return []byte(`{}`), nil
}

func cloneMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

var _ core.Transport = (*FakeTransport)(nil)
