package core

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"
)

// GetRequest describes an outbound read. URL is absolute; the client joins
// the configured base URL with the endpoint path before handing it over.
type GetRequest struct {
	URL     string
	Headers map[string]string
	Query   map[string]string
	Timeout time.Duration
}

// PostRequest describes an outbound write.
type PostRequest struct {
	URL     string
	Headers map[string]string
	Body    []byte
	Timeout time.Duration
}

// Transport performs the actual HTTP calls and owns error normalization,
// since different transports expose status and body differently.
// NormalizeError must always produce an envelope with a code (500 when the
// failure shape is unknown) and must never panic.
type Transport interface {
	Get(ctx context.Context, req GetRequest) ([]byte, error)
	Post(ctx context.Context, req PostRequest) ([]byte, error)
	NormalizeError(err error) *goerrors.Error
}

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger
