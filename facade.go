// Package analytics is a client SDK for the Pirsch-style web-analytics API.
// It sends hit/event/session payloads, reads filtered statistics, and
// manages the access-token lifecycle, including the single refresh-and-retry
// cycle on 401 responses.
//
// Basic server-side usage:
//
//	client, err := analytics.New(analytics.Config{
//		ClientID:     id,
//		ClientSecret: secret,
//		Hostname:     "example.com",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	builder, err := inbound.NewHitBuilder(client.Config())
//	...
//	_ = client.Hit(r.Context(), builder.FromRequest(r))
package analytics

import (
	"github.com/goliatone/go-analytics/core"
	"github.com/goliatone/go-analytics/transport"
)

type (
	Client       = core.Client
	Config       = core.Config
	Option       = core.Option
	Hit          = core.Hit
	BatchHit     = core.BatchHit
	EventOptions = core.EventOptions
	BatchEvent   = core.BatchEvent
	Session      = core.Session
	BatchSession = core.BatchSession
	Filter       = core.Filter
	Domain       = core.Domain
)

var (
	WithLogger          = core.WithLogger
	WithLoggerProvider  = core.WithLoggerProvider
	WithTransport       = core.WithTransport
	WithConfigProvider  = core.WithConfigProvider
	WithOptionsResolver = core.WithOptionsResolver
	WithNow             = core.WithNow
)

// New builds a client with the default REST transport. Supply
// core.WithTransport to replace it (browser-fetch shims, test fakes).
func New(cfg Config, options ...Option) (*Client, error) {
	options = append([]Option{core.WithTransport(transport.NewRESTAdapter(nil))}, options...)
	return core.New(cfg, options...)
}
