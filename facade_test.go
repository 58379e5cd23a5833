package analytics

import (
	"context"
	"strings"
	"testing"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-analytics/core"
	"github.com/goliatone/go-analytics/devkit"
)

func TestNew_WiresDefaultTransport(t *testing.T) {
	client, err := New(Config{
		AccessToken: "pa_" + strings.Repeat("x", 45),
	}, core.WithLogger(glog.Nop()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if client.Config().BaseURL != core.DefaultBaseURL {
		t.Fatalf("expected default base url, got %q", client.Config().BaseURL)
	}
}

func TestNew_CallerTransportOverridesDefault(t *testing.T) {
	fake := devkit.NewFakeTransport()
	client, err := New(Config{
		AccessToken: "pa_" + strings.Repeat("x", 45),
	},
		core.WithTransport(fake),
		core.WithLogger(glog.Nop()),
	)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := client.Hit(context.Background(), Hit{URL: "https://example.com/"}); err != nil {
		t.Fatalf("hit: %v", err)
	}
	if calls := fake.Calls(); len(calls) != 1 {
		t.Fatalf("expected the fake transport to receive the call, got %d", len(calls))
	}
}
