package core_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-analytics/core"
	"github.com/goliatone/go-analytics/devkit"
)

func TestStatistics_AccessModeGate(t *testing.T) {
	fake := devkit.NewFakeTransport()
	client := newTokenClient(t, fake)
	ctx := context.Background()
	filter := &core.Filter{DomainID: "d1"}

	reads := map[string]func() error{
		"domain":   func() error { _, err := client.Domain(ctx); return err },
		"visitors": func() error { _, err := client.Visitors(ctx, filter); return err },
		"pages":    func() error { _, err := client.Pages(ctx, filter); return err },
		"growth":   func() error { _, err := client.Growth(ctx, filter); return err },
		"platform": func() error { _, err := client.Platform(ctx, filter); return err },
	}
	for name, read := range reads {
		err := read()
		if err == nil {
			t.Fatalf("%s: expected invalid access mode error", name)
		}
		var rich *goerrors.Error
		if !goerrors.As(err, &rich) {
			t.Fatalf("%s: expected go-errors envelope, got %T", name, err)
		}
		if rich.TextCode != core.AnalyticsErrorInvalidAccessMode {
			t.Fatalf("%s: expected invalid access mode text code, got %q", name, rich.TextCode)
		}
	}
	if calls := fake.Calls(); len(calls) != 0 {
		t.Fatalf("expected 0 transport calls, got %d", len(calls))
	}
}

func TestDomain_EmptyArrayIsNotFound(t *testing.T) {
	fake := devkit.NewFakeTransport(
		tokenScript("pa_token"),
		devkit.Script{Body: []byte(`[]`)},
	)
	client := newOAuthClient(t, fake)

	_, err := client.Domain(context.Background())
	if err == nil {
		t.Fatalf("expected domain not found error")
	}
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		t.Fatalf("expected go-errors envelope, got %T", err)
	}
	if rich.Code != http.StatusNotFound {
		t.Fatalf("expected 404 code, got %d", rich.Code)
	}
	if rich.TextCode != core.AnalyticsErrorDomainNotFound {
		t.Fatalf("expected domain not found text code, got %q", rich.TextCode)
	}
}

func TestDomain_ReturnsFirstElement(t *testing.T) {
	fake := devkit.NewFakeTransport(
		tokenScript("pa_token"),
		devkit.Script{Body: []byte(`[{"id":"d1","hostname":"example.com"},{"id":"d2","hostname":"other.com"}]`)},
	)
	client := newOAuthClient(t, fake)

	domain, err := client.Domain(context.Background())
	if err != nil {
		t.Fatalf("domain: %v", err)
	}
	if domain.ID != "d1" {
		t.Fatalf("expected first domain, got %q", domain.ID)
	}
}

func TestVisitors_ProactiveRefreshThenGet(t *testing.T) {
	fake := devkit.NewFakeTransport(
		tokenScript("pa_fresh"),
		devkit.Script{Body: []byte(`[{"day":"2026-08-01T00:00:00Z","visitors":42}]`)},
	)
	client := newOAuthClient(t, fake)

	stats, err := client.Visitors(context.Background(), &core.Filter{
		DomainID: "d1",
		From:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("visitors: %v", err)
	}
	if len(stats) != 1 || stats[0].Visitors != 42 {
		t.Fatalf("unexpected stats: %v", stats)
	}

	calls := fake.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected refresh then get, got %d calls", len(calls))
	}
	if !strings.HasSuffix(calls[0].URL, core.TokenEndpoint) {
		t.Fatalf("expected first call to refresh token, got %q", calls[0].URL)
	}
	if !strings.HasSuffix(calls[1].URL, core.VisitorsEndpoint) {
		t.Fatalf("expected second call to visitors endpoint, got %q", calls[1].URL)
	}
	if got := calls[1].Headers["Authorization"]; got != "Bearer pa_fresh" {
		t.Fatalf("expected refreshed bearer, got %q", got)
	}
	if calls[1].Query["id"] != "d1" || calls[1].Query["from"] != "2026-08-01" || calls[1].Query["to"] != "2026-08-28" {
		t.Fatalf("unexpected filter query: %v", calls[1].Query)
	}
}

func TestVisitors_ProactiveRefreshFailureSurfaces(t *testing.T) {
	fake := devkit.NewFakeTransport(
		devkit.Script{Err: goerrors.New("token endpoint unreachable", goerrors.CategoryExternal).WithCode(http.StatusInternalServerError)},
	)
	client := newOAuthClient(t, fake)

	_, err := client.Visitors(context.Background(), &core.Filter{DomainID: "d1"})
	if err == nil {
		t.Fatalf("expected refresh failure to surface")
	}
	if calls := fake.Calls(); len(calls) != 1 {
		t.Fatalf("expected only the refresh attempt, got %d calls", len(calls))
	}
	if client.AccessToken() != "" {
		t.Fatalf("expected token cleared, got %q", client.AccessToken())
	}
}

func TestFilter_QueryEncodesDimensionsAndSkipsZeroValues(t *testing.T) {
	filter := &core.Filter{
		DomainID:             "d1",
		From:                 time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		To:                   time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		Start:                600,
		Path:                 "/pricing",
		Language:             "en",
		UTMSource:            "newsletter",
		Limit:                25,
		IncludeAvgTimeOnPage: true,
	}
	query := filter.Query()
	expected := map[string]string{
		"id":                       "d1",
		"from":                     "2026-08-01",
		"to":                       "2026-08-28",
		"start":                    "600",
		"path":                     "/pricing",
		"language":                 "en",
		"utm_source":               "newsletter",
		"limit":                    "25",
		"include_avg_time_on_page": "true",
	}
	if len(query) != len(expected) {
		t.Fatalf("expected %d query params, got %d: %v", len(expected), len(query), query)
	}
	for key, want := range expected {
		if query[key] != want {
			t.Fatalf("expected %q=%q, got %q", key, want, query[key])
		}
	}

	var nilFilter *core.Filter
	if got := nilFilter.Query(); len(got) != 0 {
		t.Fatalf("expected empty query for nil filter, got %v", got)
	}
}
