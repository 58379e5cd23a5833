package inbound

import (
	"net/http/httptest"
	"testing"

	"github.com/goliatone/go-analytics/core"
)

func testConfig() core.Config {
	cfg := core.DefaultConfig()
	cfg.Hostname = "example.com"
	return cfg
}

func TestNewHitBuilder_RequiresHostname(t *testing.T) {
	if _, err := NewHitBuilder(core.DefaultConfig()); err == nil {
		t.Fatalf("expected error without hostname")
	}
}

func TestNewHitBuilder_RejectsUntrustedProxyHeader(t *testing.T) {
	cfg := testConfig()
	cfg.TrustedProxyHeaders = []string{"X-Custom-IP"}
	if _, err := NewHitBuilder(cfg); err == nil {
		t.Fatalf("expected error for header outside the allow list")
	}
}

func TestFromRequest_ReconstructsURL(t *testing.T) {
	builder, err := NewHitBuilder(testConfig())
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	req := httptest.NewRequest("GET", "http://ignored.internal/pricing?plan=pro", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept-Language", "en-US")
	req.RemoteAddr = "203.0.113.7:51423"

	hit := builder.FromRequest(req)
	if hit.URL != "https://example.com/pricing?plan=pro" {
		t.Fatalf("unexpected url %q", hit.URL)
	}
	if hit.Hostname != "example.com" {
		t.Fatalf("unexpected hostname %q", hit.Hostname)
	}
	if hit.IP != "203.0.113.7" {
		t.Fatalf("expected socket address without port, got %q", hit.IP)
	}
	if hit.UserAgent != "Mozilla/5.0" || hit.AcceptLanguage != "en-US" {
		t.Fatalf("expected harvested headers, got %q / %q", hit.UserAgent, hit.AcceptLanguage)
	}
}

func TestFromRequest_TrustedProxyHeaderOrder(t *testing.T) {
	cfg := testConfig()
	cfg.TrustedProxyHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For"}
	builder, err := NewHitBuilder(cfg)
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	req := httptest.NewRequest("GET", "http://ignored.internal/", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.2, 10.0.0.1")
	req.RemoteAddr = "10.0.0.9:1234"

	hit := builder.FromRequest(req)
	if hit.IP != "198.51.100.2" {
		t.Fatalf("expected left-most forwarded address, got %q", hit.IP)
	}

	req.Header.Set("CF-Connecting-IP", "203.0.113.44")
	hit = builder.FromRequest(req)
	if hit.IP != "203.0.113.44" {
		t.Fatalf("expected first configured header to win, got %q", hit.IP)
	}
}

func TestFromRequest_ForwardedHeader(t *testing.T) {
	cfg := testConfig()
	cfg.TrustedProxyHeaders = []string{"Forwarded"}
	builder, err := NewHitBuilder(cfg)
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	req := httptest.NewRequest("GET", "http://ignored.internal/", nil)
	req.Header.Set("Forwarded", `for="198.51.100.17";proto=https`)
	req.RemoteAddr = "10.0.0.9:1234"

	hit := builder.FromRequest(req)
	if hit.IP != "198.51.100.17" {
		t.Fatalf("expected forwarded for address, got %q", hit.IP)
	}
}

func TestFromRequest_ReferrerFallbacks(t *testing.T) {
	builder, err := NewHitBuilder(testConfig())
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}

	req := httptest.NewRequest("GET", "http://ignored.internal/", nil)
	req.Header.Set("Referer", "https://social.example/post")
	if got := builder.FromRequest(req).Referrer; got != "https://social.example/post" {
		t.Fatalf("expected header referrer, got %q", got)
	}

	req = httptest.NewRequest("GET", "http://ignored.internal/?utm_source=newsletter", nil)
	if got := builder.FromRequest(req).Referrer; got != "newsletter" {
		t.Fatalf("expected utm_source fallback, got %q", got)
	}

	req = httptest.NewRequest("GET", "http://ignored.internal/?ref=ref-wins&utm_source=newsletter", nil)
	if got := builder.FromRequest(req).Referrer; got != "ref-wins" {
		t.Fatalf("expected ref to win over utm_source, got %q", got)
	}

	req = httptest.NewRequest("GET", "http://ignored.internal/", nil)
	if got := builder.FromRequest(req).Referrer; got != "" {
		t.Fatalf("expected empty referrer, got %q", got)
	}
}

func TestFromRequest_DNTPassesThrough(t *testing.T) {
	builder, err := NewHitBuilder(testConfig())
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}
	req := httptest.NewRequest("GET", "http://ignored.internal/", nil)
	req.Header.Set("DNT", "1")
	if got := builder.FromRequest(req).DNT; got != core.DoNotTrack {
		t.Fatalf("expected dnt marker, got %q", got)
	}
}

func TestFromRequestSession(t *testing.T) {
	builder, err := NewHitBuilder(testConfig())
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}
	req := httptest.NewRequest("GET", "http://ignored.internal/", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.RemoteAddr = "203.0.113.7:51423"

	session := builder.FromRequestSession(req)
	if session.Hostname != "example.com" || session.IP != "203.0.113.7" || session.UserAgent != "Mozilla/5.0" {
		t.Fatalf("unexpected session payload: %+v", session)
	}
}
