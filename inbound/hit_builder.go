// Package inbound builds tracking payloads from server-side HTTP requests:
// the handler hands over the inbound *http.Request and gets back a hit
// carrying the visitor's address, headers, and referrer.
package inbound

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-analytics/core"
)

// Headers a deployment may trust for client-IP extraction. Anything outside
// this list is rejected at construction.
var trustedProxyHeaderAllowList = []string{
	"Forwarded",
	"X-Forwarded-For",
	"X-Real-IP",
	"CF-Connecting-IP",
	"True-Client-IP",
}

// Ordered query parameters consulted when no referrer header is present.
var referrerQueryParams = []string{"ref", "referer", "referrer", "source", "utm_source"}

// HitBuilder derives hit payloads from inbound requests using the
// server-side configuration (hostname, protocol, trusted proxy headers).
type HitBuilder struct {
	hostname            string
	protocol            string
	trustedProxyHeaders []string
}

func NewHitBuilder(cfg core.Config) (*HitBuilder, error) {
	hostname := strings.TrimSpace(cfg.Hostname)
	if hostname == "" {
		return nil, goerrors.New("inbound: hostname is required for server-side tracking", goerrors.CategoryBadInput).
			WithCode(http.StatusBadRequest).
			WithTextCode(core.AnalyticsErrorBadConfig)
	}
	protocol := strings.TrimSpace(strings.ToLower(cfg.Protocol))
	if protocol == "" {
		protocol = "https"
	}
	trusted := make([]string, 0, len(cfg.TrustedProxyHeaders))
	for _, header := range cfg.TrustedProxyHeaders {
		header = strings.TrimSpace(header)
		if header == "" {
			continue
		}
		if !allowedProxyHeader(header) {
			return nil, goerrors.New(fmt.Sprintf("inbound: header %q is not a trusted proxy header", header), goerrors.CategoryBadInput).
				WithCode(http.StatusBadRequest).
				WithTextCode(core.AnalyticsErrorBadConfig)
		}
		trusted = append(trusted, header)
	}
	return &HitBuilder{
		hostname:            hostname,
		protocol:            protocol,
		trustedProxyHeaders: trusted,
	}, nil
}

// FromRequest reconstructs the visited URL from the configured
// protocol+hostname and the inbound path, and harvests visitor fields from
// the request.
func (b *HitBuilder) FromRequest(r *http.Request) core.Hit {
	hit := core.Hit{
		Hostname:               b.hostname,
		URL:                    b.protocol + "://" + b.hostname + r.URL.RequestURI(),
		IP:                     b.visitorIP(r),
		UserAgent:              r.Header.Get("User-Agent"),
		AcceptLanguage:         r.Header.Get("Accept-Language"),
		SecCHUA:                r.Header.Get("Sec-CH-UA"),
		SecCHUAMobile:          r.Header.Get("Sec-CH-UA-Mobile"),
		SecCHUAPlatform:        r.Header.Get("Sec-CH-UA-Platform"),
		SecCHUAPlatformVersion: r.Header.Get("Sec-CH-UA-Platform-Version"),
		SecCHWidth:             r.Header.Get("Sec-CH-Width"),
		SecCHViewportWidth:     r.Header.Get("Sec-CH-Viewport-Width"),
		Referrer:               referrerFromRequest(r),
		DNT:                    r.Header.Get("DNT"),
	}
	if width := r.Header.Get("Sec-CH-Width"); width != "" {
		if parsed, err := strconv.Atoi(width); err == nil {
			hit.ScreenWidth = parsed
		}
	}
	return hit
}

// FromRequestSession derives a session keep-alive payload instead of a full
// hit.
func (b *HitBuilder) FromRequestSession(r *http.Request) core.Session {
	return core.Session{
		Hostname:  b.hostname,
		IP:        b.visitorIP(r),
		UserAgent: r.Header.Get("User-Agent"),
		DNT:       r.Header.Get("DNT"),
	}
}

// visitorIP walks the trusted proxy headers in configured order; the first
// string-valued match wins, else the socket remote address is used.
func (b *HitBuilder) visitorIP(r *http.Request) string {
	for _, header := range b.trustedProxyHeaders {
		value := strings.TrimSpace(r.Header.Get(header))
		if value == "" {
			continue
		}
		switch http.CanonicalHeaderKey(header) {
		case "X-Forwarded-For":
			// The left-most entry is the originating client.
			parts := strings.Split(value, ",")
			if ip := strings.TrimSpace(parts[0]); ip != "" {
				return ip
			}
		case "Forwarded":
			if ip := parseForwardedFor(value); ip != "" {
				return ip
			}
		default:
			return value
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func parseForwardedFor(value string) string {
	for _, segment := range strings.Split(value, ";") {
		for _, pair := range strings.Split(segment, ",") {
			pair = strings.TrimSpace(pair)
			if !strings.HasPrefix(strings.ToLower(pair), "for=") {
				continue
			}
			ip := strings.Trim(pair[len("for="):], `"`)
			if ip != "" {
				return ip
			}
		}
	}
	return ""
}

func referrerFromRequest(r *http.Request) string {
	if referrer := strings.TrimSpace(r.Header.Get("Referer")); referrer != "" {
		return referrer
	}
	if referrer := strings.TrimSpace(r.Header.Get("Referrer")); referrer != "" {
		return referrer
	}
	query := r.URL.Query()
	for _, param := range referrerQueryParams {
		if value := strings.TrimSpace(query.Get(param)); value != "" {
			return value
		}
	}
	return ""
}

func allowedProxyHeader(header string) bool {
	for _, allowed := range trustedProxyHeaderAllowList {
		if strings.EqualFold(header, allowed) {
			return true
		}
	}
	return false
}
