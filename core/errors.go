package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	AnalyticsErrorBadConfig         = "ANALYTICS_BAD_CONFIG"
	AnalyticsErrorInvalidAccessMode = "ANALYTICS_INVALID_ACCESS_MODE"
	AnalyticsErrorDomainNotFound    = "ANALYTICS_DOMAIN_NOT_FOUND"
	AnalyticsErrorUnauthorized      = "ANALYTICS_UNAUTHORIZED"
	AnalyticsErrorTransportFailed   = "ANALYTICS_TRANSPORT_FAILED"
	AnalyticsErrorInternal          = "ANALYTICS_INTERNAL_ERROR"
)

func configurationError(message string) error {
	return goerrors.New(message, goerrors.CategoryBadInput).
		WithCode(http.StatusBadRequest).
		WithTextCode(AnalyticsErrorBadConfig)
}

func invalidAccessModeError(operation string) error {
	return goerrors.New("core: "+operation+" requires an oauth client, not a bare access token", goerrors.CategoryAuthz).
		WithCode(http.StatusForbidden).
		WithTextCode(AnalyticsErrorInvalidAccessMode).
		WithMetadata(map[string]any{"operation": operation})
}

func domainNotFoundError() error {
	return goerrors.New("core: domain not found", goerrors.CategoryNotFound).
		WithCode(http.StatusNotFound).
		WithTextCode(AnalyticsErrorDomainNotFound)
}

func decodeError(source error, url string) error {
	return goerrors.Wrap(source, goerrors.CategoryInternal, "core: decode response body").
		WithCode(http.StatusInternalServerError).
		WithTextCode(AnalyticsErrorInternal).
		WithMetadata(map[string]any{"url": url})
}

// ensureAnalyticsEnvelope guarantees every error crossing the public
// boundary carries a code and a text code; code 500 is the catch-all for
// failure shapes nothing recognized.
func ensureAnalyticsEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = analyticsHTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultAnalyticsTextCode(err.Category, err.Code)
	}
	return err
}

func defaultAnalyticsTextCode(category goerrors.Category, code int) string {
	if code == http.StatusUnauthorized {
		return AnalyticsErrorUnauthorized
	}
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return AnalyticsErrorBadConfig
	case goerrors.CategoryAuth:
		return AnalyticsErrorUnauthorized
	case goerrors.CategoryAuthz:
		return AnalyticsErrorInvalidAccessMode
	case goerrors.CategoryNotFound:
		return AnalyticsErrorDomainNotFound
	case goerrors.CategoryExternal:
		return AnalyticsErrorTransportFailed
	default:
		return AnalyticsErrorInternal
	}
}

func analyticsHTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryAuth:
		return http.StatusUnauthorized
	case goerrors.CategoryAuthz:
		return http.StatusForbidden
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
