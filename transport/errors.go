package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-analytics/core"
)

// StatusError is a non-2xx response before normalization; the body still
// carries the API's error wire shape.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("transport: remote returned status %d", e.StatusCode)
}

// apiErrorBody is the wire shape the remote API uses on failure.
type apiErrorBody struct {
	Error      []string          `json:"error"`
	Validation map[string]string `json:"validation"`
}

// NormalizeError maps any failure raised by this adapter into an envelope
// with a code (HTTP status, or 500 when the shape is unknown). It never
// panics and never returns an envelope without a code.
func (a *RESTAdapter) NormalizeError(err error) *goerrors.Error {
	if err == nil {
		return nil
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return normalizeStatusError(statusErr)
	}

	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		if rich.Code == 0 {
			rich.Code = http.StatusInternalServerError
		}
		return rich
	}

	return goerrors.Wrap(err, goerrors.CategoryExternal, "transport: request failed").
		WithCode(http.StatusInternalServerError).
		WithTextCode(core.AnalyticsErrorInternal)
}

func normalizeStatusError(statusErr *StatusError) *goerrors.Error {
	code := statusErr.StatusCode
	if code == 0 {
		code = http.StatusInternalServerError
	}

	decoded := apiErrorBody{}
	if len(statusErr.Body) > 0 {
		// Best effort: an undecodable body still normalizes to the status.
		_ = json.Unmarshal(statusErr.Body, &decoded)
	}
	messages := make([]string, 0, len(decoded.Error))
	for _, message := range decoded.Error {
		if strings.TrimSpace(message) != "" {
			messages = append(messages, message)
		}
	}
	message := http.StatusText(code)
	if len(messages) > 0 {
		message = messages[0]
	}

	category := goerrors.CategoryExternal
	textCode := core.AnalyticsErrorTransportFailed
	if code == http.StatusUnauthorized {
		category = goerrors.CategoryAuth
		textCode = core.AnalyticsErrorUnauthorized
	}

	var rich *goerrors.Error
	if len(decoded.Validation) > 0 {
		fieldErrors := make([]goerrors.FieldError, 0, len(decoded.Validation))
		for field, fieldMessage := range decoded.Validation {
			fieldErrors = append(fieldErrors, goerrors.FieldError{
				Field:   field,
				Message: fieldMessage,
			})
		}
		rich = goerrors.NewValidation(message, fieldErrors...)
	} else {
		rich = goerrors.New(message, category)
	}
	rich = rich.
		WithCode(code).
		WithTextCode(textCode)
	if len(messages) > 0 {
		rich.WithMetadata(map[string]any{"messages": messages})
	}
	return rich
}

func transportError(
	message string,
	category goerrors.Category,
	code int,
	metadata map[string]any,
) error {
	err := goerrors.New(message, category).
		WithCode(code).
		WithTextCode(transportTextCode(category))
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func transportWrapError(
	source error,
	category goerrors.Category,
	message string,
	code int,
	metadata map[string]any,
) error {
	if source == nil {
		return transportError(message, category, code, metadata)
	}
	err := goerrors.Wrap(source, category, message).
		WithCode(code).
		WithTextCode(transportTextCode(category))
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func transportTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return core.AnalyticsErrorBadConfig
	case goerrors.CategoryAuth:
		return core.AnalyticsErrorUnauthorized
	case goerrors.CategoryExternal:
		return core.AnalyticsErrorTransportFailed
	default:
		return core.AnalyticsErrorInternal
	}
}
