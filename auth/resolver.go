package auth

import (
	"fmt"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// Mode is the access mode a client operates in for its whole lifetime.
type Mode string

const (
	ModeOAuth       Mode = "oauth"
	ModeAccessToken Mode = "access_token"
)

const (
	// AccessTokenPrefix is the fixed prefix every issued access token carries.
	AccessTokenPrefix = "pa_"

	accessTokenSuffixLength = 45
	clientIDLength          = 32
	clientSecretLength      = 64
)

// TextCodeBadCredentials is the envelope text code for credential
// configuration failures.
const TextCodeBadCredentials = "ANALYTICS_BAD_CREDENTIALS"

// Credentials is the raw credential material supplied at client construction.
// Exactly one of the two variants must be populated: a bare access token, or
// an OAuth client id/secret pair.
type Credentials struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
}

// Resolved is the validated outcome of Resolve. Mode never changes after
// construction; AccessToken is the initial token for the session ("" in
// OAuth mode until the first refresh).
type Resolved struct {
	Mode         Mode
	ClientID     string
	ClientSecret string
	AccessToken  string
}

// Resolve classifies and validates credentials. It runs exactly once, at
// client construction, before any network activity.
func Resolve(creds Credentials) (Resolved, error) {
	clientID := strings.TrimSpace(creds.ClientID)
	clientSecret := strings.TrimSpace(creds.ClientSecret)
	accessToken := strings.TrimSpace(creds.AccessToken)

	hasToken := accessToken != ""
	hasOAuth := clientID != "" || clientSecret != ""

	switch {
	case hasToken && hasOAuth:
		return Resolved{}, credentialError("credentials", "supply either an access token or a client id/secret pair, not both")
	case hasToken:
		if !strings.HasPrefix(accessToken, AccessTokenPrefix) {
			return Resolved{}, credentialError("access_token", fmt.Sprintf("must start with %q", AccessTokenPrefix))
		}
		if len(accessToken) != len(AccessTokenPrefix)+accessTokenSuffixLength {
			return Resolved{}, credentialError("access_token", fmt.Sprintf("must be exactly %d characters", len(AccessTokenPrefix)+accessTokenSuffixLength))
		}
		return Resolved{
			Mode:        ModeAccessToken,
			AccessToken: accessToken,
		}, nil
	case hasOAuth:
		if len(clientID) != clientIDLength {
			return Resolved{}, credentialError("client_id", fmt.Sprintf("must be exactly %d characters", clientIDLength))
		}
		if len(clientSecret) != clientSecretLength {
			return Resolved{}, credentialError("client_secret", fmt.Sprintf("must be exactly %d characters", clientSecretLength))
		}
		return Resolved{
			Mode:         ModeOAuth,
			ClientID:     clientID,
			ClientSecret: clientSecret,
		}, nil
	default:
		return Resolved{}, credentialError("credentials", "missing credentials: supply an access token or a client id/secret pair")
	}
}

func credentialError(field string, message string) error {
	return goerrors.NewValidation("auth: invalid credentials", goerrors.FieldError{
		Field:   field,
		Message: message,
	}).
		WithCode(http.StatusBadRequest).
		WithTextCode(TextCodeBadCredentials)
}
