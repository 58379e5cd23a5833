package core_test

import (
	"net/http"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-analytics/auth"
	"github.com/goliatone/go-analytics/core"
	"github.com/goliatone/go-analytics/devkit"
)

func testClientID() string {
	return strings.Repeat("a", 32)
}

func testClientSecret() string {
	return strings.Repeat("b", 64)
}

func testAccessToken() string {
	return auth.AccessTokenPrefix + strings.Repeat("x", 45)
}

func newOAuthClient(t *testing.T, transport core.Transport) *core.Client {
	t.Helper()
	client, err := core.New(core.Config{
		ClientID:     testClientID(),
		ClientSecret: testClientSecret(),
		Hostname:     "example.com",
	},
		core.WithTransport(transport),
		core.WithLogger(glog.Nop()),
	)
	if err != nil {
		t.Fatalf("new oauth client: %v", err)
	}
	return client
}

func newTokenClient(t *testing.T, transport core.Transport) *core.Client {
	t.Helper()
	client, err := core.New(core.Config{
		AccessToken: testAccessToken(),
	},
		core.WithTransport(transport),
		core.WithLogger(glog.Nop()),
	)
	if err != nil {
		t.Fatalf("new access token client: %v", err)
	}
	return client
}

func unauthorizedScriptError() error {
	return goerrors.New("invalid token", goerrors.CategoryAuth).
		WithCode(http.StatusUnauthorized).
		WithTextCode(core.AnalyticsErrorUnauthorized)
}

func tokenScript(token string) devkit.Script {
	return devkit.Script{Body: []byte(`{"access_token":"` + token + `"}`)}
}

func callsTo(calls []devkit.Call, endpoint string) []devkit.Call {
	matched := make([]devkit.Call, 0, len(calls))
	for _, call := range calls {
		if strings.HasSuffix(call.URL, endpoint) {
			matched = append(matched, call)
		}
	}
	return matched
}
