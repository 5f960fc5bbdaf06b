package hub_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/hubgate/hubgate/pkg/config"
	"github.com/hubgate/hubgate/pkg/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newClient(d hub.HTTPDoer) *hub.Client {
	cfg := config.Hub{
		APIURL:     "http://hub.local/hub/api",
		CookieName: "hub-session",
		APIToken:   "secret",
	}
	return hub.NewClientWithDoer(d, cfg, zap.NewNop())
}

func TestAuthorizeCookieRequestShape(t *testing.T) {
	var got *http.Request
	c := newClient(doerFunc(func(r *http.Request) (*http.Response, error) {
		got = r
		return respond(http.StatusNotFound, ""), nil
	}))

	value := "opaque/value with spaces&junk"
	_, err := c.AuthorizeCookie(context.Background(), "hub-session", value)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "token secret", got.Header.Get("Authorization"))
	assert.Equal(t,
		"http://hub.local/hub/api/authorizations/cookie/hub-session/"+url.PathEscape(value),
		got.URL.String())
}

func TestAuthorizeCookieClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantUser string
		wantCode int
		fatal    bool
		upstream bool
	}{
		{name: "valid session", status: 200, body: `{"name":"alice","admin":false}`, wantUser: "alice"},
		{name: "unknown cookie", status: 404},
		{name: "own token rejected", status: 403, wantCode: 500, fatal: true},
		{name: "hub down", status: 503, wantCode: 502, upstream: true},
		{name: "hub internal error", status: 500, wantCode: 502, upstream: true},
		{name: "malformed request", status: 400, wantCode: 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(doerFunc(func(*http.Request) (*http.Response, error) {
				return respond(tc.status, tc.body), nil
			}))

			u, err := c.AuthorizeCookie(context.Background(), "hub-session", "v")
			if tc.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tc.wantCode, hub.HTTPStatus(err))
				assert.Equal(t, tc.fatal, hub.IsFatal(err))
				assert.Equal(t, tc.upstream, hub.IsUpstream(err))
				return
			}
			require.NoError(t, err)
			if tc.wantUser == "" {
				assert.Nil(t, u)
			} else {
				require.NotNil(t, u)
				assert.Equal(t, tc.wantUser, u.Name)
			}
		})
	}
}

func TestAuthorizeCookieTransportError(t *testing.T) {
	c := newClient(doerFunc(func(*http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	}))

	_, err := c.AuthorizeCookie(context.Background(), "hub-session", "v")
	require.Error(t, err)
	assert.True(t, hub.IsUpstream(err))
	assert.Equal(t, http.StatusBadGateway, hub.HTTPStatus(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
