package hub_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/hubgate/hubgate/pkg/cookiecache"
	"github.com/hubgate/hubgate/pkg/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingDoer answers every request the same way and counts round trips.
type countingDoer struct {
	calls  int
	status int
	body   string
	err    error
}

func (d *countingDoer) Do(*http.Request) (*http.Response, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	return respond(d.status, d.body), nil
}

func newVerifier(d hub.HTTPDoer) (*hub.Verifier, *cookiecache.Cache) {
	cache := cookiecache.New()
	return hub.NewVerifier(newClient(d), cache, zap.NewNop()), cache
}

func TestVerifyCookieCacheHitAvoidsIO(t *testing.T) {
	d := &countingDoer{status: 200, body: `{"name":"alice"}`}
	v, _ := newVerifier(d)

	u1, err := v.VerifyCookie(context.Background(), "hub-session", "c1")
	require.NoError(t, err)
	require.NotNil(t, u1)

	u2, err := v.VerifyCookie(context.Background(), "hub-session", "c1")
	require.NoError(t, err)

	assert.Equal(t, 1, d.calls)
	assert.Same(t, u1, u2)
}

func TestVerifyCookieAbsentIsCached(t *testing.T) {
	d := &countingDoer{status: 404}
	v, cache := newVerifier(d)

	for i := 0; i < 3; i++ {
		u, err := v.VerifyCookie(context.Background(), "hub-session", "stale")
		require.NoError(t, err)
		assert.Nil(t, u)
	}
	assert.Equal(t, 1, d.calls)

	u, ok := cache.Get("stale")
	assert.True(t, ok)
	assert.Nil(t, u)
}

func TestVerifyCookieFailureNotCached(t *testing.T) {
	d := &countingDoer{status: 503}
	v, cache := newVerifier(d)

	_, err := v.VerifyCookie(context.Background(), "hub-session", "c1")
	require.Error(t, err)
	_, err = v.VerifyCookie(context.Background(), "hub-session", "c1")
	require.Error(t, err)

	// every attempt retried against the hub, nothing stored
	assert.Equal(t, 2, d.calls)
	assert.Equal(t, 0, cache.Len())
}

func TestVerifyCookieClearForcesRevalidation(t *testing.T) {
	d := &countingDoer{status: 200, body: `{"name":"alice"}`}
	v, cache := newVerifier(d)

	_, err := v.VerifyCookie(context.Background(), "hub-session", "c1")
	require.NoError(t, err)
	require.Equal(t, 1, d.calls)

	cache.Clear()

	_, err = v.VerifyCookie(context.Background(), "hub-session", "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, d.calls)
}

func TestVerifyCookieDistinctValuesDistinctEntries(t *testing.T) {
	d := &countingDoer{status: 200, body: `{"name":"alice"}`}
	v, cache := newVerifier(d)

	_, _ = v.VerifyCookie(context.Background(), "hub-session", "a")
	_, _ = v.VerifyCookie(context.Background(), "hub-session", "b")

	assert.Equal(t, 2, d.calls)
	assert.Equal(t, 2, cache.Len())
}
