package identity

import (
	"context"
	"net/http"
	"sync"

	"github.com/hubgate/hubgate/pkg/hub"
)

// Resolver is the "who is the current caller" extension point the hosting
// server wires into its request path. Middleware is the production
// implementation.
type Resolver interface {
	CurrentUser(r *http.Request) (string, error)
}

// CookieVerifier is what the resolver needs from the hub side; satisfied by
// *hub.Verifier.
type CookieVerifier interface {
	VerifyCookie(ctx context.Context, cookieName, cookieValue string) (*hub.User, error)
}

type contextKey struct{ name string }

var resolutionCtxKey = &contextKey{"identity-resolution"}

// resolution is the per-request memo. The first lookup stores its outcome;
// every later lookup in the same request replays it, so re-entrant callers
// (error page rendering included) never trigger a second verification or a
// second log line.
type resolution struct {
	mu   sync.Mutex
	done bool
	user string // "" means anonymous
	err  error
}
