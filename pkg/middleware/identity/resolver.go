// identity/resolver.go
package identity

import (
	"net/http"

	"github.com/hubgate/hubgate/pkg/hub"
	"go.uber.org/zap"
)

// CurrentUser resolves the caller's identity for this request. It returns
// the expected user's name or "" for anonymous; an invalid, expired, or
// someone-else's cookie is indistinguishable from no cookie at all. The
// classified errors from the hub client are the only failures, and only the
// first lookup in a request can produce one; later lookups replay it.
func (m *Middleware) CurrentUser(r *http.Request) (string, error) {
	memo, _ := r.Context().Value(resolutionCtxKey).(*resolution)
	if memo == nil {
		// Middleware not installed (direct library use); resolve without
		// request-scoped memoization.
		memo = &resolution{}
	}

	memo.mu.Lock()
	defer memo.mu.Unlock()
	if memo.done {
		return memo.user, memo.err
	}
	memo.done = true
	memo.user, memo.err = m.resolve(r)
	return memo.user, memo.err
}

func (m *Middleware) resolve(r *http.Request) (string, error) {
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return "", nil
	}

	u, err := m.verifier.VerifyCookie(r.Context(), m.cookieName, c.Value)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", nil
	}
	if u.Name != m.expectedUser {
		// Valid session, wrong user. Not an error, and the rejected name
		// stays in the server log only.
		identityMismatches.Inc()
		m.log.Warn("cookie belongs to another user; treating as anonymous",
			zap.String("user", u.Name))
		return "", nil
	}
	return u.Name, nil
}

func httpStatus(err error) int { return hub.HTTPStatus(err) }
