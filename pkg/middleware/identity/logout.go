package identity

import "net/http"

// LogoutHandler is the pluggable logout action: it never clears state
// locally, it hands the browser to the hub's logout endpoint, which owns the
// session.
func (m *Middleware) LogoutHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, m.logoutURL, http.StatusFound)
	})
}
