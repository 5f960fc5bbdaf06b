package identity

import "net/http"

// IsAuthenticated reports whether the request resolved to the expected
// user. Verification errors count as not authenticated here; callers that
// need the classification use CurrentUser.
func (m *Middleware) IsAuthenticated(r *http.Request) bool {
	user, err := m.CurrentUser(r)
	return err == nil && user != ""
}

// User returns the resolved identity or "" without exposing errors; meant
// for log/metric enrichment where a failure already produced its own entry.
func (m *Middleware) User(r *http.Request) string {
	user, _ := m.CurrentUser(r)
	return user
}
