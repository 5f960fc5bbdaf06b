package identity

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

type Middleware struct {
	verifier     CookieVerifier
	cookieName   string
	expectedUser string
	loginURL     string
	logoutURL    string
	log          *zap.Logger
}

// Middleware hangs a fresh resolution slot on every request's context. The
// slot dies with the request; nothing about a caller outlives it.
func (m *Middleware) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), resolutionCtxKey, &resolution{})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser guards a route: the expected user passes through, anonymous
// callers are sent to the hub's login page, and classified verification
// failures answer with their surfaced status and a generic message.
func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.CurrentUser(r)
		if err != nil {
			http.Error(w, "authentication service error", httpStatus(err))
			return
		}
		if user == "" {
			redirectToLogin(w, r, m.loginURL)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func redirectToLogin(w http.ResponseWriter, r *http.Request, loginURL string) {
	if loginURL == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, loginURL+"?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
}
