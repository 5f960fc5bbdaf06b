package identity

import (
	"github.com/hubgate/hubgate/pkg/config"
	"go.uber.org/zap"
)

// New wires the resolver from settings. Tests pass a fake CookieVerifier.
func New(v CookieVerifier, s config.Settings, log *zap.Logger) *Middleware {
	return &Middleware{
		verifier:     v,
		cookieName:   s.Hub.CookieName,
		expectedUser: s.Identity.User,
		loginURL:     s.Hub.LoginURL(),
		logoutURL:    s.Hub.LogoutURL(),
		log:          log,
	}
}
