package identity

import (
	"github.com/hubgate/hubgate/pkg/hub"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(func(v *hub.Verifier) CookieVerifier { return v }),
	fx.Provide(New),
	fx.Provide(func(m *Middleware) Resolver { return m }),
)
