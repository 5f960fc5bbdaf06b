package hub

import (
	"github.com/hubgate/hubgate/pkg/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func ProvideClient(s config.Settings, log *zap.Logger) *Client {
	return NewClient(s.Hub, log)
}

var Module = fx.Options(
	fx.Provide(ProvideClient),
	fx.Provide(NewVerifier),
)
