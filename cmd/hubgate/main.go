package main

import (
	"github.com/hubgate/hubgate/pkg/serverfx"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		serverfx.Module(
			serverfx.WithService("hubgate"),
			serverfx.WithConfigEnv("HUBGATE_CONFIG"),
			serverfx.WithDefaultConfig("hubgate.toml"),
		),
	).Run()
}
