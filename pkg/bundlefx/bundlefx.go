// bundlefx/bundlefx.go
package bundlefx

import (
	"github.com/hubgate/hubgate/pkg/middleware/identity"
	"github.com/hubgate/hubgate/pkg/middleware/logger"
	"github.com/hubgate/hubgate/pkg/middleware/metrics"
	"go.uber.org/fx"
)

// Module provided to fx
var Module = fx.Options(
	identity.Module,
	logger.Module,
	metrics.Module,
)
