// serverfx/serverfx.go
package serverfx

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	"github.com/hubgate/hubgate/pkg/bundlefx"
	"github.com/hubgate/hubgate/pkg/config"
	"github.com/hubgate/hubgate/pkg/cookiecache"
	"github.com/hubgate/hubgate/pkg/hub"
	"github.com/hubgate/hubgate/pkg/middleware/identity"
	"github.com/hubgate/hubgate/pkg/middleware/logger"
	"github.com/hubgate/hubgate/pkg/middleware/metrics"
	"github.com/hubgate/hubgate/pkg/transport/httpx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ---------- Options ----------

type Config struct {
	Service       string // for logs/metrics tags only
	ConfigEnv     string // e.g., HUBGATE_CONFIG
	DefaultConfig string // e.g., "hubgate.toml"
	TLSCertEnv    string // SSL_SERVER_CERTIFICATE
	TLSKeyEnv     string // SSL_SERVER_KEY
}

type Option func(*Config)

func WithService(s string) Option          { return func(c *Config) { c.Service = s } }
func WithConfigEnv(k string) Option        { return func(c *Config) { c.ConfigEnv = k } }
func WithDefaultConfig(path string) Option { return func(c *Config) { c.DefaultConfig = path } }
func WithTLSCertKeyEnv(cert, key string) Option {
	return func(c *Config) { c.TLSCertEnv, c.TLSKeyEnv = cert, key }
}

func defaultConfig() Config {
	return Config{
		Service:       "hubgate",
		ConfigEnv:     "HUBGATE_CONFIG",
		DefaultConfig: "hubgate.toml",
		TLSCertEnv:    "SSL_SERVER_CERTIFICATE",
		TLSKeyEnv:     "SSL_SERVER_KEY",
	}
}

// Module returns a complete Fx option set; add app-specific fx.Invoke(...) alongside.
func Module(opts ...Option) fx.Option {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return fx.Options(
		bundlefx.Module,
		hub.Module,
		cookiecache.Module,
		// Router impl
		fx.Provide(httpx.NewChi),
		// Config into DI
		fx.Provide(func() Config { return cfg }),
		fx.Provide(provideSettings),
		// Router
		fx.Provide(fx.Annotate(
			provideRouter,
			fx.ParamTags(``, ``, `name:"metrics"`, ``, ``, ``),
			fx.ResultTags(`name:"app"`),
		)),
		// Lifecycle
		fx.Invoke(registerHooks),
	)
}

// ---------- Settings ----------

func provideSettings(cfg Config, zl *zap.Logger) config.Settings {
	path := envOr(cfg.ConfigEnv, cfg.DefaultConfig)
	s, err := config.Load(path)
	if err != nil {
		zl.Fatal("settings load failed", zap.Error(err), zap.String("path", path))
	}
	return s
}

// ---------- Router ----------

func provideRouter(
	id *identity.Middleware,
	lm *logger.Middleware,
	/* name:"metrics" */ m http.Handler,
	r httpx.Router,
	s config.Settings,
	zl *zap.Logger,
) http.Handler {
	r.Use(chimd.RequestID)
	r.Use(chimd.Recoverer)
	r.Use(id.Middleware())
	r.Use(lm.Middleware(id))
	r.Use(metrics.Collect(id))

	r.Get("/healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	r.Get("/metrics", m)
	r.Get("/logout", id.LogoutHandler())
	r.Get("/api/whoami", id.RequireUser(whoamiHandler(id)))

	zl.Info("router ready",
		zap.String("user", s.Identity.User),
		zap.String("hub", s.Hub.APIURL),
	)
	return r.Mux()
}

// ---------- Lifecycle ----------

type serverDeps struct {
	fx.In
	Logger *zap.Logger
	App    http.Handler `name:"app"`
}

func registerHooks(lc fx.Lifecycle, cfg Config, s config.Settings, d serverDeps) {
	addr := s.Server.Listen
	cert := os.Getenv(cfg.TLSCertEnv)
	key := os.Getenv(cfg.TLSKeyEnv)

	srv := &http.Server{
		Addr:         addr,
		Handler:      d.App,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		TLSConfig:    &tls.Config{MinVersion: tls.VersionTLS13, MaxVersion: tls.VersionTLS13},
	}
	useTLS := fileExists(cert) && fileExists(key)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if useTLS {
				d.Logger.Info("server starting (TLS)", zap.String("addr", addr), zap.String("cert", cert))
				go func() {
					if err := srv.ListenAndServeTLS(cert, key); err != nil && !errors.Is(err, http.ErrServerClosed) {
						d.Logger.Fatal("server failed", zap.Error(err))
					}
				}()
			} else {
				d.Logger.Info("server starting (PLAINTEXT)", zap.String("addr", addr))
				go func() {
					srv.TLSConfig = nil
					if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						d.Logger.Fatal("server failed", zap.Error(err))
					}
				}()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Logger.Info("server stopping")
			return srv.Shutdown(ctx)
		},
	})
}

// ---------- tiny helpers ----------

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
