// config/load.go
package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Load reads the settings file, applies env overrides, and validates.
func Load(path string) (Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	var s Settings
	if err := toml.Unmarshal(b, &s); err != nil {
		return Settings{}, err
	}
	applyEnv(&s)
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func applyEnv(s *Settings) {
	s.Hub.APIToken = os.Getenv("HUB_API_TOKEN")
	s.Server.Listen = envOr("SERVER_LISTEN_ADDRESS", s.Server.Listen)
	s.Hub.APIURL = envOr("HUB_API_URL", s.Hub.APIURL)
	s.Hub.Prefix = envOr("HUB_PREFIX", s.Hub.Prefix)
	s.Hub.Host = envOr("HUB_HOST", s.Hub.Host)
	s.Hub.CookieName = envOr("HUB_COOKIE_NAME", s.Hub.CookieName)
	s.Identity.User = envOr("HUBGATE_USER", s.Identity.User)
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
