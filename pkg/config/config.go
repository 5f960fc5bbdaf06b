// config/config.go
package config

import (
	"fmt"
	"strings"
	"time"
)

// Settings is the one configuration object for the whole process. It is built
// once at startup by Load and handed to every component by injection; nothing
// reads configuration by string key at runtime.
type Settings struct {
	Server   Server   `toml:"server"`
	Hub      Hub      `toml:"hub"`
	Identity Identity `toml:"identity"`
	Cache    Cache    `toml:"cache"`
}

type Server struct {
	Listen string `toml:"listen"`
}

// Hub describes how to reach the central authority that owns the user
// database and issues session cookies.
type Hub struct {
	APIURL     string `toml:"api_url"`
	Prefix     string `toml:"prefix"`
	Host       string `toml:"host"`
	CookieName string `toml:"cookie_name"`

	// APIToken never comes from the file; Load fills it from HUB_API_TOKEN.
	APIToken string `toml:"-"`
}

// Identity names the single user this instance serves. Immutable after Load.
type Identity struct {
	User string `toml:"user"`
}

type Cache struct {
	// MaxAgeSeconds bounds how long a verified (or rejected) cookie stays
	// trusted without a round trip to the hub. Zero disables expiry.
	MaxAgeSeconds int `toml:"max_age_seconds"`
}

// LoginURL is where anonymous callers on guarded routes get sent.
func (h Hub) LoginURL() string { return h.Host + h.Prefix + "/login" }

// LogoutURL is the hub's logout endpoint; logout is never handled locally.
func (h Hub) LogoutURL() string { return h.Host + h.Prefix + "/logout" }

func (c Cache) MaxAge() time.Duration { return time.Duration(c.MaxAgeSeconds) * time.Second }

func (s *Settings) normalize() {
	s.Hub.APIURL = strings.TrimRight(strings.TrimSpace(s.Hub.APIURL), "/")
	s.Hub.Prefix = strings.TrimRight(strings.TrimSpace(s.Hub.Prefix), "/")
	s.Hub.Host = strings.TrimRight(strings.TrimSpace(s.Hub.Host), "/")
	s.Hub.CookieName = strings.TrimSpace(s.Hub.CookieName)
	s.Identity.User = strings.TrimSpace(s.Identity.User)
	if s.Server.Listen == "" {
		s.Server.Listen = ":8888"
	}
}

func (s *Settings) Validate() error {
	s.normalize()
	if s.Hub.APIURL == "" {
		return fmt.Errorf("hub.api_url is required")
	}
	if s.Hub.CookieName == "" {
		return fmt.Errorf("hub.cookie_name is required")
	}
	if s.Hub.APIToken == "" {
		return fmt.Errorf("hub api token is required (set HUB_API_TOKEN)")
	}
	if s.Identity.User == "" {
		return fmt.Errorf("identity.user is required")
	}
	if s.Cache.MaxAgeSeconds < 0 {
		return fmt.Errorf("cache.max_age_seconds must be >= 0, got %d", s.Cache.MaxAgeSeconds)
	}
	return nil
}
