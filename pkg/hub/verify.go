// hub/verify.go
package hub

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Cache is the verification cache contract; cookiecache.Cache satisfies it.
// A (nil, true) result is a cached "no such session".
type Cache interface {
	Get(cookieValue string) (*User, bool)
	Set(cookieValue string, u *User)
}

// Verifier turns an opaque cookie value into an authorization record,
// answering from the cache whenever it can. One instance serves the whole
// process; concurrent calls for the same cookie may both reach the hub, in
// which case the cache keeps the latest write.
type Verifier struct {
	client *Client
	cache  Cache
	log    *zap.Logger
}

func NewVerifier(client *Client, cache Cache, log *zap.Logger) *Verifier {
	return &Verifier{client: client, cache: cache, log: log}
}

// VerifyCookie resolves a cookie value. (nil, nil) means the hub does not
// recognize the cookie. Classified failures are returned unchanged and are
// never cached, so the next request retries; successes and Absent results
// are cached until the next full clear.
func (v *Verifier) VerifyCookie(ctx context.Context, cookieName, cookieValue string) (*User, error) {
	if u, ok := v.cache.Get(cookieValue); ok {
		cacheHits.Inc()
		return u, nil
	}
	cacheMisses.Inc()

	start := time.Now()
	u, err := v.client.AuthorizeCookie(ctx, cookieName, cookieValue)
	hubRequestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		verifications.WithLabelValues("error").Inc()
		return nil, err
	}

	if u == nil {
		verifications.WithLabelValues("absent").Inc()
	} else {
		verifications.WithLabelValues("ok").Inc()
		v.log.Debug("hub verified cookie", zap.String("user", u.Name))
	}
	v.cache.Set(cookieValue, u)
	return u, nil
}
