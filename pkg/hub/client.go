// hub/client.go
package hub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/hubgate/hubgate/pkg/config"
	"go.uber.org/zap"
)

// Client talks to the hub's REST API. It owns exactly one call: asking the
// hub whether a session cookie is good and, if so, for whom.
type Client struct {
	httpClient HTTPDoer
	apiURL     string
	apiToken   string
	log        *zap.Logger
}

func NewClient(cfg config.Hub, log *zap.Logger) *Client {
	hc := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:       10,
			IdleConnTimeout:    30 * time.Second,
			DisableCompression: false,
		},
		Timeout: 8 * time.Second,
	}
	return &Client{
		httpClient: hc,
		apiURL:     cfg.APIURL,
		apiToken:   cfg.APIToken,
		log:        log,
	}
}

// NewClientWithDoer is the test seam; production wiring uses NewClient.
func NewClientWithDoer(d HTTPDoer, cfg config.Hub, log *zap.Logger) *Client {
	return &Client{httpClient: d, apiURL: cfg.APIURL, apiToken: cfg.APIToken, log: log}
}

// AuthorizeCookie asks the hub who a session cookie belongs to. A nil user
// with nil error means the hub does not recognize the cookie; that is not a
// failure. The cookie value is opaque and is never inspected here, only
// escaped into the request path.
func (c *Client) AuthorizeCookie(ctx context.Context, cookieName, cookieValue string) (*User, error) {
	endpoint := c.apiURL + "/authorizations/cookie/" + url.PathEscape(cookieName) + "/" + url.PathEscape(cookieValue)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "token "+c.apiToken)

	res, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and dropped connections count as the hub being down.
		c.log.Error("hub verification call failed", zap.Error(err))
		return nil, upstreamErr("hub request failed", err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		// Unrecognized or expired cookie. Not an error.
		return nil, nil
	case res.StatusCode == http.StatusForbidden:
		c.log.Error("hub rejected our API token; this instance may need a restart",
			zap.Int("status", res.StatusCode))
		return nil, fatalErr("hub API token invalid or expired")
	case res.StatusCode >= http.StatusInternalServerError:
		c.log.Error("hub unavailable", zap.Int("status", res.StatusCode))
		return nil, upstreamErr("hub returned "+res.Status, nil)
	case res.StatusCode >= http.StatusBadRequest:
		c.log.Warn("hub rejected verification request", zap.Int("status", res.StatusCode))
		return nil, badRequestErr("hub rejected request: " + res.Status)
	}

	var u User
	if err := json.NewDecoder(res.Body).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}
