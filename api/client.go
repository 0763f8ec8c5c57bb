// Package api is the typed client for the marketplace backend. Every exposed
// call issues exactly one HTTP request, maps failures to the endpoint's
// human-readable message table, and validates success payloads against their
// schema before returning them.
package api

import (
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/leftovermart/client-go/config"
)

// Client talks to the backend with a fixed base URL, timeout and a shared
// cookie jar carrying the session credential. There are no retries: a failed
// request surfaces immediately to the caller.
type Client struct {
	baseURL string
	std     *http.Client
	media   *http.Client
	logger  zerolog.Logger
}

// Option adjusts a Client during construction.
type Option func(*Client)

// WithLogger attaches a structured logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger.With().Str("component", "api_client").Logger()
	}
}

// WithTransport swaps the underlying round tripper, used by tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.std.Transport = rt
		c.media.Transport = rt
	}
}

// New builds a Client from configuration. Both the standard and media
// transports share one cookie jar so the session credential set by Login is
// included on every subsequent request.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating cookie jar")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	mediaTimeout := cfg.MediaTimeout
	if mediaTimeout <= 0 {
		mediaTimeout = 5 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		std:     &http.Client{Jar: jar, Timeout: timeout},
		media:   &http.Client{Jar: jar, Timeout: mediaTimeout},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL reports the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}
