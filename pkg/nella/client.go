// Package nella implements a client for the TKL Nella travel card service.
// It authenticates against the backend's OAuth password grant, keeps the
// bearer token cached through a tokencache.Store, and exposes typed
// accessors for user, card and ticket data.
//
// A Client owns exactly one session and is not safe for concurrent use;
// callers must serialize access themselves.
package nella

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/zini/nella/internal/validation"
	"github.com/zini/nella/pkg/tokencache"
	"github.com/zini/nella/pkg/tokencache/memory"
)

const (
	// DefaultBaseURL is the production Nella service root
	DefaultBaseURL = "https://nella.tampere.fi/mobiili/"

	// DefaultLanguage is the ISO 639-1 code appended to every API request
	DefaultLanguage = "en"

	// authPath and apiPath are joined onto the base URL
	authPath = "oauth/token"
	apiPath  = "api/v1/"

	// TokenMaxAge is the freshness window for cached tokens. An entry this
	// old or older is never reused. The same value is assumed as the
	// session timeout when resuming from cache.
	TokenMaxAge = 2 * time.Hour
)

// state is the session state of a Client
type state int

const (
	stateUnauthenticated state = iota
	stateAuthenticating
	stateAuthenticated
)

// Client is a Nella API client. The zero value is not usable; create one
// with NewClient.
type Client struct {
	httpClient *http.Client
	cache      tokencache.Store
	log        *slog.Logger

	baseURL string // always has a trailing slash
	lang    string

	// session state; token and userID are both set or both empty
	state          state
	token          string
	userID         string
	sessionTimeout time.Duration
	expiry         time.Time
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the service root, e.g. to point at a test server
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for debug tracing and cache diagnostics.
// By default all records are discarded.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a Nella client over the given token cache.
// A nil cache falls back to a process-local in-memory store.
func NewClient(cache tokencache.Store, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		cache:      cache,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		baseURL:    DefaultBaseURL,
		lang:       DefaultLanguage,
		state:      stateUnauthenticated,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = memory.New()
	}

	c.log.Debug("nella client init",
		"base_url", c.baseURL,
		"auth_url", c.baseURL+authPath,
		"backend_url", c.baseURL+apiPath,
		"lang", c.lang)

	return c
}

// SetLanguage changes the ISO 639-1 language code sent with every request
func (c *Client) SetLanguage(code string) error {
	if err := validation.ValidateLanguage(code); err != nil {
		return err
	}
	c.lang = code
	return nil
}

// Language returns the current language code
func (c *Client) Language() string {
	return c.lang
}

// IsAuthenticated reports whether the client holds an active session
func (c *Client) IsAuthenticated() bool {
	return c.state == stateAuthenticated
}

// UserID returns the user id of the active session, or "" if none
func (c *Client) UserID() string {
	return c.userID
}

// ExpiresAt returns the current session expiry. The session is a sliding
// window: every successful request pushes the expiry forward.
func (c *Client) ExpiresAt() time.Time {
	return c.expiry
}
