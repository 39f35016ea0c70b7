package nella

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zini/nella/internal/validation"
	"github.com/zini/nella/pkg/api"
	"github.com/zini/nella/pkg/tokencache"
)

// Authenticate logs the user in. With useCached set, a cached token younger
// than two hours is verified with a lightweight user lookup and adopted on
// success; any cached-token problem silently falls back to a fresh
// credential exchange.
func (c *Client) Authenticate(ctx context.Context, username, password string, useCached bool) error {
	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}

	if useCached && c.tryCachedToken(ctx, username) {
		return nil
	}

	return c.authenticate(ctx, username, password)
}

// tryCachedToken attempts to resume a session from the token cache.
// Returns true only when the cached token verified successfully; every
// failure path leaves the client unauthenticated so the caller can fall
// back to fresh authentication.
func (c *Client) tryCachedToken(ctx context.Context, username string) bool {
	entry, err := c.cache.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, tokencache.ErrTokenNotFound):
			c.log.Debug("no cached token")
		case errors.Is(err, tokencache.ErrTokenCorrupted):
			c.log.Warn("cached token is corrupted, ignoring", "error", err)
		default:
			c.log.Warn("failed to read cached token, ignoring", "error", err)
		}
		return false
	}

	c.log.Debug("cached token found", "age", entry.Age)

	if entry.Age >= TokenMaxAge {
		c.log.Debug("cached token was too old, requesting new")
		if err := c.cache.Invalidate(ctx); err != nil {
			c.log.Warn("failed to invalidate stale token", "error", err)
		}
		return false
	}

	// Tentatively adopt the token and verify it with a cheap user lookup
	c.log.Debug("testing cached token")
	c.state = stateAuthenticating
	c.token = entry.Token
	c.userID = username

	if _, err := c.do(ctx, "user/"+url.PathEscape(username), nil, http.MethodGet); err != nil {
		c.log.Debug("cached token was invalid, requesting new", "error", err)
		c.token = ""
		c.userID = ""
		c.state = stateUnauthenticated
		return false
	}

	c.log.Debug("cached token was valid, using")
	c.sessionTimeout = TokenMaxAge
	c.refreshSession(ctx)
	// The token has already lived entry.Age of its window
	c.expiry = time.Now().Add(c.sessionTimeout - entry.Age)
	c.state = stateAuthenticated

	return true
}

// authenticate performs a fresh credential exchange against oauth/token
func (c *Client) authenticate(ctx context.Context, username, password string) error {
	form := url.Values{
		"username":   {username},
		"password":   {password},
		"grant_type": {"password"},
	}

	c.log.Debug("authenticating user", "username", username)
	c.state = stateAuthenticating

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+authPath, strings.NewReader(form.Encode()))
	if err != nil {
		c.state = stateUnauthenticated
		return fmt.Errorf("failed to create auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.state = stateUnauthenticated
		return fmt.Errorf("auth request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.state = stateUnauthenticated
		return fmt.Errorf("failed to read auth response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Debug("auth failed", "status", resp.StatusCode)
		c.state = stateUnauthenticated

		// A rejected login also voids whatever token was cached
		if err := c.cache.Invalidate(ctx); err != nil {
			c.log.Warn("failed to invalidate cached token", "error", err)
		}

		var errResp api.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.ErrorDescription != "" {
			c.log.Debug("auth error detail", "error", errResp.Error, "description", errResp.ErrorDescription)
			return &AuthFailedError{
				StatusCode:  resp.StatusCode,
				Code:        errResp.Error,
				Description: errResp.ErrorDescription,
			}
		}
		return &AuthFailedError{StatusCode: resp.StatusCode}
	}

	var tokenResp api.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		c.state = stateUnauthenticated
		return &AuthFailedError{StatusCode: resp.StatusCode, Description: "malformed token response"}
	}
	if tokenResp.AccessToken == "" || tokenResp.ExpiresIn <= 0 {
		c.state = stateUnauthenticated
		return &AuthFailedError{StatusCode: resp.StatusCode, Description: "malformed token response"}
	}

	c.token = tokenResp.AccessToken
	c.userID = username
	c.sessionTimeout = time.Duration(tokenResp.ExpiresIn) * time.Second
	c.refreshSession(ctx)
	c.state = stateAuthenticated

	c.log.Debug("authentication successful", "username", username, "expires_in", tokenResp.ExpiresIn)
	return nil
}

// Logout invalidates the cached token and clears the session. Logging out
// without an active session is fine; cache removal failures are only
// logged.
func (c *Client) Logout(ctx context.Context) {
	if err := c.cache.Invalidate(ctx); err != nil {
		c.log.Warn("failed to invalidate cached token", "error", err)
	}
	c.token = ""
	c.userID = ""
	c.sessionTimeout = 0
	c.expiry = time.Time{}
	c.state = stateUnauthenticated
}

// refreshSession rewrites the cached token and slides the expiry forward by
// the session timeout. Runs after every request attempt that reached the
// network, successful or not; the cache file is shared with other Nella
// clients, so the rewrite ordering is part of the on-disk contract.
// Persistence failures never break the in-memory session.
func (c *Client) refreshSession(ctx context.Context) {
	if c.token == "" {
		return
	}
	if err := c.cache.Save(ctx, c.token); err != nil {
		c.log.Warn("failed to persist session token", "error", err)
	}
	c.expiry = time.Now().Add(c.sessionTimeout)
}
