package nella

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// do performs an authenticated API request against the backend and returns
// the raw JSON body. path is relative to the API root. POST payloads are
// sent form-encoded. There is no automatic retry.
func (c *Client) do(ctx context.Context, path string, payload url.Values, method string) (json.RawMessage, error) {
	if c.token == "" {
		return nil, ErrNotAuthenticated
	}

	reqID := uuid.NewString()

	// Every API call carries the language code
	target := c.baseURL + apiPath + path + "?" + url.Values{"lang": {c.lang}}.Encode()

	var body io.Reader
	if method == http.MethodPost && payload != nil {
		body = strings.NewReader(payload.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Lowercase "bearer" is what the backend expects
	req.Header.Set("Authorization", "bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	c.log.Debug("api request", "id", reqID, "method", method, "url", target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.log.Debug("api response", "id", reqID, "status", resp.StatusCode, "bytes", len(respBody))

	// The session slides forward after every attempt that reached the
	// network, including failed ones
	c.refreshSession(ctx)

	if !json.Valid(respBody) {
		return nil, &RequestFailedError{StatusCode: resp.StatusCode, Reason: "response is not valid JSON"}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &RequestFailedError{StatusCode: resp.StatusCode}
	}

	return json.RawMessage(respBody), nil
}
