package nella

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/zini/nella/pkg/api"
	"github.com/zini/nella/pkg/models"
)

// GetUser returns profile information for the currently logged in user
func (c *Client) GetUser(ctx context.Context) (*models.User, error) {
	raw, err := c.GetUserRaw(ctx)
	if err != nil {
		return nil, err
	}

	var resp api.UserResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode user response: %w", err)
	}

	return &models.User{
		Username: resp.UserName,
		Email:    resp.Email,
	}, nil
}

// GetUserRaw returns the user payload as parsed JSON without model mapping
func (c *Client) GetUserRaw(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, "user/"+url.PathEscape(c.userID), nil, http.MethodGet)
}
