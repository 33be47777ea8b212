package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"recruit-console/internal/dto"
)

// ExchangeToken trades credentials for a bearer token. The token is
// opaque to the console; only the backend interprets it.
func (c *Client) ExchangeToken(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var token dto.TokenResponse
	if err := c.postForm(ctx, "/auth/token", form, &token); err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

// Me fetches the identity record for an explicitly supplied token. Login
// calls this before the session is installed, so the token cannot come
// from the TokenSource yet.
func (c *Client) Me(ctx context.Context, token string) (*dto.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/auth/me", nil), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var identity dto.Identity
	if err := c.send(req, &identity, false); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (c *Client) Register(ctx context.Context, req *dto.RegisterRequest) error {
	return c.postJSONNoAuth(ctx, "/auth/register", req, nil)
}
