package api

import (
	"context"
	"fmt"

	"github.com/frahmantamala/hrms-client/internal/session"
)

// LoginRequest carries the credentials for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// LoginData is the payload of a successful login.
type LoginData struct {
	User  session.User `json:"user"`
	Token string       `json:"token"`
}

// Login authenticates against the backend. It is dispatched like any other
// call; there is simply no token in the session yet, so the request goes out
// unauthenticated.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginData, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var data LoginData
	if err := c.post(ctx, "/auth/login", req, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetMe fetches the current identity for the presented token.
func (c *Client) GetMe(ctx context.Context) (*session.User, error) {
	var user session.User
	if err := c.get(ctx, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile sends a partial identity update; only the fields set on the
// patch are transmitted. Returns the identity as the backend now sees it.
func (c *Client) UpdateProfile(ctx context.Context, patch session.UserPatch) (*session.User, error) {
	var user session.User
	if err := c.put(ctx, "/users/profile", patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
