package backend

import (
	"context"

	"github.com/finboard/finboard/internal/model"
)

// LoginRequest carries credentials for the login endpoint
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the fields for account registration
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// AuthResponse is the backend's response to login and registration
type AuthResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    model.User `json:"user"`
}

// Login exchanges credentials for a token and user profile
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account; the backend establishes a session in the
// same response, mirroring login
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the profile of the token's owner
func (c *Client) Me(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, model.ErrNoToken
	}
	var user model.User
	if err := c.get(ctx, "/auth/me", token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
