package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/finboard/finboard/internal/model"
)

// UpdateProfileRequest carries the editable profile fields
type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ChangePasswordRequest carries the password-change fields
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UpdateProfile updates the user's name fields and returns the new profile
func (c *Client) UpdateProfile(ctx context.Context, token string, userID model.UserID, req UpdateProfileRequest) (*model.User, error) {
	if token == "" {
		return nil, model.ErrNoToken
	}
	var user model.User
	if err := c.put(ctx, fmt.Sprintf("/users/%d", userID), token, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword changes the user's password
func (c *Client) ChangePassword(ctx context.Context, token string, userID model.UserID, req ChangePasswordRequest) error {
	if token == "" {
		return model.ErrNoToken
	}
	return c.put(ctx, fmt.Sprintf("/users/%d/password", userID), token, req, nil)
}

// UploadAvatar uploads a profile picture as multipart form data
func (c *Client) UploadAvatar(ctx context.Context, token string, userID model.UserID, filename string, content io.Reader) error {
	if token == "" {
		return model.ErrNoToken
	}
	path := fmt.Sprintf("/users/%d/avatar", userID)
	return c.doMultipart(ctx, http.MethodPost, path, token, "avatar", filename, content)
}
