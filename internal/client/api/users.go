package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ekalnins/campustrade/internal/client/models"
)

// RegisterResult is the unwrapped payload of a successful registration.
type RegisterResult struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// LoginResult is the unwrapped payload of a successful login. Token may be
// empty: the backend does not issue one on every deployment.
type LoginResult struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
}

// Register creates a new account. Registration does not sign the user in.
func (c *Client) Register(ctx context.Context, params models.RegisterParams) (*RegisterResult, error) {
	var result RegisterResult
	if err := c.post(ctx, "/users/register", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Login exchanges credentials for the account record and, when the backend
// issues one, a bearer token.
func (c *Client) Login(ctx context.Context, params models.LoginParams) (*LoginResult, error) {
	var result LoginResult
	if err := c.post(ctx, "/users/login", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetUser fetches the canonical account record.
func (c *Client) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var envelope struct {
		User *models.User `json:"user"`
	}
	if err := c.get(ctx, fmt.Sprintf("/users/%d", userID), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.User, nil
}

// UpdateUser applies a partial profile update.
func (c *Client) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) error {
	return c.put(ctx, fmt.Sprintf("/users/%d", userID), update, nil)
}

// DeleteUser soft-deletes the account.
func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.delete(ctx, fmt.Sprintf("/users/%d", userID), nil, nil)
}

// SearchUsers finds accounts by username, student id or real name.
func (c *Client) SearchUsers(ctx context.Context, keyword string) ([]models.User, error) {
	query := url.Values{"keyword": {keyword}}
	var envelope struct {
		Users []models.User `json:"users"`
	}
	if err := c.get(ctx, "/users/search", query, &envelope); err != nil {
		return nil, err
	}
	return envelope.Users, nil
}

// UpdateCredit shifts the user's credit score by change (clamped server-side).
func (c *Client) UpdateCredit(ctx context.Context, userID int64, change int) error {
	body := map[string]any{"change": change}
	return c.put(ctx, fmt.Sprintf("/users/%d/credit", userID), body, nil)
}
