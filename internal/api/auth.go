package api

import (
	"context"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/models"

	"go.uber.org/zap"
)

// AuthResponse is returned by login and registration: a bearer token plus a
// snapshot of the session user.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Campus   string `json:"campus"`
	School   string `json:"school"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.post(ctx, "/auth/login", body, &resp); err != nil {
		span.RecordError(err)
		return nil, err
	}

	c.SetToken(resp.Token)
	c.logger.Debug("logged in", zap.String("user_id", resp.User.ID))
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	ctx, span := tracer.Start(ctx, "Register")
	defer span.End()

	var resp AuthResponse
	if err := c.post(ctx, "/auth/register", input, &resp); err != nil {
		span.RecordError(err)
		return nil, err
	}

	c.SetToken(resp.Token)
	return &resp, nil
}

// CurrentUser is the "who am I" call used for session rehydration. It relies
// on whichever credential is present: the session cookie or the bearer token.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	ctx, span := tracer.Start(ctx, "CurrentUser")
	defer span.End()

	var user models.User
	if err := c.get(ctx, "/auth/me", nil, &user); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &user, nil
}

func (c *Client) Logout(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Logout")
	defer span.End()

	err := c.post(ctx, "/auth/logout", nil, nil)
	c.ClearToken()
	return err
}
