// ABOUTME: Authentication endpoints of the BarberSlot API
// ABOUTME: Login, admin login with second factor, register, revalidation, logout

package client

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminLoginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	TwoFactorCode string `json:"two_factor_code,omitempty"`
}

type authResponse struct {
	User        *User  `json:"user"`
	Token       string `json:"token"`
	Requires2FA bool   `json:"requires_2fa"`
}

type meResponse struct {
	User *User `json:"user"`
}

// AdminLoginResult is the outcome of an admin login attempt.
// RequiresSecondFactor is a control-flow signal, not an error: the account
// needs a one-time code and none (or a blank one) was supplied.
type AdminLoginResult struct {
	User                 *User
	Token                string
	RequiresSecondFactor bool
}

// Login calls POST /api/auth/login and returns the identity and bearer token
func (c *Client) Login(ctx context.Context, email, password string) (*User, string, error) {
	var resp authResponse
	err := c.post(ctx, "/api/auth/login", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, "", err
	}
	return resp.User, resp.Token, nil
}

// AdminLogin calls POST /api/admin/login. When the account requires a second
// factor and secondFactor is empty, the result reports RequiresSecondFactor
// without an error.
func (c *Client) AdminLogin(ctx context.Context, email, password, secondFactor string) (*AdminLoginResult, error) {
	var resp authResponse
	err := c.post(ctx, "/api/admin/login", adminLoginRequest{
		Email:         email,
		Password:      password,
		TwoFactorCode: secondFactor,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Requires2FA {
		return &AdminLoginResult{RequiresSecondFactor: true}, nil
	}
	return &AdminLoginResult{User: resp.User, Token: resp.Token}, nil
}

// Register calls POST /api/auth/register. It creates an account but does not
// authenticate the caller; no token is returned.
func (c *Client) Register(ctx context.Context, email, password, name, phone string) error {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Phone    string `json:"phone"`
	}{email, password, name, phone}
	return c.post(ctx, "/api/auth/register", body, nil)
}

// Me calls GET /api/auth/me to revalidate the configured token.
// The endpoint confirms identity only; it does not return a role.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp meResponse
	if err := c.get(ctx, "/api/auth/me", &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout calls POST /api/auth/logout. The response body is ignored; callers
// treat this as a best-effort courtesy notification.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}
