package platform

import (
	"context"
	"net/http"

	"github.com/elitecards/admin-console/internal/types"
)

// Credentials are the login inputs forwarded to the platform.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest creates a new account with a role.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginResult is the token and account the platform issues on login.
type LoginResult struct {
	Token string        `json:"token"`
	User  types.Account `json:"user"`
}

// Login exchanges credentials for a token and role.
func (c *Client) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	var result LoginResult
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/login", creds, &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (types.Account, error) {
	var account types.Account
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/signup", req, &account); err != nil {
		return types.Account{}, err
	}
	return account, nil
}
