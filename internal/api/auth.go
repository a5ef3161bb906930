package api

import (
	"errors"
	"net/url"
)

// Failure modes are deliberately coarse: the backend's detail strings
// are not stable enough to branch on, so callers get one sentinel per
// operation and show a fixed message.
var (
	ErrLoginFailed        = errors.New("login failed")
	ErrRegistrationFailed = errors.New("registration failed")
	ErrInvalidCode        = errors.New("invalid verification code")
)

// LoginResult is the outcome of a password login: either a completed
// authentication or a pending second-factor challenge.
type LoginResult interface {
	loginResult()
}

// Authenticated is a completed login carrying the access token. The
// backend also sets it as an HttpOnly cookie; the CLI persists the
// body copy.
type Authenticated struct {
	Token string
}

// ChallengeRequired means the account has 2FA enabled; the login must
// be completed with VerifyTwoFactor using the short-lived challenge
// token.
type ChallengeRequired struct {
	ChallengeToken string
}

func (Authenticated) loginResult()     {}
func (ChallengeRequired) loginResult() {}

type tokenResponse struct {
	AccessToken    string `json:"access_token"`
	TokenType      string `json:"token_type"`
	Requires2FA    bool   `json:"requires_2fa"`
	ChallengeToken string `json:"challenge_token"`
}

// LoginWithEmail exchanges credentials for a token. The endpoint is
// OAuth2 password-grant shaped: the email travels as the form field
// "username".
func (c *Client) LoginWithEmail(email, password string) (LoginResult, error) {
	values := url.Values{
		"username": {email},
		"password": {password},
	}
	var resp tokenResponse
	if err := c.PostForm("/auth/token", values, &resp); err != nil {
		return nil, ErrLoginFailed
	}
	if resp.Requires2FA {
		return ChallengeRequired{ChallengeToken: resp.ChallengeToken}, nil
	}
	return Authenticated{Token: resp.AccessToken}, nil
}

// Register creates a new account. fullName may be empty.
func (c *Client) Register(email, password, fullName string) (*User, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	if fullName != "" {
		body["full_name"] = fullName
	}
	var user User
	if err := c.Post("/auth/register", body, &user); err != nil {
		return nil, ErrRegistrationFailed
	}
	return &user, nil
}

// VerifyTwoFactor completes a challenged login with a one-time code.
func (c *Client) VerifyTwoFactor(code, challengeToken string) (Authenticated, error) {
	body := map[string]string{
		"code":            code,
		"challenge_token": challengeToken,
	}
	var resp tokenResponse
	if err := c.Post("/auth/verify-2fa", body, &resp); err != nil {
		return Authenticated{}, ErrInvalidCode
	}
	return Authenticated{Token: resp.AccessToken}, nil
}

// Logout tells the backend to drop the session. Failure is ignored:
// the caller clears local credentials regardless, mirroring the
// unconditional redirect the web client performs.
func (c *Client) Logout() {
	_ = c.Post("/auth/logout", nil, nil)
}

// GoogleLoginURL builds the OAuth entry point. Pure string
// construction, no network call; the user opens it in a browser.
func (c *Client) GoogleLoginURL() string {
	return c.BaseURL + "/auth/google/login"
}

// CurrentUser fetches the authenticated user. Any failure — transport
// error, 401, malformed body — yields (nil, nil): "not logged in" is
// a normal state, not an error.
func (c *Client) CurrentUser() (*User, error) {
	var user User
	if err := c.Get("/auth/me", nil, &user); err != nil {
		return nil, nil
	}
	return &user, nil
}
