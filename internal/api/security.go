package api

import (
	"fmt"
	"net/url"
	"strconv"
)

// Sessions lists the account's active sessions in backend order.
func (c *Client) Sessions() ([]Session, error) {
	var sessions []Session
	if err := c.Get("/security/sessions", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// RevokeSession revokes a single session by id.
func (c *Client) RevokeSession(id string) error {
	var resp StatusResponse
	return c.Post("/security/sessions/"+id+"/revoke", nil, &resp)
}

// RevokeOtherSessions revokes every session except the one making
// this request.
func (c *Client) RevokeOtherSessions() error {
	var resp StatusResponse
	return c.Post("/security/sessions/revoke-others", nil, &resp)
}

// TwoFactorSetupMaterial requests fresh enrollment material. Each call
// returns a new secret; callers must not reuse material across
// enrollment attempts.
func (c *Client) TwoFactorSetupMaterial() (*TwoFactorSetup, error) {
	var setup TwoFactorSetup
	if err := c.Post("/security/2fa/setup", nil, &setup); err != nil {
		return nil, err
	}
	return &setup, nil
}

// EnableTwoFactor verifies the code against the pending secret and
// turns 2FA on, returning one-time backup codes.
func (c *Client) EnableTwoFactor(code, secret string) ([]string, error) {
	body := map[string]string{
		"code":   code,
		"secret": secret,
	}
	var resp struct {
		Status      string   `json:"status"`
		BackupCodes []string `json:"backup_codes"`
	}
	if err := c.Post("/security/2fa/enable", body, &resp); err != nil {
		return nil, ErrInvalidCode
	}
	return resp.BackupCodes, nil
}

// DisableTwoFactor turns 2FA off for the account.
func (c *Client) DisableTwoFactor() error {
	var resp StatusResponse
	return c.Post("/security/2fa/disable", nil, &resp)
}

// ToggleSecurityNotifications switches security event emails on or off.
func (c *Client) ToggleSecurityNotifications(enabled bool) error {
	params := url.Values{"enabled": {strconv.FormatBool(enabled)}}
	var resp StatusResponse
	if err := c.Post("/security/notifications/toggle?"+params.Encode(), nil, &resp); err != nil {
		return fmt.Errorf("toggling notifications: %w", err)
	}
	return nil
}
