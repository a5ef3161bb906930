package api

import "github.com/chefstream/cli/internal/cache"

// Cache keys. currentUser is the single authority for deciding
// guest vs authenticated behavior.
const (
	keyCurrentUser = "currentUser"
	keySessions    = "sessions"
)

// Service layers the query cache over a Client. Reads of the current
// user and the session list go through the cache; every mutation that
// changes what those reads would return invalidates the matching key,
// so the next read reflects the server's truth.
type Service struct {
	Client *Client
	store  *cache.Store
}

// NewService wraps client with a fresh cache.
func NewService(client *Client) *Service {
	return &Service{Client: client, store: cache.New()}
}

// CurrentUser returns the cached current user, fetching on a miss.
// A nil user means guest; like Client.CurrentUser, fetch failures are
// folded into the guest state rather than surfaced. The nil result is
// not cached, so a later read retries.
func (s *Service) CurrentUser() *User {
	v, err := s.store.Fetch(keyCurrentUser, func() (interface{}, error) {
		u, _ := s.Client.CurrentUser()
		if u == nil {
			return nil, errGuest
		}
		return u, nil
	})
	if err != nil {
		return nil
	}
	return v.(*User)
}

// Sessions returns the cached session list, fetching on a miss.
func (s *Service) Sessions() ([]Session, error) {
	v, err := s.store.Fetch(keySessions, func() (interface{}, error) {
		return s.Client.Sessions()
	})
	if err != nil {
		return nil, err
	}
	return v.([]Session), nil
}

// RevokeSession revokes one session and invalidates the list.
func (s *Service) RevokeSession(id string) error {
	if err := s.Client.RevokeSession(id); err != nil {
		return err
	}
	s.store.Invalidate(keySessions)
	return nil
}

// RevokeOtherSessions bulk-revokes and invalidates the list.
func (s *Service) RevokeOtherSessions() error {
	if err := s.Client.RevokeOtherSessions(); err != nil {
		return err
	}
	s.store.Invalidate(keySessions)
	return nil
}

// TwoFactorSetupMaterial fetches fresh enrollment material. Setup
// material is deliberately never cached: each enrollment attempt gets
// a new secret.
func (s *Service) TwoFactorSetupMaterial() (*TwoFactorSetup, error) {
	return s.Client.TwoFactorSetupMaterial()
}

// EnableTwoFactor enables 2FA and invalidates the current user so its
// is_2fa_enabled flag is re-read.
func (s *Service) EnableTwoFactor(code, secret string) ([]string, error) {
	codes, err := s.Client.EnableTwoFactor(code, secret)
	if err != nil {
		return nil, err
	}
	s.store.Invalidate(keyCurrentUser)
	return codes, nil
}

// DisableTwoFactor disables 2FA and invalidates the current user.
func (s *Service) DisableTwoFactor() error {
	if err := s.Client.DisableTwoFactor(); err != nil {
		return err
	}
	s.store.Invalidate(keyCurrentUser)
	return nil
}

// ToggleSecurityNotifications flips the flag and invalidates the
// current user.
func (s *Service) ToggleSecurityNotifications(enabled bool) error {
	if err := s.Client.ToggleSecurityNotifications(enabled); err != nil {
		return err
	}
	s.store.Invalidate(keyCurrentUser)
	return nil
}

// errGuest keeps failed current-user fetches out of the cache.
var errGuest = &guestError{}

type guestError struct{}

func (*guestError) Error() string { return "not authenticated" }
