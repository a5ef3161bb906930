package twofa

import (
	"errors"
	"fmt"
	"testing"

	"github.com/chefstream/cli/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	setupCalls  int
	enableCalls int
	lastCode    string
	lastSecret  string
	enableErr   error
	backupCodes []string
}

func (f *fakeBackend) TwoFactorSetupMaterial() (*api.TwoFactorSetup, error) {
	f.setupCalls++
	return &api.TwoFactorSetup{
		Secret:     fmt.Sprintf("SECRET-%d", f.setupCalls),
		OTPAuthURL: "otpauth://totp/ChefStream:chef@example.com",
	}, nil
}

func (f *fakeBackend) EnableTwoFactor(code, secret string) ([]string, error) {
	f.enableCalls++
	f.lastCode = code
	f.lastSecret = secret
	if f.enableErr != nil {
		return nil, f.enableErr
	}
	return f.backupCodes, nil
}

func TestNewWizard(t *testing.T) {
	t.Run("starts in AwaitingScan with fresh material", func(t *testing.T) {
		backend := &fakeBackend{}
		w, err := NewWizard(backend)
		require.NoError(t, err)

		assert.Equal(t, StepAwaitingScan, w.Step())
		assert.Equal(t, "SECRET-1", w.Setup().Secret)
	})

	t.Run("every wizard fetches new material", func(t *testing.T) {
		backend := &fakeBackend{}

		first, err := NewWizard(backend)
		require.NoError(t, err)
		second, err := NewWizard(backend)
		require.NoError(t, err)

		assert.Equal(t, 2, backend.setupCalls)
		assert.NotEqual(t, first.Setup().Secret, second.Setup().Secret)
	})

	t.Run("propagates setup failure", func(t *testing.T) {
		_, err := NewWizard(failingBackend{})
		assert.Error(t, err)
	})
}

func TestWizard_Transitions(t *testing.T) {
	backend := &fakeBackend{backupCodes: []string{"AAAA1111"}}
	w, err := NewWizard(backend)
	require.NoError(t, err)

	w.Advance()
	assert.Equal(t, StepAwaitingCode, w.Step())

	// Advance is a no-op outside AwaitingScan.
	w.Advance()
	assert.Equal(t, StepAwaitingCode, w.Step())

	w.Back()
	assert.Equal(t, StepAwaitingScan, w.Step())

	// Back is a no-op outside AwaitingCode.
	w.Back()
	assert.Equal(t, StepAwaitingScan, w.Step())
}

func TestWizard_Submit(t *testing.T) {
	t.Run("rejects anything that is not six digits without calling the backend", func(t *testing.T) {
		backend := &fakeBackend{}
		w, err := NewWizard(backend)
		require.NoError(t, err)
		w.Advance()

		for _, input := range []string{"", "12345", "1234567", "abcdef"} {
			err := w.Submit(input)
			assert.ErrorIs(t, err, ErrCodeFormat, "input %q", input)
		}
		assert.Zero(t, backend.enableCalls)
		assert.Equal(t, StepAwaitingCode, w.Step())
	})

	t.Run("strips non-digits before submitting", func(t *testing.T) {
		backend := &fakeBackend{backupCodes: []string{"AAAA1111"}}
		w, err := NewWizard(backend)
		require.NoError(t, err)
		w.Advance()

		require.NoError(t, w.Submit("123 456"))
		assert.Equal(t, "123456", backend.lastCode)
		assert.Equal(t, "SECRET-1", backend.lastSecret)
	})

	t.Run("completes and exposes backup codes exactly as returned", func(t *testing.T) {
		backend := &fakeBackend{backupCodes: []string{"AAAA1111", "BBBB2222"}}
		w, err := NewWizard(backend)
		require.NoError(t, err)
		w.Advance()

		require.NoError(t, w.Submit("123456"))
		assert.Equal(t, StepComplete, w.Step())
		assert.Equal(t, []string{"AAAA1111", "BBBB2222"}, w.BackupCodes())
	})

	t.Run("a rejected code keeps the wizard resubmittable", func(t *testing.T) {
		backend := &fakeBackend{enableErr: api.ErrInvalidCode}
		w, err := NewWizard(backend)
		require.NoError(t, err)
		w.Advance()

		err = w.Submit("123456")
		assert.ErrorIs(t, err, api.ErrInvalidCode)
		assert.Equal(t, StepAwaitingCode, w.Step())

		backend.enableErr = nil
		backend.backupCodes = []string{"AAAA1111"}
		require.NoError(t, w.Submit("654321"))
		assert.Equal(t, StepComplete, w.Step())
	})

	t.Run("refuses submission outside AwaitingCode", func(t *testing.T) {
		backend := &fakeBackend{}
		w, err := NewWizard(backend)
		require.NoError(t, err)

		assert.Error(t, w.Submit("123456"))
		assert.Zero(t, backend.enableCalls)
	})
}

type failingBackend struct{}

func (failingBackend) TwoFactorSetupMaterial() (*api.TwoFactorSetup, error) {
	return nil, errors.New("setup unavailable")
}

func (failingBackend) EnableTwoFactor(code, secret string) ([]string, error) {
	return nil, errors.New("unreachable")
}
