package cmd

import (
	"bufio"
	"strings"
	"testing"

	"github.com/chefstream/cli/internal/api"
	"github.com/chefstream/cli/internal/twofa"
)

// testSecret is a valid base32 TOTP secret.
const testSecret = "JBSWY3DPEHPK3PXP"

type stubEnrollment struct {
	enable      func(code, secret string) ([]string, error)
	enableCalls int
}

func (s *stubEnrollment) TwoFactorSetupMaterial() (*api.TwoFactorSetup, error) {
	return &api.TwoFactorSetup{
		Secret:     testSecret,
		OTPAuthURL: "otpauth://totp/ChefStream:test@example.com?secret=" + testSecret,
	}, nil
}

func (s *stubEnrollment) EnableTwoFactor(code, secret string) ([]string, error) {
	s.enableCalls++
	return s.enable(code, secret)
}

func TestRunSetupWizardAutoTOTP(t *testing.T) {
	flagAutoTOTP = true
	defer func() { flagAutoTOTP = false }()

	t.Run("a rejected code aborts instead of retrying", func(t *testing.T) {
		backend := &stubEnrollment{
			enable: func(code, secret string) ([]string, error) {
				return nil, api.ErrInvalidCode
			},
		}
		wizard, err := twofa.NewWizard(backend)
		if err != nil {
			t.Fatalf("NewWizard: %v", err)
		}

		// One Enter to leave the scan step; the code itself is
		// computed, not read.
		reader := bufio.NewReader(strings.NewReader("\n"))
		if err := runSetupWizard(wizard, reader); err == nil {
			t.Fatal("expected an error when the server rejects the code")
		}
		if backend.enableCalls != 1 {
			t.Errorf("enable called %d times, want exactly 1", backend.enableCalls)
		}
	})

	t.Run("an accepted code completes enrollment", func(t *testing.T) {
		backend := &stubEnrollment{
			enable: func(code, secret string) ([]string, error) {
				if secret != testSecret {
					t.Errorf("enable got secret %q, want %q", secret, testSecret)
				}
				return []string{"aaaa-bbbb", "cccc-dddd"}, nil
			},
		}
		wizard, err := twofa.NewWizard(backend)
		if err != nil {
			t.Fatalf("NewWizard: %v", err)
		}

		reader := bufio.NewReader(strings.NewReader("\n"))
		if err := runSetupWizard(wizard, reader); err != nil {
			t.Fatalf("runSetupWizard: %v", err)
		}
		if wizard.Step() != twofa.StepComplete {
			t.Errorf("wizard at step %d, want complete", wizard.Step())
		}
		if len(wizard.BackupCodes()) != 2 {
			t.Errorf("got %d backup codes, want 2", len(wizard.BackupCodes()))
		}
	})
}

func TestRunSetupWizardInteractiveRetries(t *testing.T) {
	backend := &stubEnrollment{}
	backend.enable = func(code, secret string) ([]string, error) {
		if backend.enableCalls == 1 {
			return nil, api.ErrInvalidCode
		}
		return []string{"aaaa-bbbb"}, nil
	}
	wizard, err := twofa.NewWizard(backend)
	if err != nil {
		t.Fatalf("NewWizard: %v", err)
	}

	// Enter past the scan step, one rejected code, one accepted.
	reader := bufio.NewReader(strings.NewReader("\n111111\n222222\n"))
	if err := runSetupWizard(wizard, reader); err != nil {
		t.Fatalf("runSetupWizard: %v", err)
	}
	if backend.enableCalls != 2 {
		t.Errorf("enable called %d times, want 2", backend.enableCalls)
	}
	if wizard.Step() != twofa.StepComplete {
		t.Errorf("wizard at step %d, want complete", wizard.Step())
	}
}
