// Package twofa drives two-factor enrollment: a three-step linear
// wizard over the security endpoints.
package twofa

import (
	"errors"
	"fmt"

	"github.com/chefstream/cli/internal/api"
)

// Step is the wizard's position.
type Step int

const (
	// StepAwaitingScan shows the secret/QR until the user confirms
	// their authenticator has it.
	StepAwaitingScan Step = iota + 1
	// StepAwaitingCode collects the six-digit verification code.
	StepAwaitingCode
	// StepComplete holds the one-time backup codes. Terminal.
	StepComplete
)

// ErrCodeFormat rejects submissions that are not exactly six digits
// before any request is made.
var ErrCodeFormat = errors.New("code must be exactly 6 digits")

// Backend is the server surface the wizard needs. *api.Service
// satisfies it.
type Backend interface {
	TwoFactorSetupMaterial() (*api.TwoFactorSetup, error)
	EnableTwoFactor(code, secret string) ([]string, error)
}

// Wizard is one enrollment attempt. Setup material is fetched fresh in
// NewWizard and discarded with the Wizard; backup codes live only in
// the Wizard's memory and are gone once the process exits.
type Wizard struct {
	backend Backend
	step    Step
	setup   *api.TwoFactorSetup
	backup  []string
}

// NewWizard starts an enrollment attempt, fetching fresh setup
// material from the backend. Material is never reused across attempts:
// every NewWizard call hits the setup endpoint again.
func NewWizard(backend Backend) (*Wizard, error) {
	setup, err := backend.TwoFactorSetupMaterial()
	if err != nil {
		return nil, fmt.Errorf("fetching 2FA setup material: %w", err)
	}
	return &Wizard{
		backend: backend,
		step:    StepAwaitingScan,
		setup:   setup,
	}, nil
}

// Step returns the wizard's current step.
func (w *Wizard) Step() Step { return w.step }

// Setup exposes the enrollment material for display (secret, otpauth
// URL, QR payload).
func (w *Wizard) Setup() *api.TwoFactorSetup { return w.setup }

// Advance moves from AwaitingScan to AwaitingCode. The user's claim to
// have scanned the code is taken at face value; no validation happens
// until Submit.
func (w *Wizard) Advance() {
	if w.step == StepAwaitingScan {
		w.step = StepAwaitingCode
	}
}

// Back returns from AwaitingCode to AwaitingScan so the secret can be
// re-displayed. The same material stays in play; only a new wizard
// fetches new material.
func (w *Wizard) Back() {
	if w.step == StepAwaitingCode {
		w.step = StepAwaitingScan
	}
}

// Submit verifies the code against the pending secret. Input is
// sanitized to digits first; anything that isn't exactly six digits
// fails with ErrCodeFormat without touching the network. A rejected
// code leaves the wizard in AwaitingCode so the user can retry; on
// success the wizard is Complete and the backup codes are available.
func (w *Wizard) Submit(input string) error {
	if w.step != StepAwaitingCode {
		return fmt.Errorf("not awaiting a code")
	}
	code := SanitizeCode(input)
	if !ValidCode(code) {
		return ErrCodeFormat
	}
	codes, err := w.backend.EnableTwoFactor(code, w.setup.Secret)
	if err != nil {
		return err
	}
	w.backup = codes
	w.step = StepComplete
	return nil
}

// BackupCodes returns the one-time recovery codes after completion.
// They are shown once and never persisted by the client.
func (w *Wizard) BackupCodes() []string { return w.backup }
