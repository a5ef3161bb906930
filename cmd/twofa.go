package cmd

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/chefstream/cli/internal/output"
	"github.com/chefstream/cli/internal/twofa"
	"github.com/spf13/cobra"
)

var (
	flagQROut      string
	flagAutoTOTP   bool
	flag2FAConfirm bool
)

var twoFACmd = &cobra.Command{
	Use:   "2fa",
	Short: "Manage two-factor authentication",
}

var twoFASetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Enable two-factor authentication",
	Long: `Walks through 2FA enrollment: add the secret to your
authenticator app, verify a code, and store the backup codes it
prints somewhere safe.

  chefstream 2fa setup
  chefstream 2fa setup --qr-out qr.png    Also save the QR code image
  chefstream 2fa setup --totp             Compute the code locally (dev servers)`,
	RunE: runTwoFASetup,
}

var twoFADisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Turn off two-factor authentication",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		if !flag2FAConfirm && !confirm("Disable two-factor authentication?") {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := svc.DisableTwoFactor(); err != nil {
			return fmt.Errorf("disabling 2FA: %w", err)
		}
		fmt.Println("Two-factor authentication disabled.")
		return nil
	},
}

func runTwoFASetup(cmd *cobra.Command, args []string) error {
	if err := requireAuth(); err != nil {
		return err
	}

	wizard, err := twofa.NewWizard(svc)
	if err != nil {
		return err
	}
	if err := runSetupWizard(wizard, bufio.NewReader(os.Stdin)); err != nil {
		return err
	}

	fmt.Println("Two-factor authentication enabled.")
	fmt.Println()
	if codes := wizard.BackupCodes(); len(codes) > 0 {
		output.BackupCodes(codes)
	}
	return nil
}

// runSetupWizard drives the enrollment loop. An interactive user can
// retry a rejected code as often as they like; with --totp there is
// nobody to re-prompt, so a rejected code aborts the run instead of
// recomputing and resubmitting forever.
func runSetupWizard(wizard *twofa.Wizard, reader *bufio.Reader) error {
	for wizard.Step() != twofa.StepComplete {
		switch wizard.Step() {
		case twofa.StepAwaitingScan:
			if err := showSetupMaterial(wizard); err != nil {
				return err
			}
			if _, err := promptLine(reader, "Press Enter once you've added it to your authenticator... "); err != nil {
				return err
			}
			wizard.Advance()

		case twofa.StepAwaitingCode:
			input, err := codeInput(reader, wizard)
			if err != nil {
				return err
			}
			if strings.EqualFold(input, "back") {
				wizard.Back()
				continue
			}
			if err := wizard.Submit(input); err != nil {
				if flagAutoTOTP {
					return fmt.Errorf("server rejected the locally computed code: %w", err)
				}
				fmt.Printf("Invalid verification code. Try again, or type \"back\" to re-show the secret.\n")
			}
		}
	}
	return nil
}

func showSetupMaterial(wizard *twofa.Wizard) error {
	setup := wizard.Setup()
	fmt.Println("Add this account to your authenticator app.")
	fmt.Printf("\n  Secret:      %s\n", setup.Secret)
	if setup.OTPAuthURL != "" {
		fmt.Printf("  otpauth URL: %s\n", setup.OTPAuthURL)
	}
	fmt.Println()

	if flagQROut != "" && setup.QRCodeBase64 != "" {
		if err := writeQRCode(setup.QRCodeBase64, flagQROut); err != nil {
			return fmt.Errorf("writing QR code: %w", err)
		}
		fmt.Printf("QR code written to %s\n\n", flagQROut)
	}
	return nil
}

func codeInput(reader *bufio.Reader, wizard *twofa.Wizard) (string, error) {
	if flagAutoTOTP {
		code, err := twofa.CurrentCode(wizard.Setup().Secret)
		if err != nil {
			return "", fmt.Errorf("computing TOTP code: %w", err)
		}
		fmt.Printf("Using locally computed code %s\n", code)
		return code, nil
	}
	return promptLine(reader, "6-digit code from your app: ")
}

// writeQRCode decodes the backend's data-URL PNG and writes it to path.
func writeQRCode(dataURL, path string) error {
	b64 := dataURL
	if idx := strings.Index(b64, ","); idx >= 0 {
		b64 = b64[idx+1:]
	}
	png, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return fmt.Errorf("decoding image: %w", err)
	}
	return os.WriteFile(path, png, 0600)
}

func init() {
	twoFASetupCmd.Flags().StringVar(&flagQROut, "qr-out", "", "Write the QR code PNG to this file")
	twoFASetupCmd.Flags().BoolVar(&flagAutoTOTP, "totp", false, "Compute the verification code locally from the secret")
	twoFADisableCmd.Flags().BoolVarP(&flag2FAConfirm, "yes", "y", false, "Skip confirmation prompt")
	twoFACmd.AddCommand(twoFASetupCmd)
	twoFACmd.AddCommand(twoFADisableCmd)
	rootCmd.AddCommand(twoFACmd)
}
