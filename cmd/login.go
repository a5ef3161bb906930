package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/chefstream/cli/internal/api"
	"github.com/chefstream/cli/internal/config"
	"github.com/chefstream/cli/internal/twofa"
	"github.com/spf13/cobra"
)

var (
	flagLoginEmail string
	flagGoogle     bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with your ChefStream server",
	Long: `Sign in with email and password. Accounts with two-factor
authentication enabled are prompted for their 6-digit code.

  chefstream login
  chefstream login --email chef@example.com
  chefstream login --google           Print the Google sign-in URL`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&flagLoginEmail, "email", "", "Email address (prompted if omitted)")
	loginCmd.Flags().BoolVar(&flagGoogle, "google", false, "Print the Google OAuth sign-in URL and exit")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	if flagGoogle {
		// Browser-only flow: the backend redirects to Google and back.
		fmt.Println("Open this URL in your browser to sign in with Google:")
		fmt.Printf("  %s\n", apiClient.GoogleLoginURL())
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	email := flagLoginEmail
	if email == "" {
		var err error
		email, err = promptLine(reader, "Email: ")
		if err != nil {
			return err
		}
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}

	result, err := apiClient.LoginWithEmail(email, password)
	if err != nil {
		return fmt.Errorf("invalid email or password")
	}

	var auth api.Authenticated
	switch r := result.(type) {
	case api.Authenticated:
		auth = r
	case api.ChallengeRequired:
		auth, err = completeChallenge(reader, r)
		if err != nil {
			return err
		}
	}

	cfg.Token = auth.Token
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// Fetch and display user info.
	authClient := api.NewClient(cfg.ServerURL, auth.Token)
	if user, _ := authClient.CurrentUser(); user != nil {
		name := user.Email
		if user.FullName != nil && *user.FullName != "" {
			name = *user.FullName + " (" + user.Email + ")"
		}
		fmt.Printf("Logged in as %s\n", name)
	} else {
		fmt.Println("Logged in successfully.")
	}
	return nil
}

// completeChallenge finishes a 2FA-gated login. Invalid codes can be
// retried while the challenge token is still valid.
func completeChallenge(reader *bufio.Reader, challenge api.ChallengeRequired) (api.Authenticated, error) {
	fmt.Println("Two-factor authentication is enabled for this account.")
	for {
		input, err := promptLine(reader, "6-digit code: ")
		if err != nil {
			return api.Authenticated{}, err
		}
		code := twofa.SanitizeCode(input)
		if !twofa.ValidCode(code) {
			fmt.Println("Please enter exactly 6 digits.")
			continue
		}
		auth, err := apiClient.VerifyTwoFactor(code, challenge.ChallengeToken)
		if err != nil {
			fmt.Println("Invalid verification code. Try again, or Ctrl-C to abort.")
			continue
		}
		return auth, nil
	}
}
