package cmd

import (
	"fmt"

	"github.com/chefstream/cli/internal/config"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Server-side logout is best effort; local credentials are
		// cleared no matter what.
		apiClient.Logout()

		if err := config.ClearToken(cfg); err != nil {
			return fmt.Errorf("clearing credentials: %w", err)
		}
		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
