package cmd

import (
	"fmt"

	"github.com/chefstream/cli/internal/output"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		user := svc.CurrentUser()
		if user == nil {
			return fmt.Errorf("session expired — run \"chefstream login\" again")
		}

		if flagJSON {
			output.JSON(user)
			return nil
		}

		output.UserInfo(*user)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
