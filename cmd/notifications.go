package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications <on|off>",
	Short: "Toggle security notification emails",
	Long: `Turn emails about new sign-ins and security changes on or off.

  chefstream notifications on
  chefstream notifications off`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		enabled := args[0] == "on"
		if err := svc.ToggleSecurityNotifications(enabled); err != nil {
			return err
		}

		if enabled {
			fmt.Println("Security notifications enabled.")
		} else {
			fmt.Println("Security notifications disabled.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notificationsCmd)
}
