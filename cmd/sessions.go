package cmd

import (
	"fmt"

	"github.com/chefstream/cli/internal/api"
	"github.com/chefstream/cli/internal/output"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var flagYes bool

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage your signed-in sessions",
}

var sessionsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List active sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		sessions, err := svc.Sessions()
		if err != nil {
			return fmt.Errorf("listing sessions: %w", err)
		}

		if flagJSON {
			output.JSON(sessions)
			return nil
		}

		output.SessionTable(sessions)
		if len(sessions) > 1 {
			fmt.Println("\nUse \"chefstream sessions revoke-others\" to sign out everywhere else.")
		}
		return nil
	},
}

var sessionsRevokeCmd = &cobra.Command{
	Use:   "revoke <session-id>",
	Short: "Revoke a single session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		id := args[0]
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("%q is not a session id — see \"chefstream sessions ls\"", id)
		}

		// The session serving this request cannot be revoked here;
		// that is what logout is for.
		sessions, err := svc.Sessions()
		if err != nil {
			return fmt.Errorf("listing sessions: %w", err)
		}
		if isCurrentSession(sessions, id) {
			return fmt.Errorf("refusing to revoke the current session — use \"chefstream logout\"")
		}

		if err := svc.RevokeSession(id); err != nil {
			return fmt.Errorf("revoking session: %w", err)
		}

		fmt.Println("Session revoked.")
		return showRefreshedSessions()
	},
}

var sessionsRevokeOthersCmd = &cobra.Command{
	Use:   "revoke-others",
	Short: "Sign out every session except this one",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		sessions, err := svc.Sessions()
		if err != nil {
			return fmt.Errorf("listing sessions: %w", err)
		}
		if !hasOtherSessions(sessions) {
			fmt.Println("No other sessions to revoke.")
			return nil
		}

		if !flagYes && !confirm(fmt.Sprintf("Sign out %d other session(s)?", len(sessions)-1)) {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := svc.RevokeOtherSessions(); err != nil {
			return fmt.Errorf("revoking sessions: %w", err)
		}

		fmt.Println("Other sessions revoked.")
		return showRefreshedSessions()
	},
}

// isCurrentSession reports whether id names the session serving this
// request. Revoking it is never offered.
func isCurrentSession(sessions []api.Session, id string) bool {
	for _, s := range sessions {
		if s.ID == id && s.IsCurrent {
			return true
		}
	}
	return false
}

// hasOtherSessions reports whether revoke-others has anything to do.
func hasOtherSessions(sessions []api.Session) bool {
	return len(sessions) > 1
}

// showRefreshedSessions re-reads the (invalidated) session list so the
// user sees the post-mutation state.
func showRefreshedSessions() error {
	sessions, err := svc.Sessions()
	if err != nil {
		return fmt.Errorf("refreshing sessions: %w", err)
	}
	if flagJSON {
		output.JSON(sessions)
		return nil
	}
	output.SessionTable(sessions)
	return nil
}

func init() {
	sessionsRevokeOthersCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompt")
	sessionsCmd.AddCommand(sessionsLsCmd)
	sessionsCmd.AddCommand(sessionsRevokeCmd)
	sessionsCmd.AddCommand(sessionsRevokeOthersCmd)
	rootCmd.AddCommand(sessionsCmd)
}
