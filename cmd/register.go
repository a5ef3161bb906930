package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagRegisterEmail string
	flagRegisterName  string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new ChefStream account",
	Long: `Create an account with email and password, then sign in with
"chefstream login".

  chefstream register
  chefstream register --email chef@example.com --name "Julia C."`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)

		email := flagRegisterEmail
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
		repeat, err := promptPassword("Repeat password: ")
		if err != nil {
			return err
		}
		if password != repeat {
			return fmt.Errorf("passwords do not match")
		}

		user, err := apiClient.Register(email, password, flagRegisterName)
		if err != nil {
			return fmt.Errorf("an error occurred during registration")
		}

		fmt.Printf("Account created for %s. Run \"chefstream login\" to sign in.\n", user.Email)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&flagRegisterEmail, "email", "", "Email address (prompted if omitted)")
	registerCmd.Flags().StringVar(&flagRegisterName, "name", "", "Full name (optional)")
	rootCmd.AddCommand(registerCmd)
}
