package cmd

import (
	"fmt"
	"strings"

	"github.com/chefstream/cli/internal/output"
	"github.com/spf13/cobra"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [query]",
	Short: "Browse public recipes",
	Long: `Search recipes other users have published. Works without an
account.

  chefstream explore
  chefstream explore pasta carbonara`,
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		recipes, err := apiClient.ExploreRecipes(query)
		if err != nil {
			return fmt.Errorf("searching recipes: %w", err)
		}

		if flagJSON {
			output.JSON(recipes)
			return nil
		}
		output.RecipeTable(recipes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
