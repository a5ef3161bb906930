package cmd

import (
	"fmt"
	"strconv"

	"github.com/chefstream/cli/internal/output"
	"github.com/spf13/cobra"
)

var flagRecipeForce bool

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Manage your cookbook",
}

var recipesLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List your saved recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		recipes, err := apiClient.Recipes()
		if err != nil {
			return fmt.Errorf("listing recipes: %w", err)
		}

		if flagJSON {
			output.JSON(recipes)
			return nil
		}
		output.RecipeTable(recipes)
		return nil
	},
}

var recipesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recipe's ingredients and steps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := recipeID(args[0])
		if err != nil {
			return err
		}

		recipe, err := apiClient.Recipe(id)
		if err != nil {
			return fmt.Errorf("fetching recipe: %w", err)
		}

		if flagJSON {
			output.JSON(recipe)
			return nil
		}
		output.RecipeDetail(*recipe)
		return nil
	},
}

var recipesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a recipe from your cookbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireAuth(); err != nil {
			return err
		}

		id, err := recipeID(args[0])
		if err != nil {
			return err
		}

		recipe, err := apiClient.Recipe(id)
		if err != nil {
			return fmt.Errorf("fetching recipe: %w", err)
		}

		if !flagRecipeForce && !confirm(fmt.Sprintf("Delete %q? This cannot be undone.", recipe.Title)) {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := apiClient.DeleteRecipe(id); err != nil {
			return fmt.Errorf("deleting recipe: %w", err)
		}
		fmt.Printf("Deleted: %s\n", recipe.Title)
		return nil
	},
}

var recipesPublishCmd = &cobra.Command{
	Use:   "publish <id>",
	Short: "Make a recipe publicly visible",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setPublic(args[0], true) },
}

var recipesUnpublishCmd = &cobra.Command{
	Use:   "unpublish <id>",
	Short: "Make a recipe private again",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setPublic(args[0], false) },
}

func setPublic(arg string, public bool) error {
	if err := requireAuth(); err != nil {
		return err
	}

	id, err := recipeID(arg)
	if err != nil {
		return err
	}

	recipe, err := apiClient.SetRecipePublic(id, public)
	if err != nil {
		return fmt.Errorf("updating recipe: %w", err)
	}

	state := "private"
	if recipe.IsPublic {
		state = "public"
	}
	fmt.Printf("%s is now %s.\n", recipe.Title, state)
	return nil
}

func recipeID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%q is not a recipe id — see \"chefstream recipes ls\"", arg)
	}
	return id, nil
}

func init() {
	recipesRmCmd.Flags().BoolVarP(&flagRecipeForce, "force", "f", false, "Skip confirmation prompt")
	recipesCmd.AddCommand(recipesLsCmd)
	recipesCmd.AddCommand(recipesShowCmd)
	recipesCmd.AddCommand(recipesRmCmd)
	recipesCmd.AddCommand(recipesPublishCmd)
	recipesCmd.AddCommand(recipesUnpublishCmd)
	rootCmd.AddCommand(recipesCmd)
}
