package cmd

import (
	"fmt"

	"github.com/chefstream/cli/internal/output"
	"github.com/spf13/cobra"
)

var flagSave bool

var extractCmd = &cobra.Command{
	Use:   "extract <video-url>",
	Short: "Extract a recipe from a cooking video",
	Long: `Send a video URL to the AI extractor and print the resulting
recipe. Nothing is saved unless --save is given.

  chefstream extract https://youtube.com/watch?v=...
  chefstream extract --save https://youtube.com/watch?v=...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Saving needs a signed-in user; fail before the slow
		// extraction call, not after.
		if flagSave {
			if err := requireAuth(); err != nil {
				return err
			}
		}

		fmt.Println("Extracting recipe... this can take a minute.")

		recipe, err := apiClient.ExtractRecipe(args[0])
		if err != nil {
			return fmt.Errorf("extracting recipe: %w", err)
		}

		if flagSave {
			saved, err := apiClient.SaveRecipe(recipe)
			if err != nil {
				return fmt.Errorf("saving recipe: %w", err)
			}
			recipe = saved
			fmt.Printf("Saved to your cookbook as recipe %d.\n\n", saved.ID)
		}

		if flagJSON {
			output.JSON(recipe)
			return nil
		}
		output.RecipeDetail(*recipe)
		return nil
	},
}

func init() {
	extractCmd.Flags().BoolVar(&flagSave, "save", false, "Save the extracted recipe to your cookbook")
	rootCmd.AddCommand(extractCmd)
}
