package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chefstream/cli/internal/api"
	"github.com/chefstream/cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagJSON      bool
	flagServerURL string
	flagVerbose   bool

	cfg       *config.Config
	apiClient *api.Client
	svc       *api.Service
)

var rootCmd = &cobra.Command{
	Use:   "chefstream",
	Short: "ChefStream CLI — your cookbook from the terminal",
	Long: `ChefStream CLI extracts recipes from cooking videos and manages
your cookbook and account security without leaving the terminal.

Get started:
  chefstream login                    Sign in with email and password
  chefstream extract <video-url>      Extract a recipe from a video
  chefstream recipes ls               List your saved recipes
  chefstream sessions ls              See where you're signed in`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagServerURL != "" {
			cfg.ServerURL = flagServerURL
		}
		apiClient = api.NewClient(cfg.ServerURL, cfg.Token)
		if flagVerbose {
			apiClient.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}))
		}
		svc = api.NewService(apiClient)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagServerURL, "server", "", "Override server URL (default: from config or http://localhost:8000)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log API requests to stderr")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// requireAuth is a helper that returns an error if no token is configured.
func requireAuth() error {
	if cfg == nil || !cfg.HasToken() {
		return fmt.Errorf("not authenticated — run \"chefstream login\" first")
	}
	return nil
}
