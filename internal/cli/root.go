package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/campus-tools/schedfetch/internal/app"
	"github.com/campus-tools/schedfetch/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "schedfetch",
	Short:   "Fetch university course schedules as structured data",
	Long:    `Schedfetch retrieves course-schedule pages for an academic term and parses them into subject, course and section records.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	config.RegisterFlags(rootCmd)

	// Initialize the application before running commands (not for -h/help).
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if GetApp() != nil {
			return nil
		}

		cfg, err := config.Load(rootCmd)
		if err != nil {
			return err
		}

		appCtx, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		SetApp(appCtx)
		return nil
	}

	// Ensure app is closed after command runs
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		appCtx := GetApp()
		if appCtx == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), appCtx.Config.HTTPTimeout)
		defer cancel()
		if err := appCtx.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Error during shutdown")
		}
		SetApp(nil)
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true
}
