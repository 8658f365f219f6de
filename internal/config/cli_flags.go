package config

import "github.com/spf13/cobra"

// RegisterFlags registers common CLI flags on the provided root command
func RegisterFlags(cmd *cobra.Command) {
	if cmd == nil {
		return
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("json", false, "Log in JSON format")
	cmd.PersistentFlags().String("site", "", "Schedule site root URL")
	cmd.PersistentFlags().StringP("term", "t", "", "Academic term: spring, summer or fall (default: inferred from date)")
	cmd.PersistentFlags().IntP("year", "y", 0, "Academic year (default: current year)")
	cmd.PersistentFlags().String("timeout", "30s", "Hard timeout for requests")
	cmd.PersistentFlags().String("user-agent", "", "Custom user agent string")
}
