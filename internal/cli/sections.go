package cli

import (
	"github.com/spf13/cobra"
)

var sectionsOutput string

var sectionsCmd = &cobra.Command{
	Use:   "sections <subject> <course>",
	Short: "Show the sections of one course, keyed by CRN",
	Example: `  # Sections of CS 493
  schedfetch sections CS 493

  # Save to a file
  schedfetch sections CS 493 -o cs493.json`,
	Args: cobra.ExactArgs(2),
	RunE: runSections,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
	sectionsCmd.Flags().StringVarP(&sectionsOutput, "output", "o", "", "File path to save output")
}

func runSections(cmd *cobra.Command, args []string) error {
	a := GetApp()

	sections, err := a.Fetcher.SectionList(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	if sectionsOutput != "" {
		return saveOutput(sections, sectionsOutput)
	}
	return printJSON(sections)
}
