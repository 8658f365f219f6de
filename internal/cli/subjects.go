package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var subjectsOutput string

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List every subject offered in the term",
	Example: `  # Subjects for the current term
  schedfetch subjects

  # Subjects for a specific term
  schedfetch subjects --term=fall --year=2026`,
	Args: cobra.NoArgs,
	RunE: runSubjects,
}

func init() {
	rootCmd.AddCommand(subjectsCmd)
	subjectsCmd.Flags().StringVarP(&subjectsOutput, "output", "o", "", "File path to save output")
}

func runSubjects(cmd *cobra.Command, args []string) error {
	a := GetApp()

	subjects, err := a.Fetcher.SubjectList(cmd.Context())
	if err != nil {
		return err
	}

	if subjectsOutput != "" {
		return saveOutput(subjects, subjectsOutput)
	}
	for _, subject := range subjects {
		fmt.Println(subject)
	}
	return nil
}
