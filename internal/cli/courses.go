package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var coursesOutput string

var coursesCmd = &cobra.Command{
	Use:   "courses <subject>",
	Short: "List the course numbers of a subject",
	Example: `  # Courses offered by the CS department
  schedfetch courses CS`,
	Args: cobra.ExactArgs(1),
	RunE: runCourses,
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	coursesCmd.Flags().StringVarP(&coursesOutput, "output", "o", "", "File path to save output")
}

func runCourses(cmd *cobra.Command, args []string) error {
	a := GetApp()

	courses, err := a.Fetcher.CourseList(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if coursesOutput != "" {
		return saveOutput(courses, coursesOutput)
	}
	for _, course := range courses {
		fmt.Println(course)
	}
	return nil
}
