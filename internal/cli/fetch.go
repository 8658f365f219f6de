package cli

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/campus-tools/schedfetch/pkg/models"
)

var fetchOutput string

var fetchCmd = &cobra.Command{
	Use:   "fetch [subject [course]]",
	Short: "Fetch the nested schedule index",
	Long: `Fetch sections for one course, for every course of one or more subjects,
or for the entire term when no arguments are given. The result is the nested
mapping subject -> course -> CRN -> section.`,
	Example: `  # One course, no enumeration requests
  schedfetch fetch CS 493

  # Every course of one subject
  schedfetch fetch CS

  # The whole term (shows progress per subject)
  schedfetch fetch -o schedule.json`,
	Args: cobra.MaximumNArgs(2),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "File path to save output")
}

func runFetch(cmd *cobra.Command, args []string) error {
	a := GetApp()
	ctx := cmd.Context()

	var (
		idx models.ScheduleIndex
		err error
	)

	switch len(args) {
	case 2:
		idx, err = a.Fetcher.FetchOne(ctx, args[0], args[1])
	case 1:
		idx, err = a.Fetcher.FetchSubjects(ctx, args[:1])
	default:
		idx, err = fetchAllWithProgress(cmd)
	}
	if err != nil {
		return err
	}

	if fetchOutput != "" {
		return saveOutput(idx, fetchOutput)
	}
	return printJSON(idx)
}

// fetchAllWithProgress walks the term subject by subject so a progress bar
// can track the long-running full fetch.
func fetchAllWithProgress(cmd *cobra.Command) (models.ScheduleIndex, error) {
	a := GetApp()
	ctx := cmd.Context()

	subjects, err := a.Fetcher.SubjectList(ctx)
	if err != nil {
		return nil, err
	}

	bar := progressbar.NewOptions(len(subjects),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("fetching subjects"),
		progressbar.OptionClearOnFinish(),
	)

	idx := make(models.ScheduleIndex, len(subjects))
	for _, subject := range subjects {
		part, err := a.Fetcher.FetchSubjects(ctx, []string{subject})
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", subject, err)
		}
		idx.Merge(part)
		bar.Add(1)
	}
	bar.Finish()

	return idx, nil
}
