package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/campus-tools/schedfetch/internal/ui"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show portal metadata for the resolved term",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	a := GetApp()

	info, err := a.Fetcher.PortalInfo(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s %s\n", ui.Bold("Term:"), info.Term, strconv.Itoa(info.Year))
	fmt.Printf("%s  %s\n", ui.Bold("Portal:"), ui.Dim(info.URL))
	if info.Title != "" {
		fmt.Printf("%s  %s\n", ui.Bold("Title:"), info.Title)
	}
	fmt.Printf("%s  %d\n", ui.Bold("Subject links:"), len(info.SubjectLinks))
	return nil
}
