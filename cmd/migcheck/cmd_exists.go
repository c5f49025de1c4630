package main

import (
	"github.com/spf13/cobra"

	"github.com/crosscopy/migcheck/pkg/existcheck"
)

var existsLabel string

var existsCmd = &cobra.Command{
	Use:   "exists <path>",
	Short: "Check that a file or directory exists",
	Args:  cobra.ExactArgs(1),
	RunE:  runExistsCheck,
}

func init() {
	existsCmd.Flags().StringVar(&existsLabel, "label", "", "display label for the check")
	rootCmd.AddCommand(existsCmd)
}

func runExistsCheck(_ *cobra.Command, args []string) error {
	c := &existcheck.Check{
		Path:  args[0],
		Label: existsLabel,
		FS:    &existcheck.RealFileSystem{},
	}

	return runCheck(c)
}
