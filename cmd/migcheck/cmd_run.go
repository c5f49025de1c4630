package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crosscopy/migcheck/pkg/checkfile"
)

var (
	runFile string
	runDir  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run checks from a " + checkfile.DefaultName + " file",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runFile, "file", "", "path to the checklist file (default: search up from the current directory)")
	runCmd.Flags().StringVar(&runDir, "dir", ".", "directory the checks run against")
	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := checkfile.Find(wd, runFile)
	if err != nil {
		return err
	}

	f, err := checkfile.Load(path)
	if err != nil {
		return err
	}

	passed, err := f.Runner(runDir).Run()
	if err != nil {
		return err
	}
	if !passed {
		return ErrCheckFailed
	}
	return nil
}
