package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/crosscopy/migcheck/pkg/jsoncheck"
)

var (
	jsonHasKey string
	jsonKey    string
	jsonExact  string
	jsonMatch  string
)

var jsonCmd = &cobra.Command{
	Use:   "json <file>",
	Short: "Validate a JSON file and check values",
	Args:  cobra.ExactArgs(1),
	RunE:  runJSONCheck,
}

func init() {
	jsonCmd.Flags().StringVar(&jsonHasKey, "has-key", "", "check that key exists (dot notation for nested)")
	jsonCmd.Flags().StringVar(&jsonKey, "key", "", "key to check value of (dot notation for nested)")
	jsonCmd.Flags().StringVar(&jsonExact, "exact", "", "exact value required (requires --key)")
	jsonCmd.Flags().StringVar(&jsonMatch, "match", "", "regex pattern for value (requires --key)")
	rootCmd.AddCommand(jsonCmd)
}

func runJSONCheck(_ *cobra.Command, args []string) error {
	if (jsonExact != "" || jsonMatch != "") && jsonKey == "" {
		return errors.New("--exact and --match require --key to be set")
	}

	c := &jsoncheck.Check{
		Path:   args[0],
		HasKey: jsonHasKey,
		Key:    jsonKey,
		Exact:  jsonExact,
		Match:  jsonMatch,
		FS:     &jsoncheck.RealFileSystem{},
	}

	return runCheck(c)
}
