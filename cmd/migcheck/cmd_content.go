package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crosscopy/migcheck/pkg/contentcheck"
)

var (
	contentPatterns  []string
	contentDescribes []string
	contentLabel     string
)

var contentCmd = &cobra.Command{
	Use:   "content <path>",
	Short: "Check that a file's content matches required patterns",
	Args:  cobra.ExactArgs(1),
	RunE:  runContentCheck,
}

func init() {
	contentCmd.Flags().StringArrayVar(&contentPatterns, "pattern", nil, "regex the content must match (repeatable)")
	contentCmd.Flags().StringArrayVar(&contentDescribes, "describe", nil, "description for the pattern at the same position (repeatable)")
	contentCmd.Flags().StringVar(&contentLabel, "label", "", "display label for the check")
	_ = contentCmd.MarkFlagRequired("pattern")
	rootCmd.AddCommand(contentCmd)
}

func runContentCheck(_ *cobra.Command, args []string) error {
	if len(contentDescribes) > len(contentPatterns) {
		return errors.New("more --describe values than --pattern values")
	}

	requirements := make([]contentcheck.Requirement, 0, len(contentPatterns))
	for i, pattern := range contentPatterns {
		description := fmt.Sprintf("matches %q", pattern)
		if i < len(contentDescribes) {
			description = contentDescribes[i]
		}
		requirements = append(requirements, contentcheck.Requirement{
			Pattern:     pattern,
			Description: description,
		})
	}

	c := &contentcheck.Check{
		Path:         args[0],
		Label:        contentLabel,
		Requirements: requirements,
		FS:           &contentcheck.RealFileSystem{},
	}

	return runCheck(c)
}
