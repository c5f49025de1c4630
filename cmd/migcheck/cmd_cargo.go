package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crosscopy/migcheck/pkg/toolchain"
	"github.com/crosscopy/migcheck/pkg/version"
)

var cargoMin string

var cargoCmd = &cobra.Command{
	Use:   "cargo",
	Short: "Check that the cargo toolchain is installed",
	Args:  cobra.NoArgs,
	RunE:  runCargoCheck,
}

func init() {
	cargoCmd.Flags().StringVar(&cargoMin, "min", "", "minimum cargo version (inclusive)")
	rootCmd.AddCommand(cargoCmd)
}

func runCargoCheck(_ *cobra.Command, _ []string) error {
	c := &toolchain.Check{
		Name:   "cargo",
		Runner: &toolchain.RealRunner{},
	}

	if cargoMin != "" {
		minimum, err := version.Parse(cargoMin)
		if err != nil {
			return fmt.Errorf("invalid --min value: %w", err)
		}
		c.Min = &minimum
	}

	return runCheck(c)
}
