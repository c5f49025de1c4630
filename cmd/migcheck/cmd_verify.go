package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crosscopy/migcheck/pkg/checklist"
	"github.com/crosscopy/migcheck/pkg/output"
	"github.com/crosscopy/migcheck/pkg/toolchain"
	"github.com/crosscopy/migcheck/pkg/version"
)

var (
	verifyDir       string
	verifyToolchain bool
	verifyMinCargo  string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the built-in CrossCopy migration checklist",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyDir, "dir", ".", "project root to verify")
	verifyCmd.Flags().BoolVar(&verifyToolchain, "toolchain", false, "also verify the cargo toolchain")
	verifyCmd.Flags().StringVar(&verifyMinCargo, "min-cargo", "", "minimum cargo version (implies --toolchain)")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, _ []string) error {
	toolchainOK := true
	if verifyToolchain || verifyMinCargo != "" {
		c := &toolchain.Check{Name: "cargo", Runner: &toolchain.RealRunner{}}
		if verifyMinCargo != "" {
			minimum, err := version.Parse(verifyMinCargo)
			if err != nil {
				return fmt.Errorf("invalid --min-cargo value: %w", err)
			}
			c.Min = &minimum
		}

		result := c.Run()
		output.PrintResult(result)
		toolchainOK = result.OK()
	}

	passed, err := checklist.CrossCopy(verifyDir).Run()
	if err != nil {
		return err
	}
	if !passed || !toolchainOK {
		return ErrCheckFailed
	}
	return nil
}
