package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crosscopy/migcheck/pkg/checklist"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Args = normalizeArgs(os.Args, os.Stat)

	if err := rootCmd.Execute(); err != nil {
		// Check failures already printed their report; everything else
		// (bad flags, unreadable checklist files) still needs a message.
		if !errors.Is(err, ErrCheckFailed) && !errors.Is(err, checklist.ErrNotProjectRoot) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "migcheck",
	Short:         "Post-migration checks for the CrossCopy network layer",
	Long:          "Migcheck verifies that the CrossCopy migration from WebSocket to libp2p is complete.\nInvoked without arguments it runs the built-in checklist against the current directory.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// normalizeArgs rewrites the command line so that a bare invocation runs
// the built-in checklist, and "migcheck <dir>" verifies that directory.
func normalizeArgs(args []string, stat func(string) (fs.FileInfo, error)) []string {
	if len(args) == 1 {
		return append(args, "verify")
	}

	first := args[1]
	if strings.HasPrefix(first, "-") || isSubcommand(first) {
		return args
	}

	if info, err := stat(first); err == nil && info.IsDir() {
		rewritten := []string{args[0], "verify", "--dir", first}
		return append(rewritten, args[2:]...)
	}

	return args
}

func isSubcommand(name string) bool {
	known := []string{"verify", "exists", "content", "json", "run", "cargo", "version", "help", "completion"}
	for _, subcmd := range known {
		if name == subcmd {
			return true
		}
	}
	return false
}
