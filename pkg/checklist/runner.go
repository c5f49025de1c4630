package checklist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/crosscopy/migcheck/pkg/output"
)

// ErrNotProjectRoot is returned when the marker file is absent,
// meaning the tool was started outside the expected project root.
var ErrNotProjectRoot = errors.New("marker file not found")

// Runner executes a checklist in order and aggregates the results.
// Checks are independent: a failure is reported and the run continues.
type Runner struct {
	Dir      string    // project root (default ".")
	Header   string    // report title, printed before anything runs
	Marker   string    // precondition file relative to Dir; empty disables the check
	Sections []Section // numbered in print order
	Summary  *Summary  // all-passed banner; nil prints a plain success line
}

// Run executes every check and prints the report. It returns true only
// if all checks passed. ErrNotProjectRoot is returned without running
// any check when the marker file is missing.
func (r *Runner) Run() (bool, error) {
	dir := r.Dir
	if dir == "" {
		dir = "."
	}

	if r.Header != "" {
		output.PrintHeader(r.Header)
	}

	if r.Marker != "" {
		if _, err := os.Stat(filepath.Join(dir, r.Marker)); err != nil {
			output.Warnf("%s not found: run from the project root", r.Marker)
			return false, fmt.Errorf("%w: %s", ErrNotProjectRoot, r.Marker)
		}
	}

	allPassed := true
	for i, section := range r.Sections {
		output.PrintSectionTitle(i+1, section.Title)
		for _, item := range section.Items {
			result := item.checker(dir).Run()
			output.PrintResult(result)
			allPassed = allPassed && result.OK()
		}
	}

	fmt.Println()
	output.PrintRule()
	if allPassed {
		r.printSummary()
	} else {
		output.Warnf("Some checks failed - review the report above")
	}

	return allPassed, nil
}

func (r *Runner) printSummary() {
	if r.Summary == nil {
		output.Successf("All checks passed")
		return
	}

	output.Successf("%s", r.Summary.Headline)

	if len(r.Summary.Confirmations) > 0 {
		fmt.Println("\nMigration summary:")
		for _, line := range r.Summary.Confirmations {
			fmt.Printf("  - %s\n", line)
		}
	}

	if len(r.Summary.NextSteps) > 0 {
		fmt.Println("\nNext steps:")
		for i, step := range r.Summary.NextSteps {
			fmt.Printf("  %d. %s\n", i+1, step)
		}
	}
}
