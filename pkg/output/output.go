package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/crosscopy/migcheck/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

const ruleWidth = 40

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult outputs a check result with colored status.
func PrintResult(r check.Result) {
	if r.OK() {
		fmt.Printf("%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Printf("%s[FAIL]%s %s\n", red, reset, r.Name)
	}

	// Align detail lines under the name: "[OK] " is 5 chars, "[FAIL] " is 7.
	indent := "     "
	if !r.OK() {
		indent = "       "
	}
	for _, d := range r.Details {
		fmt.Printf("%s%s\n", indent, formatLabel(d))
	}
}

// formatLabel dims the "label:" prefix of a detail line, if it has one.
func formatLabel(detail string) string {
	idx := strings.Index(detail, ": ")
	if idx < 0 {
		return detail
	}
	return dim + detail[:idx+1] + reset + detail[idx+1:]
}

// PrintHeader prints a report title followed by a horizontal rule.
func PrintHeader(title string) {
	fmt.Println(title)
	PrintRule()
}

// PrintSectionTitle prints a numbered section heading with a blank line above it.
func PrintSectionTitle(number int, title string) {
	fmt.Printf("\n%d. %s\n", number, title)
}

// PrintRule prints a horizontal rule separating report sections.
func PrintRule() {
	fmt.Println(strings.Repeat("=", ruleWidth))
}

// Successf prints a green all-passed line.
func Successf(format string, args ...interface{}) {
	fmt.Printf("%s%s%s\n", green, fmt.Sprintf(format, args...), reset)
}

// Warnf prints a red warning line.
func Warnf(format string, args ...interface{}) {
	fmt.Printf("%s%s%s\n", red, fmt.Sprintf(format, args...), reset)
}
