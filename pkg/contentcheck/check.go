package contentcheck

import (
	"fmt"
	"os"

	"github.com/crosscopy/migcheck/pkg/check"
	"github.com/crosscopy/migcheck/pkg/version"
)

// Requirement is one pattern a file's content must satisfy.
type Requirement struct {
	Pattern     string // regex, searched anywhere in the text in multi-line mode
	Description string // human-readable, e.g. "libp2p dependency added"
	MinVersion  string // optional version floor applied to the matched text
}

// Check verifies that a file's content matches every requirement.
// All requirements are evaluated even after one fails, so the report
// shows the outcome of each pattern. A missing or unreadable file
// fails the whole check with a single detail line.
type Check struct {
	Path         string        // path to the file
	Label        string        // optional display label, e.g. "NetworkConfig struct"
	Requirements []Requirement // evaluated in order; empty means "file is readable"
	FS           FileSystem    // injected for testing
}

// Run executes the content check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: resultName(c.Label, c.Path),
	}

	content, err := c.FS.ReadFile(c.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return result.Fail("not found", err)
		}
		return result.Failf("failed to read file: %v", err)
	}

	failed := 0
	for _, req := range c.Requirements {
		if ok := c.checkRequirement(req, content, &result); !ok {
			failed++
		}
	}

	if failed > 0 {
		result.Status = check.StatusFail
		if result.Err == nil {
			result.Err = fmt.Errorf("%d of %d requirements unmet", failed, len(c.Requirements))
		}
		return result
	}

	result.Status = check.StatusOK
	return result
}

func (c *Check) checkRequirement(req Requirement, content []byte, result *check.Result) bool {
	re, err := check.CompileSearchPattern(req.Pattern)
	if err != nil {
		result.AddDetailf("invalid pattern %q: %v", req.Pattern, err)
		result.Err = err
		return false
	}

	match := re.FindSubmatch(content)
	if match == nil {
		result.AddDetailf("missing: %s", req.Description)
		return false
	}

	if req.MinVersion != "" {
		// Prefer the first capture group, so a pattern can single out
		// the version portion of the matched line.
		versionText := match[0]
		if len(match) > 1 && match[1] != nil {
			versionText = match[1]
		}
		if ok := checkVersionFloor(req, string(versionText), result); !ok {
			return false
		}
	}

	result.AddDetailf("ok: %s", req.Description)
	return true
}

// checkVersionFloor extracts a version number from the matched text and
// compares it against the requirement's floor.
func checkVersionFloor(req Requirement, match string, result *check.Result) bool {
	minimum, err := version.Parse(req.MinVersion)
	if err != nil {
		result.AddDetailf("invalid minimum version %q: %v", req.MinVersion, err)
		result.Err = err
		return false
	}

	found, err := version.Extract(match)
	if err != nil {
		result.AddDetailf("missing: %s (no version in %q)", req.Description, match)
		return false
	}

	if !found.GreaterThanOrEqual(minimum) {
		result.AddDetailf("missing: %s (version %s < minimum %s)", req.Description, found, minimum)
		return false
	}
	return true
}

func resultName(label, path string) string {
	if label != "" {
		return fmt.Sprintf("%s: %s", label, path)
	}
	return fmt.Sprintf("content: %s", path)
}
