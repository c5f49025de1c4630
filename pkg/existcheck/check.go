package existcheck

import (
	"fmt"
	"os"

	"github.com/crosscopy/migcheck/pkg/check"
)

// Check verifies that a file or directory exists.
// A missing path is an expected outcome, not a fault: the check
// fails and reports it, it never aborts the surrounding run.
type Check struct {
	Path  string     // path to check
	Label string     // optional display label, e.g. "test/example file"
	FS    FileSystem // injected for testing
}

// Run executes the existence check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: resultName(c.Label, c.Path),
	}

	info, err := c.FS.Stat(c.Path)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			return result.Fail("not found", err)
		case os.IsPermission(err):
			return result.Fail("permission denied", err)
		default:
			return result.Failf("stat failed: %v", err)
		}
	}

	if info.IsDir() {
		result.AddDetail("type: directory")
	} else {
		result.AddDetail("type: file")
	}

	result.Status = check.StatusOK
	return result
}

func resultName(label, path string) string {
	if label != "" {
		return fmt.Sprintf("%s: %s", label, path)
	}
	return fmt.Sprintf("exists: %s", path)
}
