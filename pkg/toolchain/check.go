package toolchain

import (
	"context"
	"fmt"
	"time"

	"github.com/crosscopy/migcheck/pkg/check"
	"github.com/crosscopy/migcheck/pkg/version"
)

// DefaultTimeout bounds the version command; `cargo --version` is fast,
// but a wedged toolchain should not hang the whole report.
const DefaultTimeout = 30 * time.Second

// Check verifies that a build tool is installed and new enough. The
// migration report suggests cargo commands as next steps, so `migcheck
// verify --toolchain` runs this first to make those suggestions honest.
type Check struct {
	Name    string           // tool name, e.g. "cargo"
	Min     *version.Version // minimum version required (inclusive), nil to skip
	Timeout time.Duration    // timeout for the version command (default: DefaultTimeout)
	Runner  Runner           // injected for testing
}

// Run executes the toolchain check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("tool: %s", c.Name),
	}

	path, err := c.Runner.LookPath(c.Name)
	if err != nil {
		return result.Failf("not found in PATH: %v", err)
	}

	result.AddDetailf("path: %s", path)

	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := c.Runner.RunContext(ctx, c.Name, "--version")
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result.Failf("version command timed out after %s", timeout)
		}
		return result.Failf("version command failed: %v", err)
	}

	installed, err := version.Extract(out)
	if err != nil {
		return result.Failf("could not parse version from output: %v", err)
	}

	result.AddDetailf("version: %s", installed)

	if c.Min != nil && !installed.GreaterThanOrEqual(*c.Min) {
		err := fmt.Errorf("version %s below minimum %s", installed, c.Min)
		return result.Fail(fmt.Sprintf("version %s < minimum %s", installed, c.Min), err)
	}

	result.Status = check.StatusOK
	return result
}
