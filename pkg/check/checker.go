package check

// Checker is implemented by all check types.
// Each check inspects one aspect of the project tree
// and returns a Result indicating success or failure.
//
// Implementations:
//   - existcheck.Check: verifies a file or directory exists
//   - contentcheck.Check: matches file content against required patterns
//   - jsoncheck.Check: asserts keys and values in a JSON file
//   - toolchain.Check: verifies a build tool is installed
type Checker interface {
	Run() Result
}
