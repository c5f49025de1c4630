package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "exists: NETWORK_MIGRATION.md", "NetworkConfig struct: src/config/mod.rs"
	Status  Status   // OK or FAIL
	Details []string // human-readable details, one line each
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
