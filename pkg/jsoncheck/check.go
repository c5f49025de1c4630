package jsoncheck

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/crosscopy/migcheck/pkg/check"
)

// Check verifies that a JSON file parses and optionally asserts key/value
// requirements. Projects whose migration state lives in JSON manifests
// (package.json, tooling configs) use this instead of raw pattern checks.
type Check struct {
	Path   string     // path to the JSON file
	HasKey string     // key that must exist (gjson dot notation)
	Key    string     // key to check the value of
	Exact  string     // expected exact value (requires Key)
	Match  string     // regex pattern for the value (requires Key)
	FS     FileSystem // injected for testing
}

// Run executes the JSON check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("json: %s", c.Path),
	}

	content, err := c.FS.ReadFile(c.Path)
	if err != nil {
		return result.Failf("failed to read file: %v", err)
	}

	doc := string(content)
	if !gjson.Valid(doc) {
		return result.Fail("invalid JSON", fmt.Errorf("invalid JSON syntax"))
	}

	result.AddDetail("syntax: valid")

	if c.HasKey != "" {
		if !gjson.Get(doc, c.HasKey).Exists() {
			return result.Failf("key %q not found", c.HasKey)
		}
		result.AddDetailf("has key: %s", c.HasKey)
	}

	if c.Key != "" {
		if err := c.checkValue(doc, &result); err != nil {
			return result
		}
	}

	result.Status = check.StatusOK
	return result
}

func (c *Check) checkValue(doc string, result *check.Result) error {
	value := gjson.Get(doc, c.Key)
	if !value.Exists() {
		result.Failf("key %q not found", c.Key)
		return fmt.Errorf("key %q not found", c.Key)
	}

	// String() renders null as "", which would compare equal to an
	// unset expectation; keep it distinguishable.
	valueStr := value.String()
	if value.Type == gjson.Null {
		valueStr = "null"
	}

	if c.Exact != "" && valueStr != c.Exact {
		err := fmt.Errorf("value %q does not equal %q", valueStr, c.Exact)
		result.Fail(fmt.Sprintf("value %q != expected %q", valueStr, c.Exact), err)
		return err
	}

	if c.Match != "" {
		re, err := check.CompileRegex(c.Match)
		if err != nil {
			result.Failf("invalid regex pattern: %v", err)
			return err
		}
		if !re.MatchString(valueStr) {
			err := fmt.Errorf("value %q does not match pattern %q", valueStr, c.Match)
			result.Fail(fmt.Sprintf("value %q does not match pattern %q", valueStr, c.Match), err)
			return err
		}
	}

	result.AddDetailf("key %s: %s", c.Key, valueStr)
	return nil
}
