package checkfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/crosscopy/migcheck/pkg/checklist"
	"github.com/crosscopy/migcheck/pkg/contentcheck"
)

// DefaultName is the checklist file searched for by `migcheck run`.
const DefaultName = ".migcheck.yaml"

// File is a custom checklist definition.
type File struct {
	Title  string  `yaml:"title"`
	Checks []Entry `yaml:"checks"`
}

// Entry describes one check. Exactly one of Exists or File must be set:
// Exists names a path that only has to be present, File names a path
// whose content must satisfy Requires.
type Entry struct {
	Exists   string        `yaml:"exists"`
	File     string        `yaml:"file"`
	Label    string        `yaml:"label"`
	Requires []Requirement `yaml:"requires"`
}

// Requirement mirrors contentcheck.Requirement in YAML form.
type Requirement struct {
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description"`
	MinVersion  string `yaml:"min_version"`
}

// Find locates the checklist file. An explicit path wins; otherwise the
// search walks up from startDir, stopping at the home directory or the
// first directory containing .git.
func Find(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("checklist file not found: %w", err)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(currentDir, DefaultName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		if currentDir == homeDir {
			break
		}

		// A .git directory marks a repository root; don't search past it.
		if _, err := os.Stat(filepath.Join(currentDir, ".git")); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", errors.New(DefaultName + " not found")
}

// Load reads and validates a checklist file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // intentional: reading the user's checklist file
	if err != nil {
		return nil, fmt.Errorf("failed to read checklist file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse checklist file: %w", err)
	}

	if len(f.Checks) == 0 {
		return nil, errors.New("checklist file defines no checks")
	}

	for i, entry := range f.Checks {
		if err := entry.validate(); err != nil {
			return nil, fmt.Errorf("check %d: %w", i+1, err)
		}
	}

	return &f, nil
}

func (e Entry) validate() error {
	switch {
	case e.Exists == "" && e.File == "":
		return errors.New("one of 'exists' or 'file' is required")
	case e.Exists != "" && e.File != "":
		return errors.New("only one of 'exists' or 'file' can be set")
	case e.Exists != "" && len(e.Requires) > 0:
		return errors.New("'requires' only applies to 'file' checks")
	}
	for _, req := range e.Requires {
		if req.Pattern == "" {
			return errors.New("requirement is missing a pattern")
		}
	}
	return nil
}

// Runner converts the file into a checklist runner rooted at dir. The
// custom list has no precondition marker and no migration banner.
func (f *File) Runner(dir string) *checklist.Runner {
	items := make([]checklist.Item, 0, len(f.Checks))
	for _, entry := range f.Checks {
		items = append(items, entry.item())
	}

	return &checklist.Runner{
		Dir:    dir,
		Header: f.Title,
		Sections: []checklist.Section{
			{Title: "Checks", Items: items},
		},
	}
}

func (e Entry) item() checklist.Item {
	if e.Exists != "" {
		return checklist.Item{
			Kind:  checklist.KindExists,
			Path:  e.Exists,
			Label: e.Label,
		}
	}

	reqs := make([]contentcheck.Requirement, 0, len(e.Requires))
	for _, req := range e.Requires {
		description := req.Description
		if description == "" {
			description = fmt.Sprintf("matches %q", req.Pattern)
		}
		reqs = append(reqs, contentcheck.Requirement{
			Pattern:     req.Pattern,
			Description: description,
			MinVersion:  req.MinVersion,
		})
	}

	return checklist.Item{
		Path:         e.File,
		Label:        e.Label,
		Requirements: reqs,
	}
}
