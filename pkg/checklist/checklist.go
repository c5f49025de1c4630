package checklist

import (
	"path/filepath"

	"github.com/crosscopy/migcheck/pkg/check"
	"github.com/crosscopy/migcheck/pkg/contentcheck"
	"github.com/crosscopy/migcheck/pkg/existcheck"
)

// Kind selects which check primitive an item runs.
type Kind int

const (
	// KindContent matches file content against the item's requirements.
	KindContent Kind = iota
	// KindExists only verifies the file is present.
	KindExists
)

// Item is one check descriptor in a checklist. Paths are relative to the
// project root; the runner joins them at execution time.
type Item struct {
	Kind         Kind
	Path         string
	Label        string
	Requirements []contentcheck.Requirement // content items only
}

// Section is a numbered group of items, printed under one heading.
type Section struct {
	Title string
	Items []Item
}

// Summary is the banner printed when every check passes.
type Summary struct {
	Headline      string
	Confirmations []string // printed under "Migration summary:"
	NextSteps     []string // printed numbered under "Next steps:"
}

// checker builds the check primitive for an item, rooted at dir.
func (it Item) checker(dir string) check.Checker {
	path := filepath.Join(dir, it.Path)
	if it.Kind == KindExists {
		return &existcheck.Check{
			Path:  path,
			Label: it.Label,
			FS:    &existcheck.RealFileSystem{},
		}
	}
	return &contentcheck.Check{
		Path:         path,
		Label:        it.Label,
		Requirements: it.Requirements,
		FS:           &contentcheck.RealFileSystem{},
	}
}
