// Package manifest defines the ordered set of documentation files a
// translation run operates on.
package manifest

import (
	"strings"

	"github.com/docsmith/translaterc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📚 Manifest is an ordered list of documentation filenames, relative to the
// source directory. Order is preserved so runs process and report files in a
// stable sequence.
type Manifest []string

// Default returns the main navigation documents handled by a translation run.
func Default() Manifest {
	return Manifest{
		"OVERVIEW.md",
		"QUICK_START.md",
		"FRONTEND_INTEGRATION.md",
		"INTERMEDIATE_GUIDE.md",
		"EXPERT_GUIDE.md",
		"MIGRATION_V1_V2.md",
		"IMPLEMENTATION_NOTES.md",
		"FAQ.md",
		"CONTRIBUTING.md",
	}
}

// 🔍 Validate checks that the manifest is usable: every entry is a bare
// filename, and no entry appears twice.
func (m Manifest) Validate() error {
	if len(m) == 0 {
		return errors.New("manifest is empty")
	}

	seen := make(map[string]struct{}, len(m))
	for i, name := range m {
		if name == "" {
			return errors.Errorf("entry %d: filename is empty", i)
		}
		if strings.ContainsAny(name, `/\`) {
			return errors.Errorf("entry %d: %q must be a bare filename", i, name)
		}
		if _, ok := seen[name]; ok {
			return errors.Errorf("entry %d: %q appears more than once", i, name)
		}
		seen[name] = struct{}{}
	}

	return nil
}

// Contains reports whether name is part of the manifest.
func (m Manifest) Contains(name string) bool {
	for _, entry := range m {
		if entry == name {
			return true
		}
	}
	return false
}

// 🔗 LinkRules returns the replacement rules for relative links between
// manifest files, from the point of view of self. Translated files are
// written side by side, so a sibling link keeps its relative form: each rule
// maps ./NAME onto itself and the replacer leaves the content untouched.
func (m Manifest) LinkRules(self string) []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(m)-1)
	for _, name := range m {
		if name == self {
			continue
		}
		rules = append(rules, text.ReplacementRule{
			FromText: "./" + name,
			ToText:   "./" + name,
		})
	}
	return rules
}
