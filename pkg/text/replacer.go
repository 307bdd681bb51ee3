package text

import (
	"context"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔄 ReplacementRule describes a single string replacement applied to file content
type ReplacementRule struct {
	FromText string // Text to search for
	ToText   string // Text to insert in its place
}

// 📊 ReplacementResult holds the outcome of applying a rule set
type ReplacementResult struct {
	OriginalContent  []byte // Content before any rule was applied
	ModifiedContent  []byte // Content after all rules were applied
	WasModified      bool   // Whether any rule changed the content
	ReplacementCount int    // Total number of substitutions that changed content
}

// Replacer applies replacement rules to file content
type Replacer interface {
	ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)
	ValidateRules(rules []ReplacementRule) error
}

// SimpleReplacer implements Replacer using basic string replacement
type SimpleReplacer struct{}

// NewSimpleReplacer creates a new SimpleReplacer
func NewSimpleReplacer() *SimpleReplacer {
	return &SimpleReplacer{}
}

// ReplaceText applies each rule in order with strings.ReplaceAll. Rules whose
// replacement equals the search text leave the result untouched and are not
// counted as modifications.
func (r *SimpleReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	currentContent := string(originalContent)
	for _, rule := range rules {
		if rule.FromText == "" {
			continue
		}

		newContent := strings.ReplaceAll(currentContent, rule.FromText, rule.ToText)

		if newContent != currentContent {
			result.WasModified = true
			result.ReplacementCount += strings.Count(currentContent, rule.FromText)
		}

		currentContent = newContent
	}

	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ValidateRules checks that every rule has a search text
func (r *SimpleReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
	}
	return nil
}
