package status

import (
	"fmt"
)

// FileFormatter defines how file operations and progress should be formatted
type FileFormatter interface {
	// FormatFileOperation formats a file status message
	FormatFileOperation(name string, status FileStatus) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOperation formats a file status message with emojis
func (f *DefaultFileFormatter) FormatFileOperation(name string, status FileStatus) string {
	switch status {
	case StatusNew:
		return fmt.Sprintf("✨ Translated %s", name)
	case StatusModified:
		return fmt.Sprintf("📝 Updated %s", name)
	case StatusUnchanged:
		return fmt.Sprintf("👍 Unchanged %s", name)
	case StatusMissingSource:
		return fmt.Sprintf("Source file missing: %s", name)
	case StatusSkipped:
		return fmt.Sprintf("⏭️  Skipped %s", name)
	case StatusDeleted:
		return fmt.Sprintf("🗑️  Removed %s", name)
	default:
		return fmt.Sprintf("❓ Unknown %s", name)
	}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
