package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds test-case names, which become file basenames.
const maxNameLength = 128

// ValidateCaseName validates a test-case name before it is used to derive
// dataset filenames. Names must be plain basenames: no separators, no
// traversal, no control characters and no leading dot.
func ValidateCaseName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "case name cannot be empty")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "case name too long (max %d characters)", maxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidName, "case name contains invalid characters: %q", name)
		}
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidName, "case name cannot contain path separators: %q", name)
	}
	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidName, "case name cannot start with a dot: %q", name)
	}
	return nil
}
