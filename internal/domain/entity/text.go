package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Ellipsis is appended to truncated text
const Ellipsis = "..."

// TruncateText shortens text to at most maxLength runes, trimming trailing
// whitespace before appending Ellipsis. Text that already fits is returned unchanged.
func TruncateText(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	if maxLength < 0 {
		maxLength = 0
	}
	return strings.TrimSpace(string(runes[:maxLength])) + Ellipsis
}

// GenerateID returns a random (version 4) UUID string
func GenerateID() string {
	return uuid.NewString()
}
