package utils

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatSalary renders a salary with comma separators, e.g. 215000 -> "215,000"
func FormatSalary(salary int) string {
	return humanize.Comma(int64(salary))
}

// FormatCount renders a vacancy count with comma separators
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// TruncateString truncates a string to the specified rune length and adds "..." if necessary
func TruncateString(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	if length <= 3 {
		return string(runes[:length])
	}
	return string(runes[:length-3]) + "..."
}

// NormalizeSource lowercases and trims a source name from the command line
func NormalizeSource(source string) string {
	return strings.ToLower(strings.TrimSpace(source))
}
