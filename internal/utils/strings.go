package utils

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// Truncate cuts s to at most maxLength runes without adding an ellipsis
func Truncate(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength])
}

// IsDigits reports whether s is non-empty and made of ASCII digits only
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MaskString masks a portion of a string (useful for PII)
func MaskString(s string, start, end int, maskChar string) string {
	if start < 0 || end > len(s) || start > end {
		return s
	}

	return s[:start] + strings.Repeat(maskChar, end-start) + s[end:]
}

// MaskAccountNumber keeps only the last 4 digits of a bank account number visible
func MaskAccountNumber(account string) string {
	clean := nonDigits.ReplaceAllString(account, "")
	if len(clean) <= 4 {
		return clean
	}

	return strings.Repeat("*", len(clean)-4) + clean[len(clean)-4:]
}
