package utils

import (
	"regexp"
	"strings"
)

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// SanitizeText strips markup and control characters from untrusted
// input and trims surrounding whitespace.
func SanitizeText(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

func IsValidSlug(s string) bool {
	return len(s) > 0 && len(s) <= 200 && slugPattern.MatchString(s)
}

func IsValidEmail(s string) bool {
	return len(s) <= 254 && emailPattern.MatchString(s)
}

// Truncate cuts s to at most n bytes without splitting the string in
// the middle of a rune.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
