package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "hello", SanitizeText("  hello  "))
	assert.Equal(t, "alert(1)", SanitizeText("<script>alert(1)</script>"))
	assert.Equal(t, "bold text", SanitizeText("<b>bold</b> text"))
	assert.Equal(t, "ab", SanitizeText("a\x00\x07b"))
	assert.Equal(t, "line1\nline2", SanitizeText("line1\nline2"))
	assert.Equal(t, "", SanitizeText("   "))
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("my-first-post"))
	assert.True(t, IsValidSlug("post1"))
	assert.True(t, IsValidSlug("a"))

	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("My-Post"))
	assert.False(t, IsValidSlug("-leading"))
	assert.False(t, IsValidSlug("trailing-"))
	assert.False(t, IsValidSlug("double--dash"))
	assert.False(t, IsValidSlug("with space"))
	assert.False(t, IsValidSlug("with_underscore"))
	assert.False(t, IsValidSlug(strings.Repeat("a", 201)))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("a.b+c@sub.domain.org"))

	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("user@nodot"))
	assert.False(t, IsValidEmail("user @example.com"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("user@example.com"+strings.Repeat("m", 254)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hel", Truncate("hello", 3))
	assert.Equal(t, "", Truncate("hello", 0))

	// Never cuts through a multibyte rune.
	s := "héllo"
	truncated := Truncate(s, 2)
	assert.Equal(t, "h", truncated)
}
