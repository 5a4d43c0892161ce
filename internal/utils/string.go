package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// IsNoiseRune reports whether r is whitespace or punctuation (Unicode
// category P).
func IsNoiseRune(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}

// CleanText removes all whitespace and punctuation from s.
func CleanText(s string) string {
	return strings.Map(func(r rune) rune {
		if IsNoiseRune(r) {
			return -1
		}
		return r
	}, s)
}

// IsPunctOrSpace reports whether s consists entirely of punctuation and/or
// whitespace. The empty string qualifies.
func IsPunctOrSpace(s string) bool {
	for _, r := range s {
		if !IsNoiseRune(r) {
			return false
		}
	}
	return true
}

// FormatWithCommas formats an integer with comma separators
func FormatWithCommas(n int) string {
	str := strconv.Itoa(n)
	if n < 0 {
		return "-" + FormatWithCommas(-n)
	}
	if len(str) <= 3 {
		return str
	}

	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}
