package pagekit

import "strings"

// Ellipsis is appended by TruncateWithEllipsis when text was cut.
const Ellipsis = "..."

// Clean collapses every run of whitespace (including newlines and
// full-width spaces) into a single space and trims both ends.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate returns at most n runes of s.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// TruncateWithEllipsis is like Truncate but appends Ellipsis when s was
// longer than n runes.
func TruncateWithEllipsis(s string, n int) string {
	if RuneLen(s) <= n {
		return s
	}
	return Truncate(s, n) + Ellipsis
}

// RuneLen returns the number of runes in s. Length thresholds are measured
// in characters rather than bytes so Japanese text is not penalised.
func RuneLen(s string) int {
	return len([]rune(s))
}
