package statblock

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OrdinalSuffix returns the English ordinal suffix for n: "st", "nd", "rd"
// or "th". 11, 12 and 13 (and 111, 212, ...) take "th".
func OrdinalSuffix(n int) string {
	if n < 0 {
		n = -n
	}
	switch n % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// Ordinal formats n with its ordinal suffix, e.g. 8 -> "8th".
func Ordinal(n int) string {
	return strconv.Itoa(n) + OrdinalSuffix(n)
}

// OrdinalFromText formats a level held as text. Text that is not an integer
// is returned unchanged.
func OrdinalFromText(level string) string {
	n, err := strconv.Atoi(strings.TrimSpace(level))
	if err != nil {
		return level
	}
	return Ordinal(n)
}

// TitleCase capitalizes each word and lowercases the rest of it.
func TitleCase(s string) string {
	// A Caser holds state between calls and cannot be shared.
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
