package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold prepares text for case-insensitive substring comparison.
// Whitespace is preserved so that token positions do not move.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Lower(language.Indonesian).String(norm.NFC.String(s))
}

// NormalizeQuery trims and folds a free-text search query.
func NormalizeQuery(q string) string {
	return Fold(strings.TrimSpace(q))
}

// NormalizeGardu canonicalises a substation code: trimmed and upper-cased.
func NormalizeGardu(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
