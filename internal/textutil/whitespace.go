package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeWhitespace splits value on runs of whitespace and rejoins the
// fields with single ASCII spaces. Leading and trailing whitespace is dropped.
func NormalizeWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// CompactKey returns value lower-cased with every whitespace rune removed.
// Two strings that differ only in case or spacing share a compact key.
func CompactKey(value string) string {
	folded := cases.Lower(language.Und).String(norm.NFC.String(value))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, folded)
}
