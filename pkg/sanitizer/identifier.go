package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// IBANSeparators lists the characters people put between IBAN groups.
var IBANSeparators = []string{" ", "-", "_", ".", ",", "/", "|"}

// NormalizeUnicode returns the NFC form of value, so "s" followed by a
// combining acute accent becomes a single "ś".
func NormalizeUnicode(value string) string {
	return norm.NFC.String(value)
}

// StripSeparators removes whitespace and hyphens, the separators used when
// writing NIP, PESEL, REGON and NRB numbers.
func StripSeparators(value string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
}

// StripChars removes every occurrence of each of chars from value.
// Empty entries are ignored.
func StripChars(value string, chars ...string) string {
	if len(chars) == 0 {
		return value
	}
	pairs := make([]string, 0, len(chars)*2)
	for _, c := range chars {
		if c != "" {
			pairs = append(pairs, c, "")
		}
	}
	if len(pairs) == 0 {
		return value
	}
	return strings.NewReplacer(pairs...).Replace(value)
}

// ToUpper upper-cases the ASCII letters a-z and leaves every other rune
// untouched, so lookalikes such as "\u017f" or "\u0131" never turn into
// "S" or "I".
func ToUpper(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, value)
}
