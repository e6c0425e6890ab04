package validator

import (
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/bluecheck/pkg/sanitizer"
)

// Unbounded disables the min or max limit of StringLength.
const Unbounded = -1

// Range reports whether value lies within [min, max]. An empty bound is
// not checked. When every present bound is a hexadecimal ("#ff", "0xff"),
// octal ("0755") or binary ("b101") literal of the same family, value and
// bounds are read in that base; otherwise all three are read as decimals
// with "." or "," as the decimal mark. Unparsable input yields false.
func Range(value, min, max string) bool {
	base := detectBase(min, max)

	v, ok := parseLiteral(value, base)
	if !ok {
		return false
	}
	if min != "" {
		lo, ok := parseLiteral(min, base)
		if !ok || lo.Cmp(v) > 0 {
			return false
		}
	}
	if max != "" {
		hi, ok := parseLiteral(max, base)
		if !ok || hi.Cmp(v) < 0 {
			return false
		}
	}
	return true
}

// StringLength checks the character count of value against min and max.
// Pass Unbounded (or any negative number) to skip a limit.
func StringLength(value string, min, max int) bool {
	length := utf8.RuneCountInString(sanitizer.NormalizeUnicode(value))
	return Range(strconv.Itoa(length), lengthBound(min), lengthBound(max))
}

// UnderZero reports whether value is negative.
func UnderZero[T Numeric](value T) bool {
	return value < 0
}

func lengthBound(n int) string {
	if n < 0 {
		return ""
	}
	return strconv.Itoa(n)
}

var literalFamilies = []struct {
	base  int
	match func(string) bool
}{
	{16, isHexLiteral},
	{8, func(s string) bool { return matchKind(PatternOctal, s) }},
	{2, func(s string) bool { return matchKind(PatternBinary, s) }},
}

// detectBase picks the numeric base from the present bounds. A single bound
// decides on its own; two bounds must belong to the same literal family.
func detectBase(min, max string) int {
	bounds := make([]string, 0, 2)
	for _, b := range []string{min, max} {
		if b != "" {
			bounds = append(bounds, b)
		}
	}
	if len(bounds) == 0 {
		return 10
	}

	for _, family := range literalFamilies {
		if !slices.ContainsFunc(bounds, func(b string) bool { return !family.match(b) }) {
			return family.base
		}
	}
	return 10
}

func isHexLiteral(s string) bool {
	return matchKind(PatternHex, s) || matchKind(PatternHex2, s)
}

// parseLiteral reads s in the given base into an exact rational.
func parseLiteral(s string, base int) (*big.Rat, bool) {
	if base == 10 {
		return parseDecimal(s)
	}

	switch base {
	case 16:
		s = strings.TrimPrefix(s, "#")
		if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
			s = s[2:]
		}
	case 2:
		s = strings.TrimLeft(s, "bB")
	}
	if s == "" {
		return nil, false
	}

	n, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, false
	}
	return new(big.Rat).SetInt(n), true
}

// parseDecimal accepts strings matching the rational pattern that contain
// at least one digit, e.g. "-12", "3,5", ".25".
func parseDecimal(s string) (*big.Rat, bool) {
	if !matchKind(PatternRational, s) {
		return nil, false
	}

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(strings.Replace(s, ",", ".", 1), ".")
	if intPart == "" && fracPart == "" {
		return nil, false
	}
	if intPart == "" {
		intPart = "0"
	}

	literal := intPart
	if fracPart != "" {
		literal += "." + fracPart
	}
	if neg {
		literal = "-" + literal
	}

	r, ok := new(big.Rat).SetString(literal)
	return r, ok
}

// InRange validates value against optional min and max bounds, see Range.
func InRange(field, value, min, max string) Rule {
	msg, key := rangeMessage("must be", min, max)
	return Rule{
		Check: func() bool {
			return Range(value, min, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        msg,
			TranslationKey: "validation.range" + key,
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// LengthBetween validates the character count of value, see StringLength.
func LengthBetween(field, value string, min, max int) Rule {
	msg, key := rangeMessage("length must be", lengthBound(min), lengthBound(max))
	return Rule{
		Check: func() bool {
			return StringLength(value, min, max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        msg,
			TranslationKey: "validation.length" + key,
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

func Negative[T Numeric](field string, value T) Rule {
	return Rule{
		Check: func() bool {
			return UnderZero(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be less than zero",
			TranslationKey: "validation.negative",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// rangeMessage returns the English message and the translation key suffix
// for the bounds that are set.
func rangeMessage(prefix, min, max string) (string, string) {
	switch {
	case min != "" && max != "":
		return fmt.Sprintf("%s between %s and %s", prefix, min, max), ""
	case min != "":
		return fmt.Sprintf("%s at least %s", prefix, min), "_min"
	case max != "":
		return fmt.Sprintf("%s at most %s", prefix, max), "_max"
	default:
		return prefix + " a number", "_number"
	}
}
