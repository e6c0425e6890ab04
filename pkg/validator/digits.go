package validator

import "github.com/dmitrymomot/bluecheck/pkg/sanitizer"

// cleanIdentifier prepares NIP, PESEL, REGON and NRB input.
var cleanIdentifier = sanitizer.Compose(
	sanitizer.NormalizeUnicode,
	sanitizer.StripSeparators,
)

// parseDigits converts an ASCII digit string into its digit values.
// ok is false for empty input or any non-digit character.
func parseDigits(s string) (digits []int, ok bool) {
	if s == "" {
		return nil, false
	}
	digits = make([]int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		digits[i] = int(c - '0')
	}
	return digits, true
}

// weightedSum multiplies digits by weights position by position.
// len(digits) must be at least len(weights).
func weightedSum(digits, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	return sum
}
