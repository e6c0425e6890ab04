package validator

import (
	"strconv"
	"strings"

	"github.com/dmitrymomot/bluecheck/pkg/sanitizer"
)

// DefaultIBANCountry is prepended to account numbers written without a country code.
const DefaultIBANCountry = "PL"

// mod97ChunkSize keeps every intermediate value of the MOD 97-10 reduction
// well inside int range: two remainder digits plus six input digits.
const mod97ChunkSize = 6

var (
	// nrbWeights are applied from the last digit of the rearranged number backwards.
	nrbWeights = []int{
		1, 10, 3, 30, 9, 90, 27, 76, 81, 34, 49, 5, 50, 15, 53,
		45, 62, 38, 89, 17, 73, 51, 25, 56, 75, 71, 31, 19, 93, 57,
	}

	// nrbCountrySuffix is "PL" in IBAN letter values followed by the "00" check digits.
	nrbCountrySuffix = []int{2, 5, 2, 1}

	ibanChars = map[rune]string{
		'0': "0", '1': "1", '2': "2", '3': "3", '4': "4",
		'5': "5", '6': "6", '7': "7", '8': "8", '9': "9",
		'A': "10", 'B': "11", 'C': "12", 'D': "13", 'E': "14",
		'F': "15", 'G': "16", 'H': "17", 'I': "18", 'J': "19",
		'K': "20", 'L': "21", 'M': "22", 'N': "23", 'O': "24",
		'P': "25", 'Q': "26", 'R': "27", 'S': "28", 'T': "29",
		'U': "30", 'V': "31", 'W': "32", 'X': "33", 'Y': "34",
		'Z': "35",
	}
)

// NRB validates a 26 digit Polish domestic bank account number.
func NRB(value string) bool {
	digits, ok := parseDigits(cleanIdentifier(value))
	if !ok || len(digits) != 26 {
		return false
	}

	extended := append(digits, nrbCountrySuffix...)
	rotated := append(extended[2:len(extended):len(extended)], extended[:2]...)

	last := len(rotated) - 1
	sum := 0
	for i, w := range nrbWeights {
		sum += w * rotated[last-i]
	}
	return sum%97 == 1
}

// IBANOption configures IBAN validation.
type IBANOption func(*ibanConfig)

type ibanConfig struct {
	separators []string
	country    string
}

// WithIBANSeparators replaces the set of characters stripped before validation.
func WithIBANSeparators(separators ...string) IBANOption {
	return func(c *ibanConfig) {
		c.separators = separators
	}
}

// WithDefaultCountry sets the country code prepended to numbers that start
// with two digits. Anything other than two ASCII letters is ignored.
func WithDefaultCountry(code string) IBANOption {
	return func(c *ibanConfig) {
		code = sanitizer.ToUpper(strings.TrimSpace(code))
		if len(code) == 2 && isUpperASCII(code[0]) && isUpperASCII(code[1]) {
			c.country = code
		}
	}
}

// IBAN validates an International Bank Account Number with the ISO 7064
// MOD 97-10 checksum. Numbers without a country code get DefaultIBANCountry.
func IBAN(value string, opts ...IBANOption) bool {
	cfg := ibanConfig{
		separators: sanitizer.IBANSeparators,
		country:    DefaultIBANCountry,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// No Unicode normalisation here: NFC folds the Kelvin sign into "K".
	iban := sanitizer.ToUpper(sanitizer.StripChars(value, cfg.separators...))
	if len(iban) >= 2 && isDigit(iban[0]) && isDigit(iban[1]) {
		iban = cfg.country + iban
	}
	if len(iban) < 5 {
		return false
	}

	rearranged := iban[4:] + iban[:4]

	var numeric strings.Builder
	for _, r := range rearranged {
		code, ok := ibanChars[r]
		if !ok {
			return false
		}
		numeric.WriteString(code)
	}

	return mod97(numeric.String()) == 1
}

// mod97 reduces a decimal digit string modulo 97 in fixed size chunks,
// prefixing each chunk with the remainder carried from the previous one.
// It returns -1 if digits contains anything but ASCII digits.
func mod97(digits string) int {
	remainder := 0
	for i := 0; i < len(digits); i += mod97ChunkSize {
		end := min(i+mod97ChunkSize, len(digits))
		n, err := strconv.Atoi(strconv.Itoa(remainder) + digits[i:end])
		if err != nil || n < 0 {
			return -1
		}
		remainder = n % 97
	}
	return remainder
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isUpperASCII(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func ValidNRB(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return NRB(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid NRB account number",
			TranslationKey: "validation.nrb",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidIBAN validates an IBAN; opts are passed to IBAN.
func ValidIBAN(field, value string, opts ...IBANOption) Rule {
	return Rule{
		Check: func() bool {
			return IBAN(value, opts...)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid IBAN",
			TranslationKey: "validation.iban",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
