package validator

import "fmt"

// Valid matches value against the registry pattern named kind.
// The second result is false when kind is not registered; callers
// usually treat that as "no assertion" rather than as a failure.
func Valid(value, kind string) (matched bool, known bool) {
	re, ok := registry[kind]
	if !ok {
		return false, false
	}
	return re.MatchString(value), true
}

// Mail checks e-mail address format.
func Mail(value string) bool {
	return matchKind(PatternMail, value)
}

// Price checks a price with at most two decimal places, "." or "," as separator.
func Price(value string) bool {
	return matchKind(PatternPrice, value)
}

// Postcode checks the Polish postcode format (NN-NNN).
func Postcode(value string) bool {
	return matchKind(PatternPostcode, value)
}

// Phone checks phone number format, e.g. "+48 ( 052 ) 131 231-2312".
func Phone(value string) bool {
	return matchKind(PatternPhone, value)
}

// URLKind selects how strict URL is about protocol and path.
type URLKind int

const (
	// URLBasic accepts an optional http:// prefix and a bare domain.
	URLBasic URLKind = iota
	// URLWithProtocol also accepts https, ftp and ftps.
	URLWithProtocol
	// URLWithQuery also accepts a path and a query string.
	URLWithQuery
)

func (k URLKind) pattern() string {
	switch k {
	case URLWithProtocol:
		return PatternURLExtend
	case URLWithQuery:
		return PatternURLFull
	default:
		return PatternURL
	}
}

// URL checks an address against the pattern selected by kind.
func URL(value string, kind URLKind) bool {
	return matchKind(kind.pattern(), value)
}

// MatchesPattern builds a rule for a registry pattern.
// An unregistered kind makes no assertion and always passes.
func MatchesPattern(field, value, kind string) Rule {
	return Rule{
		Check: func() bool {
			matched, known := Valid(value, kind)
			return matched || !known
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s format", kind),
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": kind,
			},
		},
	}
}

func ValidMail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return Mail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.mail",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidPrice(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return Price(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid price",
			TranslationKey: "validation.price",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPostcode validates the NN-NNN postcode format.
func ValidPostcode(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return Postcode(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid postcode (NN-NNN)",
			TranslationKey: "validation.postcode",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return Phone(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid phone number",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidURL validates an address with the given strictness.
func ValidURL(field, value string, kind URLKind) Rule {
	return Rule{
		Check: func() bool {
			return URL(value, kind)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
