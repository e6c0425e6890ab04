package validator

var (
	nipWeights   = []int{6, 5, 7, 2, 3, 4, 5, 6, 7}
	peselWeights = []int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}
	regonWeights = []int{8, 9, 2, 3, 4, 5, 6, 7}
)

// NIP validates a Polish tax identification number.
// Spaces and hyphens are ignored, e.g. "998-993-11-84".
func NIP(value string) bool {
	digits, ok := parseDigits(cleanIdentifier(value))
	if !ok || len(digits) != 10 {
		return false
	}
	// A remainder of 10 can never equal a single digit, so such numbers are invalid.
	return weightedSum(digits, nipWeights)%11 == digits[9]
}

// PESEL validates a Polish national identification number.
func PESEL(value string) bool {
	digits, ok := parseDigits(cleanIdentifier(value))
	if !ok || len(digits) != 11 {
		return false
	}
	control := (10 - weightedSum(digits, peselWeights)%10) % 10
	return control == digits[10]
}

// REGON validates a Polish business registry number.
// Both the 9 and the 14 digit forms are accepted; the control digit
// at position 9 is checked in either case.
func REGON(value string) bool {
	digits, ok := parseDigits(cleanIdentifier(value))
	if !ok || (len(digits) != 9 && len(digits) != 14) {
		return false
	}
	control := weightedSum(digits, regonWeights) % 11
	if control == 10 {
		control = 0
	}
	return control == digits[8]
}

func ValidNIP(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return NIP(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid NIP number",
			TranslationKey: "validation.nip",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidPESEL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return PESEL(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid PESEL number",
			TranslationKey: "validation.pesel",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidREGON(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return REGON(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid REGON number",
			TranslationKey: "validation.regon",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
