package validator

import (
	"fmt"
	"math/big"
)

// Step reports whether value is reachable from def by whole multiples of step,
// comparing absolute values: (|value| - |def|) must be divisible by step.
// All three arguments must be decimal numbers ("." or "," as decimal mark);
// an empty def means zero. A zero step never matches.
func Step(value, step, def string) bool {
	if def == "" {
		def = "0"
	}

	v, ok := parseDecimal(value)
	if !ok {
		return false
	}
	s, ok := parseDecimal(step)
	if !ok || s.Sign() == 0 {
		return false
	}
	d, ok := parseDecimal(def)
	if !ok {
		return false
	}

	diff := new(big.Rat).Sub(new(big.Rat).Abs(v), new(big.Rat).Abs(d))
	return new(big.Rat).Quo(diff, s).IsInt()
}

// ValidStep validates that value is def plus a whole number of steps, see Step.
func ValidStep(field, value, step, def string) Rule {
	return Rule{
		Check: func() bool {
			return Step(value, step, def)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a multiple of %s", step),
			TranslationKey: "validation.step",
			TranslationValues: map[string]any{
				"field":   field,
				"step":    step,
				"default": def,
			},
		},
	}
}
