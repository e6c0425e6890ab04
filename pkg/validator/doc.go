// Package validator checks Polish identifiers, bank account numbers and common
// text formats.
//
// # Checks
//
// Plain predicates return a bool and never panic on malformed input:
//
//   - NIP, PESEL, REGON – weighted checksums of Polish national identifiers
//   - NRB, IBAN – MOD 97-10 checksums of bank account numbers
//   - Range, StringLength, UnderZero – bounds checks; Range understands hex,
//     octal and binary literals when both bounds use the same notation
//   - Step – whether a value is a whole number of steps away from a default
//   - Mail, Price, Postcode, Phone, URL – fixed format patterns
//
// Valid matches a value against any pattern of the registry by name and uses
// the comma-ok form to tell an unregistered name apart from a failed match:
//
//	matched, known := validator.Valid("42-400", validator.PatternPostcode)
//
// The registry is compiled once at package initialisation and only read
// afterwards, so every function here is safe for concurrent use.
//
// # Rules
//
// Each check also has a Rule constructor (ValidNIP, InRange, ValidStep, …)
// carrying a translatable error. Apply evaluates rules and aggregates failures
// into ValidationErrors:
//
//	err := validator.Apply(
//	    validator.ValidNIP("nip", form.NIP),
//	    validator.ValidPostcode("postcode", form.Postcode),
//	    validator.LengthBetween("name", form.Name, 3, validator.Unbounded),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    messages := verrs.Localize(translator, "pl")
//	}
//
// ValidationErrors satisfies errors.Is(err, ErrValidationFailed).
package validator
