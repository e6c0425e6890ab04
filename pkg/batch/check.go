package batch

import (
	"slices"

	"github.com/dmitrymomot/bluecheck/pkg/validator"
)

// Check kinds with dedicated validators. Any registry pattern name
// (validator.Patterns) is accepted as a kind too.
const (
	KindNIP       = "nip"
	KindPESEL     = "pesel"
	KindREGON     = "regon"
	KindNRB       = "nrb"
	KindIBAN      = "iban"
	KindMail      = "mail"
	KindPrice     = "price"
	KindPostcode  = "postcode"
	KindPhone     = "phone"
	KindURL       = "url"
	KindRange     = "range"
	KindLength    = "length"
	KindStep      = "step"
	KindUnderZero = "under_zero"
)

var dedicatedKinds = []string{
	KindNIP, KindPESEL, KindREGON, KindNRB, KindIBAN,
	KindMail, KindPrice, KindPostcode, KindPhone, KindURL,
	KindRange, KindLength, KindStep, KindUnderZero,
}

// Kinds returns every accepted kind in sorted order.
func Kinds() []string {
	kinds := append(slices.Clone(dedicatedKinds), validator.Patterns()...)
	slices.Sort(kinds)
	return slices.Compact(kinds)
}

// Check is one value to validate. Min and Max apply to range and length,
// Step and Default to step; other kinds ignore them.
type Check struct {
	Field   string `json:"field,omitempty" yaml:"field,omitempty"`
	Kind    string `json:"kind" yaml:"kind"`
	Value   string `json:"value" yaml:"value"`
	Min     string `json:"min,omitempty" yaml:"min,omitempty"`
	Max     string `json:"max,omitempty" yaml:"max,omitempty"`
	Step    string `json:"step,omitempty" yaml:"step,omitempty"`
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
}

// name is the field used in messages; it falls back to the kind.
func (c Check) name() string {
	if c.Field != "" {
		return c.Field
	}
	return c.Kind
}

// Status is the outcome of a single check.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusUnknown Status = "unknown"
)

// Result is the outcome of one Check. Reason is the sentinel error text
// (e.g. "invalid checksum") and Message the localized explanation; both are
// empty for passed checks.
type Result struct {
	Field   string `json:"field" yaml:"field"`
	Kind    string `json:"kind" yaml:"kind"`
	Value   string `json:"value" yaml:"value"`
	Status  Status `json:"status" yaml:"status"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}
