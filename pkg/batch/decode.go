package batch

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// File is the batch input document. JSON input is accepted as well, being
// valid YAML.
//
//	lang: pl
//	iban_country: PL
//	checks:
//	  - {field: tax_id, kind: nip, value: "487-428-07-98"}
//	  - {field: age, kind: range, value: "17", min: "18"}
type File struct {
	Lang        string  `yaml:"lang,omitempty"`
	IBANCountry string  `yaml:"iban_country,omitempty"`
	Checks      []Check `yaml:"checks"`
}

// Decode reads a File from r. Unknown keys are rejected and every check
// must name its kind.
func Decode(r io.Reader) (File, error) {
	var f File

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return f, ErrNoChecks
		}
		return f, errors.Join(ErrDecode, err)
	}

	if len(f.Checks) == 0 {
		return f, ErrNoChecks
	}
	for i, c := range f.Checks {
		if c.Kind == "" {
			return f, fmt.Errorf("%w: check %d: kind is required", ErrInvalidCheck, i+1)
		}
	}
	return f, nil
}
