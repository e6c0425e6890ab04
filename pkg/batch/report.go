package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/bluecheck/pkg/validator"
)

// Output formats accepted by Report.Encode.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report is the outcome of one Run.
type Report struct {
	ID      uuid.UUID `json:"id" yaml:"id"`
	Lang    string    `json:"lang" yaml:"lang"`
	Results []Result  `json:"results" yaml:"results"`
	Passed  int       `json:"passed" yaml:"passed"`
	Failed  int       `json:"failed" yaml:"failed"`
	Unknown int       `json:"unknown" yaml:"unknown"`
}

func (r *Report) add(res Result) {
	r.Results = append(r.Results, res)
	switch res.Status {
	case StatusPassed:
		r.Passed++
	case StatusFailed:
		r.Failed++
	case StatusUnknown:
		r.Unknown++
	}
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	return r.Failed == 0 && r.Unknown == 0
}

// Summary renders the pass/fail counts, localized when t is not nil.
func (r Report) Summary(t validator.Translator, lang string) string {
	passed, failed, unknown := strconv.Itoa(r.Passed), strconv.Itoa(r.Failed), strconv.Itoa(r.Unknown)
	if t != nil {
		const key = "batch.summary"
		msg := t.T(lang, key, "passed", passed, "failed", failed, "unknown", unknown)
		if msg != "" && msg != key {
			return msg
		}
	}
	return fmt.Sprintf("%s passed, %s failed, %s unknown", passed, failed, unknown)
}

// Encode writes the report as text, json or yaml.
func (r Report) Encode(w io.Writer, format string) error {
	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(r); err == nil {
			err = enc.Close()
		}
	case FormatText, "":
		err = r.encodeText(w)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return errors.Join(ErrEncode, err)
	}
	return nil
}

func (r Report) encodeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, res := range r.Results {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			res.Status, res.Field, res.Kind, res.Value, res.Message); err != nil {
			return err
		}
	}
	return tw.Flush()
}
