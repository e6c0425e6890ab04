package batch

import (
	"log/slog"

	"github.com/dmitrymomot/bluecheck/pkg/logger"
	"github.com/dmitrymomot/bluecheck/pkg/validator"
)

type runner struct {
	logger      *slog.Logger
	translator  validator.Translator
	lang        string
	ibanCountry string
}

func newRunner(opts ...Option) *runner {
	r := &runner{
		logger:      logger.Discard(),
		lang:        "en",
		ibanCountry: validator.DefaultIBANCountry,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Option configures Run.
type Option func(*runner)

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTranslator localizes result messages into lang. Without it messages
// are the English defaults of the validator package.
func WithTranslator(t validator.Translator, lang string) Option {
	return func(r *runner) {
		r.translator = t
		if lang != "" {
			r.lang = lang
		}
	}
}

// WithIBANCountry sets the country prefixed to IBANs given without one.
func WithIBANCountry(code string) Option {
	return func(r *runner) {
		if code != "" {
			r.ibanCountry = code
		}
	}
}
