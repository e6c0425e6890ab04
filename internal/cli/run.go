package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bluecheck/pkg/batch"
	"github.com/dmitrymomot/bluecheck/pkg/logger"
)

func (a *app) runSingle(ctx context.Context, check batch.Check) error {
	return a.run(ctx, []batch.Check{check}, a.cfg.IBANCountry)
}

func (a *app) runFile(ctx context.Context, path string) error {
	var r io.Reader = a.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		defer f.Close()
		r = f
	}

	doc, err := batch.Decode(r)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUsage, path, err)
	}

	// the file may pin its own language and IBAN country
	if doc.Lang != "" && !a.flags.changed("lang") {
		a.lang = a.translator.Match(doc.Lang)
	}
	country := a.cfg.IBANCountry
	if doc.IBANCountry != "" && !a.flags.changed("iban-country") {
		country = doc.IBANCountry
	}

	return a.run(ctx, doc.Checks, country)
}

func (a *app) run(ctx context.Context, checks []batch.Check, ibanCountry string) error {
	report, err := batch.Run(ctx, checks,
		batch.WithLogger(a.log),
		batch.WithTranslator(a.translator, a.lang),
		batch.WithIBANCountry(ibanCountry),
	)
	if err != nil && !errors.Is(err, batch.ErrRunCancelled) {
		return err
	}

	if encErr := report.Encode(a.stdout, a.cfg.Output); encErr != nil {
		return errors.Join(err, encErr)
	}
	if a.cfg.Output == batch.FormatText {
		fmt.Fprintln(a.stdout, report.Summary(a.translator, a.lang))
	}

	if err != nil {
		a.log.WarnContext(ctx, "batch interrupted", logger.Error(err))
		return err
	}
	if !report.OK() {
		return ErrChecksFailed
	}
	return nil
}

func newKindsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List accepted check kinds",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, kind := range batch.Kinds() {
				if _, err := fmt.Fprintln(a.stdout, kind); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
