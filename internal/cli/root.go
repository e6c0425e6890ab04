package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bluecheck/pkg/batch"
	"github.com/dmitrymomot/bluecheck/pkg/environment"
	"github.com/dmitrymomot/bluecheck/pkg/i18n"
	"github.com/dmitrymomot/bluecheck/pkg/logger"
)

// Version is injected via ldflags at build time.
var Version = "dev"

const serviceName = "bluecheck"

// app carries what PersistentPreRunE prepares for the commands.
type app struct {
	flags      flagValues
	cfg        Config
	log        *slog.Logger
	translator *i18n.Translator
	lang       string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRootCommand builds the command tree writing to the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	var file string

	root := &cobra.Command{
		Use:   "bluecheck <kind> <value> [min max | step default]",
		Short: "Validate Polish identifiers, bank accounts and common formats",
		Long: `bluecheck validates NIP, PESEL and REGON numbers, NRB and IBAN bank
accounts, numeric ranges and steps, and values against named patterns.

Check a single value:

  bluecheck nip 487-828-07-98
  bluecheck range 0x1f 0x00 0xff
  bluecheck step 17 5 2

Or run every check listed in a YAML or JSON file ("-" reads stdin):

  bluecheck -f checks.yaml -o json

Exit status is 0 when every check passes, 1 when any fails and 2 on usage
or configuration errors.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				if len(args) > 0 {
					return fmt.Errorf("%w: arguments are not allowed with --file", ErrUsage)
				}
				return nil
			}
			if len(args) < 2 || len(args) > 4 {
				return fmt.Errorf("%w: expected <kind> <value> [min max | step default], got %d argument(s)", ErrUsage, len(args))
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" {
				return a.runFile(cmd.Context(), file)
			}
			return a.runSingle(cmd.Context(), checkFromArgs(args))
		},
	}

	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	a.flags.register(root.PersistentFlags())
	root.Flags().StringVarP(&file, "file", "f", "", `batch file with checks, "-" for stdin`)

	root.AddCommand(newKindsCommand(a))
	return root
}

// setup loads configuration and builds the logger and translator.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd.Flags(), &a.flags)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := logger.ParseLevel(cfg.LogLevel)
	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, serviceName),
		logger.WithLevel(level),
		logger.WithOutput(a.stderr),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	a.log = logger.New(opts...)

	ctx := environment.WithContext(cmd.Context(), environment.Parse(cfg.AppEnv))
	cmd.SetContext(ctx)

	a.translator, err = i18n.NewDefault(ctx, i18n.WithLogger(a.log), i18n.WithMissingTranslationsLogging(true))
	if err != nil {
		return errors.Join(ErrConfig, err)
	}
	a.lang = a.translator.Match(cfg.Lang)

	a.log.DebugContext(ctx, "configuration loaded",
		slog.String("lang", a.lang),
		slog.String("output", cfg.Output),
	)
	return nil
}

// Execute runs bluecheck with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdin, stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil, errors.Is(err, ErrChecksFailed):
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(stderr, "Error: %v\nRun '%s --help' for usage.\n", err, root.Name())
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitCode(err)
}

// checkFromArgs maps positional arguments to a Check. The optional third and
// fourth arguments are step and default for the step kind, min and max
// otherwise.
func checkFromArgs(args []string) batch.Check {
	c := batch.Check{Kind: args[0], Value: args[1]}
	var third, fourth string
	if len(args) > 2 {
		third = args[2]
	}
	if len(args) > 3 {
		fourth = args[3]
	}

	if c.Kind == batch.KindStep {
		c.Step, c.Default = third, fourth
	} else {
		c.Min, c.Max = third, fourth
	}
	return c
}
