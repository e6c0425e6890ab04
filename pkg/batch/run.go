package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/bluecheck/pkg/logger"
	"github.com/dmitrymomot/bluecheck/pkg/validator"
)

// Run evaluates checks and returns a report with one result per check, in
// input order. The context is consulted before each check is started; on
// cancellation Run returns the results gathered so far together with an
// error wrapping ErrRunCancelled.
func Run(ctx context.Context, checks []Check, opts ...Option) (Report, error) {
	r := newRunner(opts...)
	report := Report{ID: uuid.New(), Lang: r.lang}
	log := r.logger.With(logger.ReportID(report.ID), logger.Component("batch"))
	start := time.Now()

	if len(checks) == 0 {
		return report, ErrNoChecks
	}

	var runErr error
	for _, c := range checks {
		if err := ctx.Err(); err != nil {
			runErr = errors.Join(ErrRunCancelled, err)
			break
		}
		report.add(r.evaluate(ctx, log, c))
	}

	log.InfoContext(ctx, "batch finished",
		slog.Int("passed", report.Passed),
		slog.Int("failed", report.Failed),
		slog.Int("unknown", report.Unknown),
		logger.Duration(time.Since(start)),
		logger.Error(runErr),
	)
	return report, runErr
}

func (r *runner) evaluate(ctx context.Context, log *slog.Logger, c Check) Result {
	res := Result{Field: c.name(), Kind: c.Kind, Value: c.Value}
	log = log.With(logger.Kind(c.Kind), logger.Field(res.Field))

	rule, reason, err := r.rule(c)
	switch {
	case errors.Is(err, validator.ErrUnknownPattern):
		res.Status = StatusUnknown
		res.Reason = err.Error()
		res.Message = r.translate("batch.unknown", "unknown check")
		log.WarnContext(ctx, "unknown check kind")
		return res
	case err != nil:
		res.Status = StatusFailed
		res.Reason = err.Error()
		res.Message = err.Error()
		log.WarnContext(ctx, "invalid check", logger.Error(err))
		return res
	}

	verrs := validator.ExtractValidationErrors(validator.Apply(rule))
	if verrs.IsEmpty() {
		res.Status = StatusPassed
		log.DebugContext(ctx, "check passed")
		return res
	}

	res.Status = StatusFailed
	res.Reason = reason.Error()
	res.Message = verrs[0].Localize(r.translator, r.lang)
	log.DebugContext(ctx, "check failed", slog.String("reason", res.Reason))
	return res
}

func (r *runner) translate(key, fallback string) string {
	if r.translator == nil {
		return fallback
	}
	if msg := r.translator.T(r.lang, key); msg != "" && msg != key {
		return msg
	}
	return fallback
}

// rule maps a check to its validator rule and the sentinel reported when the
// rule fails. The error is non-nil for unknown kinds or unusable parameters.
func (r *runner) rule(c Check) (validator.Rule, error, error) {
	field := c.name()

	switch c.Kind {
	case KindNIP:
		return validator.ValidNIP(field, c.Value), validator.ErrInvalidChecksum, nil
	case KindPESEL:
		return validator.ValidPESEL(field, c.Value), validator.ErrInvalidChecksum, nil
	case KindREGON:
		return validator.ValidREGON(field, c.Value), validator.ErrInvalidChecksum, nil
	case KindNRB:
		return validator.ValidNRB(field, c.Value), validator.ErrInvalidChecksum, nil
	case KindIBAN:
		rule := validator.ValidIBAN(field, c.Value, validator.WithDefaultCountry(r.ibanCountry))
		return rule, validator.ErrInvalidChecksum, nil
	case KindMail:
		return validator.ValidMail(field, c.Value), validator.ErrInvalidFormat, nil
	case KindPrice:
		return validator.ValidPrice(field, c.Value), validator.ErrInvalidFormat, nil
	case KindPostcode:
		return validator.ValidPostcode(field, c.Value), validator.ErrInvalidFormat, nil
	case KindPhone:
		return validator.ValidPhone(field, c.Value), validator.ErrInvalidFormat, nil
	case KindURL:
		return validator.ValidURL(field, c.Value, validator.URLBasic), validator.ErrInvalidFormat, nil
	case KindRange:
		return validator.InRange(field, c.Value, c.Min, c.Max), validator.ErrOutOfRange, nil
	case KindStep:
		if c.Step == "" {
			return validator.Rule{}, nil, fmt.Errorf("%w: step is required", ErrInvalidCheck)
		}
		return validator.ValidStep(field, c.Value, c.Step, c.Default), validator.ErrOutOfRange, nil
	case KindLength:
		lo, err := parseLengthBound(c.Min)
		if err != nil {
			return validator.Rule{}, nil, fmt.Errorf("%w: min: %w", ErrInvalidCheck, err)
		}
		hi, err := parseLengthBound(c.Max)
		if err != nil {
			return validator.Rule{}, nil, fmt.Errorf("%w: max: %w", ErrInvalidCheck, err)
		}
		return validator.LengthBetween(field, c.Value, lo, hi), validator.ErrOutOfRange, nil
	case KindUnderZero:
		v, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(c.Value), ",", ".", 1), 64)
		if err != nil {
			return validator.Rule{}, nil, fmt.Errorf("%w: value is not a number", validator.ErrInvalidFormat)
		}
		return validator.Negative(field, v), validator.ErrOutOfRange, nil
	}

	if _, known := validator.Pattern(c.Kind); known {
		return validator.MatchesPattern(field, c.Value, c.Kind), validator.ErrInvalidFormat, nil
	}
	return validator.Rule{}, nil, fmt.Errorf("%w: %q", validator.ErrUnknownPattern, c.Kind)
}

func parseLengthBound(s string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return validator.Unbounded, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative bound %d", n)
	}
	return n, nil
}
