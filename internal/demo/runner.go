// Package demo narrates login validation scenarios to a terminal.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/fieldrules/pkg/logger"
	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// Summary counts scenario outcomes of a Run.
type Summary struct {
	Total      int
	Passed     int
	Failed     int
	Unexpected int
}

// OK reports whether every scenario behaved as expected.
func (s Summary) OK() bool {
	return s.Unexpected == 0
}

// Runner validates subjects and writes one narrated line per outcome.
type Runner struct {
	out  io.Writer
	tr   Translator
	lang string
	log  *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger. Records are discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRunner creates a Runner writing to out in lang.
func NewRunner(out io.Writer, tr Translator, lang string, opts ...Option) *Runner {
	r := &Runner{
		out:  out,
		tr:   tr,
		lang: lang,
		log:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(logger.Component("demo"), logger.Lang(lang))
	return r
}

// Run validates every scenario and narrates the outcome.
func (r *Runner) Run(ctx context.Context, scenarios ...Scenario) (Summary, error) {
	var sum Summary
	for _, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		sum.Total++

		err := sc.Request.Validate()
		verr, failed := validator.AsValidationError(err)
		if err != nil && !failed {
			return sum, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}

		if failed {
			sum.Failed++
		} else {
			sum.Passed++
		}

		attrs := []any{logger.Scenario(sc.Name), logger.Subject(sc.Request.Schema().Subject())}
		if failed {
			attrs = append(attrs, violationAttr(verr))
		}

		if !outcomeMatches(err, sc.Want) {
			sum.Unexpected++
			r.log.WarnContext(ctx, "unexpected scenario outcome", append(attrs,
				slog.String("expected", kindName(sc.Want)),
				slog.String("actual", kindName(verr.Kind)),
			)...)
			r.println(r.tr.T(r.lang, "demo.unexpected",
				"scenario", sc.Name,
				"expected", r.outcome(sc.Want),
				"actual", r.outcome(verr.Kind),
			))
			continue
		}

		r.log.InfoContext(ctx, "scenario validated", attrs...)
		if failed {
			r.println(r.tr.T(r.lang, "demo.scenario_fail", "scenario", sc.Name, "message", Message(r.tr, r.lang, verr)))
		} else {
			r.println(r.tr.T(r.lang, "demo.scenario_ok", "scenario", sc.Name))
		}
	}

	r.println(r.tr.T(r.lang, "demo.summary",
		"total", strconv.Itoa(sum.Total),
		"passed", strconv.Itoa(sum.Passed),
		"failed", strconv.Itoa(sum.Failed),
		"unexpected", strconv.Itoa(sum.Unexpected),
	))
	return sum, nil
}

// Check validates one subject, halting on the first violation unless all is
// set, and narrates every violation found. It returns the validation error.
func (r *Runner) Check(ctx context.Context, subject validator.Subject, all bool) error {
	validate := validator.Validate
	if all {
		validate = validator.ValidateAll
	}

	err := validate(subject)
	if err == nil {
		name := subject.Schema().Subject()
		r.log.InfoContext(ctx, "subject valid", logger.Subject(name))
		r.println(r.tr.T(r.lang, "check.valid", "subject", name))
		return nil
	}

	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return err
	}

	for _, verr := range verrs {
		r.log.InfoContext(ctx, "subject invalid", logger.Subject(subject.Schema().Subject()), violationAttr(verr))
		r.println(r.tr.T(r.lang, "check.violation", "message", Message(r.tr, r.lang, verr)))
	}
	return err
}

func (r *Runner) outcome(kind error) string {
	if kind == nil {
		return r.tr.Td(r.lang, "outcome.valid", "valid")
	}
	return kindName(kind)
}

func (r *Runner) println(line string) {
	_, _ = fmt.Fprintln(r.out, line)
}

func outcomeMatches(err, want error) bool {
	if want == nil {
		return err == nil
	}
	return errors.Is(err, want)
}
