package execution

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"testhelper/internal/domain"
	"testhelper/internal/registry"
	"testhelper/internal/reporter"
)

// Runner executes cases one after another on the calling goroutine
type Runner struct {
	session  *reporter.Session
	progress Progress
	log      *zap.Logger
	failFast bool
}

var _ Executor = (*Runner)(nil)

// Option configures a Runner
type Option func(*Runner)

// WithProgress reports progress after each case
func WithProgress(p Progress) Option {
	return func(r *Runner) { r.progress = p }
}

// WithFailFast stops the run after the first case with a failed comparison
func WithFailFast(enabled bool) Option {
	return func(r *Runner) { r.failFast = enabled }
}

// WithLogger sets the diagnostics logger
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRunner creates a Runner reporting into session
func NewRunner(session *reporter.Session, opts ...Option) *Runner {
	r := &Runner{
		session: session,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run begins the session, runs each case with a fresh Reporter, writes the
// per-test summary after each one, and finally the aggregate summary.
// Cancelling ctx stops the run between cases; the aggregate summary is still
// written for the cases that ran.
func (r *Runner) Run(ctx context.Context, cases []registry.Case) (domain.RunResult, error) {
	start := time.Now()
	if err := r.session.Begin(); err != nil {
		return domain.RunResult{}, err
	}

	var runErr error
	for i, c := range cases {
		if err := ctx.Err(); err != nil {
			runErr = fmt.Errorf("run interrupted after %d of %d test(s): %w", i, len(cases), err)
			break
		}

		sum := r.runCase(c)

		if r.progress != nil {
			totals := r.session.Totals()
			r.progress.Update(i+1, totals.Passed, totals.Failed)
		}
		if r.failFast && !sum.OK() {
			r.log.Info("stopping after first failed test", zap.String("case", c.Name))
			break
		}
	}
	if r.progress != nil {
		r.progress.Finish()
	}

	if err := r.session.FinishAll(); err != nil && runErr == nil {
		runErr = fmt.Errorf("write results: %w", err)
	}

	return domain.RunResult{
		Cases:    r.session.Cases(),
		Totals:   r.session.Totals(),
		Duration: time.Since(start),
	}, runErr
}

func (r *Runner) runCase(c registry.Case) domain.CaseSummary {
	rep := r.session.NewReporter(c.Name, c.Description)
	log := r.log.With(zap.String("case", c.Name))
	log.Debug("running test")

	func() {
		defer func() {
			if v := recover(); v != nil {
				log.Warn("test panicked", zap.Any("panic", v))
				rep.RecordPanic(v)
			}
		}()
		c.Func(rep)
	}()

	rep.FinishTest()
	sum := rep.Summary()
	log.Debug("test finished", zap.Int("passed", sum.Passed), zap.Int("failed", sum.Failed))
	return sum
}
