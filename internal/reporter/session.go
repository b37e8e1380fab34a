// Package reporter compares expected and actual values for named test cases
// and reports the outcome through a line-oriented sink.
package reporter

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"testhelper/internal/domain"
	"testhelper/internal/sink"
)

// Formatter renders reporting events as output lines
type Formatter interface {
	Header() []string
	Comparison(c domain.Comparison) []string
	CaseSummary(s domain.CaseSummary) []string
	Totals(t domain.Totals) []string
}

// Observer is notified of every comparison and finished case
type Observer interface {
	ObserveComparison(c domain.Comparison)
	ObserveCase(s domain.CaseSummary)
}

// ErrNotStarted is returned when output is attempted before Begin.
var ErrNotStarted = errors.New("session not started")

// Session owns the aggregate counters shared by every Reporter it creates.
// A Session is not safe for concurrent use.
type Session struct {
	sink      sink.Sink
	formatter Formatter
	observers []Observer
	log       *zap.Logger

	totals  domain.Totals
	cases   []domain.CaseSummary
	started bool
	err     error
}

// Option configures a Session
type Option func(*Session)

// WithObserver registers an Observer
func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSession creates a Session writing through f to out
func NewSession(out sink.Sink, f Formatter, opts ...Option) *Session {
	if out == nil {
		out = sink.Nop{}
	}
	s := &Session{
		sink:      out,
		formatter: f,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Begin starts the session and writes the formatter header. It fails when
// the header cannot be written, which means nothing can be reported.
func (s *Session) Begin() error {
	if s.started {
		return nil
	}
	s.started = true
	if err := s.writeLines(s.formatter.Header()); err != nil {
		return fmt.Errorf("initialize output: %w", err)
	}
	s.log.Debug("session started")
	return nil
}

// NewReporter creates a Reporter for the named test case
func (s *Session) NewReporter(name, description string) *Reporter {
	return &Reporter{
		name:        name,
		description: description,
		session:     s,
	}
}

// Totals returns the aggregate counters
func (s *Session) Totals() domain.Totals {
	return s.totals
}

// Cases returns the summaries of every finished case in order
func (s *Session) Cases() []domain.CaseSummary {
	out := make([]domain.CaseSummary, len(s.cases))
	copy(out, s.cases)
	return out
}

// Err returns the first output error, if any
func (s *Session) Err() error {
	return s.err
}

// FinishAll writes the aggregate summary line. Calling it again repeats the
// summary; formatters with a trailing plan emit it only once.
func (s *Session) FinishAll() error {
	if !s.started {
		return ErrNotStarted
	}
	s.writeLines(s.formatter.Totals(s.totals))
	s.log.Info("all tests finished",
		zap.Int("passed", s.totals.Passed),
		zap.Int("failed", s.totals.Failed),
		zap.Int("cases", s.totals.Cases),
	)
	return s.err
}

func (s *Session) record(c domain.Comparison) {
	if c.Passed {
		s.totals.Passed++
	} else {
		s.totals.Failed++
	}
	for _, o := range s.observers {
		o.ObserveComparison(c)
	}
	// passing silent comparisons never reach the formatter
	if !c.Silent || !c.Passed {
		s.writeLines(s.formatter.Comparison(c))
	}
}

func (s *Session) caseFinished(sum domain.CaseSummary) {
	s.totals.Cases++
	if !sum.OK() {
		s.totals.FailedCases++
	}
	s.cases = append(s.cases, sum)
	for _, o := range s.observers {
		o.ObserveCase(sum)
	}
}

// writeLines keeps the first error; later writes are still attempted.
func (s *Session) writeLines(lines []string) error {
	if !s.started {
		if s.err == nil {
			s.err = ErrNotStarted
		}
		return ErrNotStarted
	}
	for _, line := range lines {
		if err := s.sink.WriteLine(line); err != nil {
			if s.err == nil {
				s.err = err
				s.log.Error("write result line", zap.Error(err))
			}
			return err
		}
	}
	return nil
}
