package ui

import (
	"fmt"

	tap "github.com/mndrix/tap-go"

	"testhelper/internal/domain"
	"testhelper/internal/sink"
)

// TAPFormatter renders results as TAP version 13. Each printed comparison
// and each failed silent comparison is one test point; summaries are
// diagnostics and the plan trails.
type TAPFormatter struct {
	t       *tap.T
	lines   *sink.Buffer
	planned bool
}

// NewTAPFormatter creates a TAPFormatter
func NewTAPFormatter() *TAPFormatter {
	f := &TAPFormatter{t: tap.New(), lines: sink.NewBuffer()}
	f.t.Writer = sink.NewLineWriter(f.lines)
	return f
}

// Header returns the TAP version line
func (f *TAPFormatter) Header() []string {
	f.t.Header(0)
	return f.flush()
}

// Comparison renders a test point
func (f *TAPFormatter) Comparison(c domain.Comparison) []string {
	desc := fmt.Sprintf("%s: expected %s, actual %s", c.Case, c.Expected, c.Actual)
	if c.Silent {
		desc += " (silent)"
	}
	f.t.Ok(c.Passed, desc)
	return f.flush()
}

// CaseSummary renders the per-test summary as a diagnostic
func (f *TAPFormatter) CaseSummary(s domain.CaseSummary) []string {
	title := s.Name
	if s.Description != "" {
		title += " (" + s.Description + ")"
	}
	msg := fmt.Sprintf("%s: %d/%d passed, %d failed (%s)", title, s.Passed, s.Count(), s.Failed, ratioText(s.Passed, s.Count()))
	if s.Panic != "" {
		msg += " [panic: " + s.Panic + "]"
	}
	f.t.Diagnostic(msg)
	return f.flush()
}

// Totals renders the aggregate diagnostic followed by the plan. The plan is
// written on the first call only.
func (f *TAPFormatter) Totals(t domain.Totals) []string {
	f.t.Diagnostic(fmt.Sprintf("TOTAL: %d/%d passed, %d failed across %d test(s) (%s)",
		t.Passed, t.Count(), t.Failed, t.Cases, ratioText(t.Passed, t.Count())))
	if !f.planned {
		f.t.AutoPlan()
		f.planned = true
	}
	return f.flush()
}

// tap-go writes whole newline-terminated lines, so the line writer never
// holds a partial line between calls.
func (f *TAPFormatter) flush() []string {
	return f.lines.Drain()
}
