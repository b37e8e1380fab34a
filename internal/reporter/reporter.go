package reporter

import (
	"fmt"
	"strconv"
	"strings"

	"testhelper/internal/domain"
)

// Reporter counts the comparisons of one named test case
type Reporter struct {
	name        string
	description string
	passed      int
	failed      int
	failures    []domain.Comparison
	panicMsg    string
	summarized  bool
	session     *Session
}

// Name returns the test case name
func (r *Reporter) Name() string { return r.name }

// Description returns the test case description
func (r *Reporter) Description() string { return r.description }

// Passed returns the number of passed comparisons
func (r *Reporter) Passed() int { return r.passed }

// Failed returns the number of failed comparisons
func (r *Reporter) Failed() int { return r.failed }

// Count returns the number of comparisons performed
func (r *Reporter) Count() int { return r.passed + r.failed }

// Summary returns a snapshot of the reporter's counters
func (r *Reporter) Summary() domain.CaseSummary {
	failures := make([]domain.Comparison, len(r.failures))
	copy(failures, r.failures)
	return domain.CaseSummary{
		Name:        r.name,
		Description: r.description,
		Passed:      r.passed,
		Failed:      r.failed,
		Failures:    failures,
		Panic:       r.panicMsg,
	}
}

// FinishTest writes the summary line for this case. It only reads the
// counters, so repeated calls write identical lines. The case is added to the
// session's finished list the first time.
func (r *Reporter) FinishTest() {
	sum := r.Summary()
	if !r.summarized {
		r.summarized = true
		r.session.caseFinished(sum)
	}
	r.session.writeLines(r.session.formatter.CaseSummary(sum))
}

// RecordPanic counts a recovered panic as a failed comparison
func (r *Reporter) RecordPanic(v any) {
	r.panicMsg = formatValue(v)
	r.record("no panic", "panic: "+r.panicMsg, false, false)
}

func (r *Reporter) record(expected, actual string, ok, silent bool) bool {
	if ok {
		r.passed++
	} else {
		r.failed++
	}
	c := domain.Comparison{
		Case:     r.name,
		Index:    r.passed + r.failed,
		Expected: expected,
		Actual:   actual,
		Passed:   ok,
		Silent:   silent,
	}
	if !ok {
		r.failures = append(r.failures, c)
	}
	r.session.record(c)
	return ok
}

// Compare reports whether expected == actual and counts the outcome without
// writing anything.
func Compare[T comparable](r *Reporter, expected, actual T) bool {
	ok := expected == actual
	if ok {
		// Passing silent comparisons are not rendered, skip the formatting.
		return r.record("", "", true, true)
	}
	return r.record(formatValue(expected), formatValue(actual), false, true)
}

// Report compares like Compare and also writes one result line with the case
// name, both values and a pass/fail marker.
func Report[T comparable](r *Reporter, expected, actual T) bool {
	return r.record(formatValue(expected), formatValue(actual), expected == actual, false)
}

// formatValue renders v on a single line. Values containing line breaks or
// other control characters are quoted with Go escapes.
func formatValue(v any) string {
	s := fmt.Sprint(v)
	if strings.ContainsFunc(s, isControl) {
		return strconv.Quote(s)
	}
	return s
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
