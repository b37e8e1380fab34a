package domain

import "time"

// Comparison is a single expected-vs-actual check made by a test case
type Comparison struct {
	Case     string // Name of the test case that made the comparison
	Index    int    // 1-based position within the case
	Expected string // Expected value rendered as text
	Actual   string // Actual value rendered as text
	Passed   bool   // Whether expected == actual
	Silent   bool   // Counted but not printed
}

// CaseSummary holds the counters of one finished test case
type CaseSummary struct {
	Name        string
	Description string
	Passed      int
	Failed      int
	Failures    []Comparison // Failed comparisons, in order
	Panic       string       // Recovered panic value, empty if the case returned normally
}

// Count returns the number of comparisons performed
func (s CaseSummary) Count() int {
	return s.Passed + s.Failed
}

// OK reports whether the case finished without failed comparisons
func (s CaseSummary) OK() bool {
	return s.Failed == 0
}

// Totals holds the aggregate counters across every case of a session
type Totals struct {
	Passed      int
	Failed      int
	Cases       int
	FailedCases int
}

// Count returns the number of comparisons performed
func (t Totals) Count() int {
	return t.Passed + t.Failed
}

// RunResult is the outcome of running a list of cases
type RunResult struct {
	Cases    []CaseSummary
	Totals   Totals
	Duration time.Duration
}

// Failed reports whether any comparison of the run failed
func (r RunResult) Failed() bool {
	return r.Totals.Failed > 0
}
