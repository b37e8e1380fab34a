package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"testhelper/internal/domain"
)

func TestTAPFormatter(t *testing.T) {
	f := NewTAPFormatter()

	assert.Equal(t, []string{"TAP version 13"}, f.Header())
	assert.Equal(t, []string{"ok 1 - square(): expected 0, actual 0"},
		f.Comparison(domain.Comparison{Case: "square()", Expected: "0", Actual: "0", Passed: true}))
	assert.Equal(t, []string{"not ok 2 - square(): expected 5, actual 4"},
		f.Comparison(domain.Comparison{Case: "square()", Expected: "5", Actual: "4"}))

	sum := domain.CaseSummary{Name: "square()", Description: "basic", Passed: 1, Failed: 1}
	first := f.CaseSummary(sum)
	assert.Equal(t, []string{"# square() (basic): 1/2 passed, 1 failed (50.0%)"}, first)
	assert.Equal(t, first, f.CaseSummary(sum), "case summaries must not advance the test counter")

	assert.Equal(t, []string{
		"# TOTAL: 1/2 passed, 1 failed across 1 test(s) (50.0%)",
		"1..2",
	}, f.Totals(domain.Totals{Passed: 1, Failed: 1, Cases: 1, FailedCases: 1}))
}

func TestTAPFormatter_FailedSilentComparisonIsATestPoint(t *testing.T) {
	f := NewTAPFormatter()
	f.Header()

	assert.Equal(t, []string{"not ok 1 - square(): expected 5, actual 4 (silent)"},
		f.Comparison(domain.Comparison{Case: "square()", Expected: "5", Actual: "4", Silent: true}))
	assert.Equal(t, []string{
		"# TOTAL: 0/1 passed, 1 failed across 1 test(s) (0.0%)",
		"1..1",
	}, f.Totals(domain.Totals{Failed: 1, Cases: 1, FailedCases: 1}))
}

func TestTAPFormatter_PlanIsWrittenOnce(t *testing.T) {
	f := NewTAPFormatter()
	f.Header()
	f.Comparison(domain.Comparison{Case: "c", Expected: "1", Actual: "1", Passed: true})

	totals := domain.Totals{Passed: 1, Cases: 1}
	assert.Equal(t, []string{
		"# TOTAL: 1/1 passed, 0 failed across 1 test(s) (100.0%)",
		"1..1",
	}, f.Totals(totals))
	assert.Equal(t, []string{
		"# TOTAL: 1/1 passed, 0 failed across 1 test(s) (100.0%)",
	}, f.Totals(totals))
}
