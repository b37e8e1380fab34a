package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"testhelper/internal/domain"
)

// TextFormatter renders human-readable result lines
type TextFormatter struct {
	pass  *color.Color
	fail  *color.Color
	name  *color.Color
	total *color.Color
}

// NewTextFormatter creates a TextFormatter. When useColor is false no escape
// sequences are emitted regardless of the terminal.
func NewTextFormatter(useColor bool) *TextFormatter {
	f := &TextFormatter{
		pass:  color.New(color.FgGreen, color.Bold),
		fail:  color.New(color.FgRed, color.Bold),
		name:  color.New(color.FgCyan),
		total: color.New(color.FgWhite, color.Bold),
	}
	for _, c := range []*color.Color{f.pass, f.fail, f.name, f.total} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// Header returns no lines; plain text output has no preamble
func (f *TextFormatter) Header() []string {
	return nil
}

// Comparison renders one printed comparison. Silent comparisons produce no
// line; their failures show up in the case summary.
func (f *TextFormatter) Comparison(c domain.Comparison) []string {
	if c.Silent {
		return nil
	}
	marker := f.pass.Sprint("[PASS]")
	if !c.Passed {
		marker = f.fail.Sprint("[FAIL]")
	}
	return []string{fmt.Sprintf("%s %s: expected %s, actual %s", marker, f.name.Sprint(c.Case), c.Expected, c.Actual)}
}

// CaseSummary renders the per-test summary line
func (f *TextFormatter) CaseSummary(s domain.CaseSummary) []string {
	title := f.name.Sprint(s.Name)
	if s.Description != "" {
		title += " (" + s.Description + ")"
	}
	line := fmt.Sprintf("%s: %s", title, f.counts(s.Passed, s.Failed))
	if s.Panic != "" {
		line += " " + f.fail.Sprint("[panic: "+s.Panic+"]")
	}
	return []string{line}
}

// Totals renders the aggregate summary line
func (f *TextFormatter) Totals(t domain.Totals) []string {
	return []string{fmt.Sprintf("%s %s", f.total.Sprint("TOTAL:"), f.countsAcross(t))}
}

func (f *TextFormatter) counts(passed, failed int) string {
	total := passed + failed
	failedText := fmt.Sprintf("%d failed", failed)
	if failed > 0 {
		failedText = f.fail.Sprint(failedText)
	}
	return fmt.Sprintf("%d/%d passed, %s (%s)", passed, total, failedText, ratioText(passed, total))
}

func (f *TextFormatter) countsAcross(t domain.Totals) string {
	failedText := fmt.Sprintf("%d failed", t.Failed)
	if t.Failed > 0 {
		failedText = f.fail.Sprint(failedText)
	}
	return fmt.Sprintf("%d/%d passed, %s across %d test(s) (%s)", t.Passed, t.Count(), failedText, t.Cases, ratioText(t.Passed, t.Count()))
}

func ratioText(passed, total int) string {
	pct, ok := domain.Ratio(passed, total)
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", pct)
}

// CaseInfo is the listing view of a registered case
type CaseInfo struct {
	Name        string
	Description string
}

// PrintCaseList prints the selected cases as a tree. registered is the size
// of the whole registry; the header mentions it when the selection is smaller.
func PrintCaseList(w io.Writer, cases []CaseInfo, registered int) {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	if registered > len(cases) {
		green.Fprintf(w, "Found %d of %d test case(s):\n", len(cases), registered)
	} else {
		green.Fprintf(w, "Found %d test case(s):\n", len(cases))
	}
	for i, c := range cases {
		isLast := i == len(cases)-1
		branch, indent := "├── ", "│   └── "
		if isLast {
			branch, indent = "└── ", "    └── "
		}
		cyan.Fprintf(w, "%s%s\n", branch, c.Name)
		if c.Description != "" {
			fmt.Fprintf(w, "%s%s\n", indent, yellow.Sprint(c.Description))
		}
	}
}
