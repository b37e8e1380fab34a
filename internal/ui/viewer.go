package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"testhelper/internal/domain"
)

// maxDetailFailures caps how many failed comparisons the details pane lists.
const maxDetailFailures = 50

// RunViewer browses the cases of a finished run in an interactive TUI
type RunViewer struct{}

// NewRunViewer creates a RunViewer
func NewRunViewer() *RunViewer {
	return &RunViewer{}
}

// View blocks until the user quits the browser
func (v *RunViewer) View(result domain.RunResult) error {
	if len(result.Cases) == 0 {
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for _, c := range result.Cases {
		list.AddItem(caseListText(c), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(headerText(result.Totals))

	updateDetails := func(index int) {
		if index >= 0 && index < len(result.Cases) {
			detailsView.SetText(caseDetails(result.Cases[index]))
			detailsView.ScrollToBeginning()
		}
	}
	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails(index)
	})
	updateDetails(0)

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyEsc, tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func headerText(t domain.Totals) string {
	return fmt.Sprintf(" %d test(s), [green]%d passed[white], [red]%d failed[white] | ↑↓ navigate, → details, ← back, q to exit ",
		t.Cases, t.Passed, t.Failed)
}

// caseListText formats a list entry using tview colour tags
func caseListText(s domain.CaseSummary) string {
	if s.OK() {
		return fmt.Sprintf("[green]✓[white] %s [gray](%d/%d)[white]", tview.Escape(s.Name), s.Passed, s.Count())
	}
	return fmt.Sprintf("[red]✗[white] %s [gray](%d/%d)[white]", tview.Escape(s.Name), s.Passed, s.Count())
}

// caseDetails formats the details pane for one case
func caseDetails(s domain.CaseSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[cyan]Test:[white] %s\n", tview.Escape(s.Name))
	if s.Description != "" {
		fmt.Fprintf(&b, "[cyan]Description:[white] %s\n", tview.Escape(s.Description))
	}
	fmt.Fprintf(&b, "[cyan]Comparisons:[white] %d passed, %d failed (%s)\n\n", s.Passed, s.Failed, ratioText(s.Passed, s.Count()))

	if s.Panic != "" {
		fmt.Fprintf(&b, "[red]Panic:[white] %s\n\n", tview.Escape(s.Panic))
	}
	if len(s.Failures) == 0 {
		b.WriteString("[green]No failed comparisons[white]\n")
		return b.String()
	}

	b.WriteString("[yellow]Failed comparisons:[white]\n")
	for i, f := range s.Failures {
		if i == maxDetailFailures {
			fmt.Fprintf(&b, "  [gray]... and %d more[white]\n", len(s.Failures)-maxDetailFailures)
			break
		}
		fmt.Fprintf(&b, "  #%d expected %s, actual %s\n", f.Index, tview.Escape(f.Expected), tview.Escape(f.Actual))
	}
	return b.String()
}
