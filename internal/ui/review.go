package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"grader/internal/domain"
)

// ReviewViewer browses the last run's non-passing cases in an interactive
// TUI: case list on the left, message and diff on the right.
type ReviewViewer struct{}

// NewReviewViewer creates a new ReviewViewer.
func NewReviewViewer() *ReviewViewer {
	return &ReviewViewer{}
}

// View displays the report's failure details. A report with no details means
// a clean run and renders nothing.
func (rv *ReviewViewer) View(report *domain.RunReport) error {
	if len(report.Details) == 0 {
		color.Green("✓ No failures in the last run!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	detailsView.SetBorder(true).SetTitle(" Detail ")

	showDetail := func(index int) {
		if index < 0 || index >= len(report.Details) {
			return
		}
		d := report.Details[index]
		var b strings.Builder
		fmt.Fprintf(&b, "[yellow]Suite:[white] %s\n", d.Suite)
		fmt.Fprintf(&b, "[yellow]Case:[white] %d — %s\n", d.Index, d.Desc)
		fmt.Fprintf(&b, "[yellow]Status:[white] %s\n\n", d.Status)
		fmt.Fprintf(&b, "%s\n", tview.Escape(d.Message))
		if d.Diff != "" {
			fmt.Fprintf(&b, "\n[yellow]Diff:[white]\n%s", tview.Escape(d.Diff))
		}
		detailsView.SetText(b.String())
		detailsView.ScrollToBeginning()
	}

	for i, d := range report.Details {
		main := fmt.Sprintf("[yellow]%d.[white] %s", i+1, d.Desc)
		secondary := fmt.Sprintf("%s #%d — %s", d.Suite, d.Index, d.Status)
		list.AddItem(main, secondary, 0, nil)
	}
	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showDetail(index)
	})
	showDetail(0)

	header := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf("[red]%d case(s) did not pass[white]  (mode: %s, run: %s)  —  q to quit, arrows to browse",
			len(report.Details), report.Meta.Mode, report.Meta.Timestamp))

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexColumn).
			AddItem(list, 0, 1, true).
			AddItem(detailsView, 0, 2, false), 0, 1, true)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' || event.Key() == tcell.KeyEscape {
			app.Stop()
			return nil
		}
		return event
	})

	return app.SetRoot(flex, true).Run()
}
