package views

import (
	"github.com/matheus3301/whatschat/internal/model"
	"github.com/rivo/tview"
)

// CallsView is the Calls tab: the seeded call history. Selecting an entry
// calls that contact back.
type CallsView struct {
	*tview.Table
	entries    []model.CallLogEntry
	selectedFn func() (int, int)
}

// NewCallsView creates the calls tab view.
func NewCallsView(entries []model.CallLogEntry) *CallsView {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false)
	table.SetBorder(true).SetTitle(" Calls ")

	cv := &CallsView{Table: table, entries: entries}
	cv.selectedFn = table.GetSelection

	table.SetCell(0, 0, tview.NewTableCell(" Contact").SetSelectable(false).SetTextColor(tview.Styles.SecondaryTextColor))
	table.SetCell(0, 1, tview.NewTableCell(" Type").SetSelectable(false).SetTextColor(tview.Styles.SecondaryTextColor))
	table.SetCell(0, 2, tview.NewTableCell(" When").SetSelectable(false).SetTextColor(tview.Styles.SecondaryTextColor))

	for i, e := range entries {
		kind := "voice"
		if e.IsVideo {
			kind = "video"
		}
		direction := "incoming"
		if e.Outgoing {
			direction = "outgoing"
		}
		if e.Missed {
			direction = "[red]missed[-]"
		}

		table.SetCell(i+1, 0, tview.NewTableCell(" "+e.Participant.Name).SetMaxWidth(30).SetExpansion(1))
		table.SetCell(i+1, 1, tview.NewTableCell(" "+direction+" "+kind).SetExpansion(1))
		table.SetCell(i+1, 2, tview.NewTableCell(" "+formatTimestamp(e.Timestamp)).SetMaxWidth(12))
	}

	return cv
}

// SelectedEntry returns the selected call log entry.
func (cv *CallsView) SelectedEntry() (model.CallLogEntry, bool) {
	row, _ := cv.selectedFn()
	idx := row - 1
	if idx >= 0 && idx < len(cv.entries) {
		return cv.entries[idx], true
	}
	return model.CallLogEntry{}, false
}
