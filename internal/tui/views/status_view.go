package views

import (
	"fmt"

	"github.com/matheus3301/whatschat/internal/model"
	"github.com/rivo/tview"
)

// StatusView is the Status tab: a static list of contacts with their about
// lines. Display only.
type StatusView struct {
	*tview.Table
}

// NewStatusView creates the status tab view.
func NewStatusView(contacts []model.User) *StatusView {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false)
	table.SetBorder(true).SetTitle(" Status ")

	sv := &StatusView{Table: table}

	table.SetCell(0, 0, tview.NewTableCell(" Contact").SetSelectable(false).SetTextColor(tview.Styles.SecondaryTextColor))
	table.SetCell(0, 1, tview.NewTableCell(" About").SetSelectable(false).SetTextColor(tview.Styles.SecondaryTextColor))

	for i, u := range contacts {
		table.SetCell(i+1, 0, tview.NewTableCell(" "+u.Name).SetMaxWidth(30).SetExpansion(1))
		table.SetCell(i+1, 1, tview.NewTableCell(fmt.Sprintf(" %s", u.About)).SetExpansion(2))
	}

	return sv
}
