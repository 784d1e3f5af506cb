package views

import (
	"fmt"
	"time"

	"github.com/rivo/tview"
)

// StatusBar displays the active tab and transient hints.
type StatusBar struct {
	*tview.TextView
	tab   string
	hint  string
	flash string
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)

	return &StatusBar{TextView: tv}
}

// SetTab updates the active tab display.
func (sb *StatusBar) SetTab(tab string) {
	sb.tab = tab
	sb.render()
}

// SetHint updates the key-binding hint.
func (sb *StatusBar) SetHint(hint string) {
	sb.hint = hint
	sb.render()
}

// SetFlash sets a temporary message.
func (sb *StatusBar) SetFlash(msg string) {
	sb.flash = msg
	sb.render()
}

func (sb *StatusBar) render() {
	sb.Clear()

	line := fmt.Sprintf(" [::b]whatschat[-:-:-] | %s | %s", sb.tab, time.Now().Format("15:04"))
	if sb.hint != "" {
		line += " | " + sb.hint
	}
	if sb.flash != "" {
		line += fmt.Sprintf(" | [yellow]%s[-]", sb.flash)
	}

	_, _ = fmt.Fprint(sb, line)
}
