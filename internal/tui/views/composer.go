package views

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Composer is the single-line input at the bottom of an open thread. On
// Enter it hands the entered text to the submit callback verbatim and
// clears the field; trimming and the empty-send rejection belong to the
// message engine, so the widget does not second-guess them.
type Composer struct {
	*tview.InputField
	onSubmit func(text string)
}

// NewComposer creates the thread composer.
func NewComposer() *Composer {
	c := &Composer{
		InputField: tview.NewInputField().
			SetLabel("> ").
			SetPlaceholder("Type a message").
			SetFieldWidth(0),
	}

	c.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter || c.onSubmit == nil {
			return
		}
		text := c.GetText()
		c.SetText("")
		c.onSubmit(text)
	})

	return c
}

// SetOnSend registers the callback invoked with the entered text on Enter.
func (c *Composer) SetOnSend(fn func(text string)) {
	c.onSubmit = fn
}
