package views

import (
	"fmt"

	"github.com/matheus3301/whatschat/internal/model"
	"github.com/rivo/tview"
)

// MessageView displays the thread for a single chat.
type MessageView struct {
	*tview.TextView
}

// NewMessageView creates a new message view.
func NewMessageView() *MessageView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	tv.SetBorder(true).SetTitle(" Messages ")

	return &MessageView{TextView: tv}
}

// SetChat updates the title with the chat participant and typing state.
func (mv *MessageView) SetChat(c model.Chat) {
	title := fmt.Sprintf(" %s ", c.Participant.Name)
	if c.Typing {
		title = fmt.Sprintf(" %s — typing... ", c.Participant.Name)
	} else if c.IsOnline {
		title = fmt.Sprintf(" %s — online ", c.Participant.Name)
	}
	mv.SetTitle(title)
}

// Update refreshes the view with the chat's message sequence, oldest first.
func (mv *MessageView) Update(self model.User, msgs []model.Message) {
	mv.Clear()

	for _, m := range msgs {
		sender := m.SenderID
		if m.FromMe {
			sender = self.Name
		} else {
			for _, u := range model.Contacts {
				if u.ID == m.SenderID {
					sender = u.Name
					break
				}
			}
		}

		line := fmt.Sprintf("[::b]%s[-:-:-] [::d]%s[-:-:-]", sender, formatTimestamp(m.Timestamp))
		if m.FromMe {
			line += " " + ticks(m.Status)
		}
		_, _ = fmt.Fprintf(mv, "%s\n%s\n\n", line, tview.Escape(m.Content))
	}

	mv.ScrollToEnd()
}
