package views

import (
	"fmt"

	"github.com/matheus3301/whatschat/internal/model"
	"github.com/rivo/tview"
)

// ChatList is the conversation list table.
type ChatList struct {
	*tview.Table
	chats      []model.Chat
	selectedFn func() (int, int)
}

// NewChatList creates a new chat list table.
func NewChatList() *ChatList {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false)
	table.SetBorder(true).SetTitle(" Chats ")

	cl := &ChatList{Table: table}
	cl.selectedFn = table.GetSelection
	return cl
}

// Update refreshes the chat list with new data.
func (cl *ChatList) Update(chats []model.Chat) {
	cl.chats = chats
	cl.Clear()

	cl.SetCell(0, 0, tview.NewTableCell(" Name").SetSelectable(false).SetTextColor(tview.Styles.SecondaryTextColor))
	cl.SetCell(0, 1, tview.NewTableCell(" Last Message").SetSelectable(false).SetTextColor(tview.Styles.SecondaryTextColor))
	cl.SetCell(0, 2, tview.NewTableCell(" Time").SetSelectable(false).SetTextColor(tview.Styles.SecondaryTextColor))

	for i, chat := range chats {
		row := i + 1
		name := chat.Participant.Name
		if chat.UnreadCount > 0 {
			name = fmt.Sprintf("* %s (%d)", name, chat.UnreadCount)
		}

		preview := "Start chatting"
		ts := ""
		if chat.Typing {
			preview = "[green::i]typing...[-:-:-]"
		} else if chat.LastMessage != nil {
			preview = ""
			if chat.LastMessage.FromMe {
				preview = ticks(chat.LastMessage.Status) + " "
			}
			preview += chat.LastMessage.Content
			ts = formatTimestamp(chat.LastMessage.Timestamp)
		}

		cl.SetCell(row, 0, tview.NewTableCell(" "+name).SetMaxWidth(30).SetExpansion(1))
		cl.SetCell(row, 1, tview.NewTableCell(" "+preview).SetMaxWidth(40).SetExpansion(2))
		cl.SetCell(row, 2, tview.NewTableCell(" "+ts).SetMaxWidth(12))
	}
}

// SelectedChat returns the id of the currently selected chat.
func (cl *ChatList) SelectedChat() string {
	row, _ := cl.selectedFn()
	idx := row - 1 // account for header
	if idx >= 0 && idx < len(cl.chats) {
		return cl.chats[idx].ID
	}
	return ""
}

// SelectedParticipant returns the participant of the selected chat.
func (cl *ChatList) SelectedParticipant() (model.User, bool) {
	row, _ := cl.selectedFn()
	idx := row - 1
	if idx >= 0 && idx < len(cl.chats) {
		return cl.chats[idx].Participant, true
	}
	return model.User{}, false
}
