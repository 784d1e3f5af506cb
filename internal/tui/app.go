package tui

import (
	"context"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/whatschat/internal/bus"
	"github.com/matheus3301/whatschat/internal/call"
	"github.com/matheus3301/whatschat/internal/chat"
	"github.com/matheus3301/whatschat/internal/model"
	"github.com/matheus3301/whatschat/internal/tui/views"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// App is the presentation shell. It issues intents into the two engines and
// re-renders from their snapshots when bus events arrive; no business logic
// lives here.
type App struct {
	app    *tview.Application
	pages  *tview.Pages
	engine *chat.Engine
	calls  *call.Engine
	bus    *bus.Bus
	logger *zap.Logger

	statusBar *views.StatusBar
	chatList  *views.ChatList
	msgView   *views.MessageView
	composer  *views.Composer
	callView  *views.CallView
	statusV   *views.StatusView
	callsV    *views.CallsView

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the TUI application over the two engines.
func NewApp(engine *chat.Engine, calls *call.Engine, b *bus.Bus, logger *zap.Logger) *App {
	ctx, cancel := context.WithCancel(context.Background())

	a := &App{
		app:       tview.NewApplication(),
		pages:     tview.NewPages(),
		engine:    engine,
		calls:     calls,
		bus:       b,
		logger:    logger,
		statusBar: views.NewStatusBar(),
		chatList:  views.NewChatList(),
		msgView:   views.NewMessageView(),
		composer:  views.NewComposer(),
		callView:  views.NewCallView(),
		statusV:   views.NewStatusView(model.Contacts),
		callsV:    views.NewCallsView(model.SeedCallLog()),
		ctx:       ctx,
		cancel:    cancel,
	}

	// The call overlay renders the local self-view label.
	calls.Preview = a.callView

	a.setupCallbacks()
	a.setupLayout()

	return a
}

func (a *App) setupCallbacks() {
	a.chatList.SetSelectedFunc(func(row, col int) {
		if id := a.chatList.SelectedChat(); id != "" {
			a.openChat(id)
		}
	})

	a.composer.SetOnSend(func(text string) {
		chatID := a.engine.Store().Active()
		if chatID == "" {
			return
		}
		go func() {
			if _, err := a.engine.SendMessage(a.ctx, chatID, text); err != nil {
				// Invalid intents are silent no-ops by contract.
				a.logger.Debug("send rejected", zap.Error(err))
			}
		}()
	})

	a.callsV.SetSelectedFunc(func(row, col int) {
		if entry, ok := a.callsV.SelectedEntry(); ok {
			a.startCall(entry.Participant, entry.IsVideo)
		}
	})
}

func (a *App) setupLayout() {
	chatFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.msgView, 0, 1, false).
		AddItem(a.composer, 1, 0, false)

	a.pages.AddPage("chats", a.chatList, true, true)
	a.pages.AddPage("chat", chatFlex, true, false)
	a.pages.AddPage("status", a.statusV, true, false)
	a.pages.AddPage("calls", a.callsV, true, false)
	a.pages.AddPage("call", a.callView, true, false)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.statusBar, 1, 0, false)

	a.app.SetRoot(root, true)
	a.statusBar.SetTab("CHATS")
	a.statusBar.SetHint("enter:open  tab:switch  c:call  v:video  q:quit")

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		currentPage, _ := a.pages.GetFrontPage()

		// The call overlay owns its keys until the call ends.
		if currentPage == "call" {
			if event.Key() == tcell.KeyRune {
				switch event.Rune() {
				case 'm':
					a.calls.ToggleMute()
					return nil
				case 'o':
					a.calls.ToggleCamera()
					return nil
				case 'h':
					a.calls.End()
					return nil
				}
			}
			return nil
		}

		if event.Key() == tcell.KeyEscape && currentPage == "chat" {
			a.engine.SetActiveChat("")
			a.switchTab("chats", "CHATS")
			return nil
		}

		if event.Key() == tcell.KeyTab && currentPage != "chat" {
			switch currentPage {
			case "chats":
				a.switchTab("status", "STATUS")
			case "status":
				a.switchTab("calls", "CALLS")
			default:
				a.switchTab("chats", "CHATS")
			}
			return nil
		}

		// Let text input widgets handle all keys normally.
		if _, ok := a.app.GetFocus().(*tview.InputField); ok {
			return event
		}

		if event.Key() == tcell.KeyRune {
			switch event.Rune() {
			case 'q':
				a.app.Stop()
				return nil
			case 'i':
				if currentPage == "chat" {
					a.app.SetFocus(a.composer.InputField)
					return nil
				}
			case 'c', 'v':
				if participant, ok := a.callTarget(currentPage); ok {
					a.startCall(participant, event.Rune() == 'v')
					return nil
				}
			}
		}

		return event
	})
}

// callTarget resolves which participant a call intent refers to on the
// current page.
func (a *App) callTarget(page string) (model.User, bool) {
	switch page {
	case "chats":
		return a.chatList.SelectedParticipant()
	case "chat":
		if c, ok := a.engine.Store().Chat(a.engine.Store().Active()); ok {
			return c.Participant, true
		}
	}
	return model.User{}, false
}

func (a *App) openChat(id string) {
	a.engine.SetActiveChat(id)
	if c, ok := a.engine.Store().Chat(id); ok {
		a.msgView.SetChat(c)
		a.msgView.Update(a.engine.Self, a.engine.Store().Messages(id))
	}
	a.pages.SwitchToPage("chat")
	a.statusBar.SetTab("CHATS")
	a.statusBar.SetHint("i:compose  esc:back  c:call  v:video")
	a.app.SetFocus(a.composer.InputField)
}

func (a *App) startCall(participant model.User, video bool) {
	a.calls.Start(participant, video)
	a.callView.Update(a.calls.Snapshot())
	a.pages.SwitchToPage("call")
	a.statusBar.SetHint("m:mute  o:camera  h:hang up")
}

func (a *App) switchTab(page, label string) {
	a.pages.SwitchToPage(page)
	a.statusBar.SetTab(label)
	switch page {
	case "chats":
		a.statusBar.SetHint("enter:open  tab:switch  c:call  v:video  q:quit")
		a.app.SetFocus(a.chatList)
	case "status":
		a.statusBar.SetHint("tab:switch  q:quit")
		a.app.SetFocus(a.statusV)
	case "calls":
		a.statusBar.SetHint("enter:call back  tab:switch  q:quit")
		a.app.SetFocus(a.callsV)
	}
}

// Run starts the TUI and blocks until it exits.
func (a *App) Run() error {
	a.chatList.Update(a.engine.Store().Chats())
	go a.watchEvents()
	return a.app.Run()
}

// watchEvents re-renders on every engine event. The bus namespaces map
// directly onto views: chat.* redraws the list and open thread, call.*
// redraws the overlay.
func (a *App) watchEvents() {
	ch, unsub := a.bus.Subscribe("", 256)
	defer unsub()

	for {
		select {
		case evt := <-ch:
			a.app.QueueUpdateDraw(func() { a.render(evt) })
		case <-a.ctx.Done():
			return
		}
	}
}

func (a *App) render(evt bus.Event) {
	switch {
	case strings.HasPrefix(evt.Kind, "chat."):
		a.chatList.Update(a.engine.Store().Chats())
		active := a.engine.Store().Active()
		if active == "" {
			return
		}
		if c, ok := a.engine.Store().Chat(active); ok {
			a.msgView.SetChat(c)
			a.msgView.Update(a.engine.Self, a.engine.Store().Messages(active))
		}
	case evt.Kind == bus.CallEnded:
		a.callView.Update(call.Snapshot{})
		page, _ := a.pages.GetFrontPage()
		if page == "call" {
			a.switchTab("chats", "CHATS")
		}
	case strings.HasPrefix(evt.Kind, "call."):
		a.callView.Update(a.calls.Snapshot())
	}
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}
