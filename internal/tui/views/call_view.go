package views

import (
	"fmt"
	"sync"

	"github.com/matheus3301/whatschat/internal/call"
	"github.com/rivo/tview"
)

// CallView is the full-screen call overlay. It doubles as the preview sink:
// the engine's media goroutine binds the self-view label here, so access is
// guarded.
type CallView struct {
	*tview.TextView

	mu      sync.Mutex
	preview string
}

// NewCallView creates a new call overlay view.
func NewCallView() *CallView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	tv.SetBorder(true).SetTitle(" Call ")

	return &CallView{TextView: tv}
}

// ShowPreview implements media.PreviewSink: the local self-view is rendered
// as the bound device label.
func (cv *CallView) ShowPreview(deviceLabel string) {
	cv.mu.Lock()
	cv.preview = deviceLabel
	cv.mu.Unlock()
}

// ClearPreview implements media.PreviewSink.
func (cv *CallView) ClearPreview() {
	cv.mu.Lock()
	cv.preview = ""
	cv.mu.Unlock()
}

// Update re-renders the overlay from a session snapshot.
func (cv *CallView) Update(snap call.Snapshot) {
	cv.mu.Lock()
	preview := cv.preview
	cv.mu.Unlock()

	cv.Clear()
	if !snap.Active {
		return
	}

	kind := "Voice call"
	if snap.IsVideo {
		kind = "Video call"
	}
	state := "Ringing..."
	if snap.Status == call.StatusConnected {
		state = formatDuration(snap.DurationSec)
	}

	var controls string
	if snap.IsMuted {
		controls += "[red]muted[-]  "
	} else {
		controls += "mic on  "
	}
	if snap.IsVideo {
		if snap.IsCameraOff {
			controls += "[red]camera off[-]"
		} else if preview != "" {
			controls += fmt.Sprintf("camera on (%s)", preview)
		} else {
			controls += "camera starting..."
		}
	}

	_, _ = fmt.Fprintf(cv, "\n\n[::d]End-to-end encrypted[-:-:-]\n\n[::b]%s[-:-:-]\n%s\n\n%s\n\n%s\n",
		snap.Participant.Name, kind, state, controls)

	if snap.MediaError != "" {
		_, _ = fmt.Fprintf(cv, "\n[red]%s[-]\n", snap.MediaError)
	}

	_, _ = fmt.Fprint(cv, "\n\n[::d]m:mute  o:camera  h:hang up[-:-:-]\n")
}
