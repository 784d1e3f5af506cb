// Package media defines the local camera/microphone capture boundary used
// by the call engine. A capture handle is exclusive: the engine holds at
// most one at a time and must release it before acquiring another.
package media

import "context"

// PreviewSink receives the local self-view while a capture is attached.
type PreviewSink interface {
	// ShowPreview is called with a human-readable device label when a
	// capture is bound.
	ShowPreview(deviceLabel string)
	// ClearPreview is called when the capture is released.
	ClearPreview()
}

// Capture is an exclusive handle on local capture tracks.
type Capture interface {
	// AttachPreview binds the local video track to a preview sink. A nil
	// sink detaches.
	AttachPreview(sink PreviewSink)
	// SetAudioEnabled enables or disables the captured audio track without
	// releasing it. Used for mute.
	SetAudioEnabled(enabled bool)
	// Release stops all underlying tracks and unbinds the preview. Safe to
	// call more than once.
	Release()
}

// Device acquires capture handles. Acquisition may take arbitrarily long
// (permission prompts, busy hardware) and must honor ctx cancellation.
type Device interface {
	Acquire(ctx context.Context, video, audio bool) (Capture, error)
}
