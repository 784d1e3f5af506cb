// Package call manages the lifecycle of the simulated call overlay: the
// ringing-to-connected progression, the duration ticker, and ownership of
// the local camera/microphone capture.
package call

import (
	"context"
	"sync"
	"time"

	"github.com/matheus3301/whatschat/internal/bus"
	"github.com/matheus3301/whatschat/internal/media"
	"github.com/matheus3301/whatschat/internal/model"
	"go.uber.org/zap"
)

// Status is the connection phase of a call session.
type Status string

const (
	StatusRinging   Status = "RINGING"
	StatusConnected Status = "CONNECTED"
)

const (
	// DefaultConnectDelay simulates the callee picking up.
	DefaultConnectDelay = 2 * time.Second
	// DefaultTickInterval drives the duration counter.
	DefaultTickInterval = time.Second
	// DefaultMediaErrorTTL is how long the media notice stays on screen.
	DefaultMediaErrorTTL = 5 * time.Second

	mediaErrorNotice = "Camera access failed or timed out. Switched to audio-only."
)

// Snapshot is the render-ready view of the current session. Active is false
// when no call is in progress.
type Snapshot struct {
	Active      bool
	Participant model.User
	IsVideo     bool
	Status      Status
	DurationSec int
	IsMuted     bool
	IsCameraOff bool
	MediaError  string
}

// session is the transient state of one call. Destroyed whole on end; no
// history is retained.
type session struct {
	participant model.User
	isVideo     bool
	status      Status
	duration    int
	isMuted     bool
	isCameraOff bool
	mediaError  string

	capture       media.Capture
	connectTimer  *time.Timer
	errTimer      *time.Timer
	tickerDone    chan struct{}
	mediaGen      int
	acquireCancel context.CancelFunc
}

// Engine owns at most one call session at a time and, through it, at most
// one live capture handle. All timers and in-flight acquisitions are tied
// to the session they were created for, so anything resolving after
// teardown is recognized as stale and dropped.
type Engine struct {
	bus    *bus.Bus
	device media.Device
	logger *zap.Logger

	ConnectDelay  time.Duration
	TickInterval  time.Duration
	MediaErrorTTL time.Duration

	// Preview, when set, receives the local self-view on successful
	// acquisition.
	Preview media.PreviewSink

	mu   sync.Mutex
	sess *session
}

// NewEngine creates a call engine over the given capture device.
func NewEngine(device media.Device, b *bus.Bus, logger *zap.Logger) *Engine {
	return &Engine{
		bus:           b,
		device:        device,
		logger:        logger,
		ConnectDelay:  DefaultConnectDelay,
		TickInterval:  DefaultTickInterval,
		MediaErrorTTL: DefaultMediaErrorTTL,
	}
}

// Start opens a call session in RINGING state. Any previous session is
// destroyed first: its timers stop and its capture is released before the
// new session may acquire one.
func (e *Engine) Start(participant model.User, isVideo bool) {
	e.mu.Lock()
	if e.sess != nil {
		e.endLocked()
	}
	s := &session{
		participant: participant,
		isVideo:     isVideo,
		status:      StatusRinging,
	}
	e.sess = s
	s.connectTimer = time.AfterFunc(e.ConnectDelay, func() { e.connect(s) })
	e.evaluateMediaLocked(s)
	e.mu.Unlock()

	e.logger.Info("call started",
		zap.String("participant", participant.ID),
		zap.Bool("video", isVideo))
	e.bus.Emit(bus.CallState, string(StatusRinging))
}

// connect fires from the connect timer. Unconditional: there is no declined
// or busy outcome.
func (e *Engine) connect(s *session) {
	e.mu.Lock()
	if e.sess != s {
		e.mu.Unlock()
		return
	}
	s.status = StatusConnected
	s.tickerDone = make(chan struct{})
	go e.runTicker(s, s.tickerDone)
	e.mu.Unlock()

	e.bus.Emit(bus.CallState, string(StatusConnected))
}

// runTicker increments the duration once per tick, strictly while this
// session is live and CONNECTED.
func (e *Engine) runTicker(s *session, done chan struct{}) {
	ticker := time.NewTicker(e.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			e.mu.Lock()
			if e.sess != s || s.status != StatusConnected {
				e.mu.Unlock()
				return
			}
			s.duration++
			d := s.duration
			e.mu.Unlock()
			e.bus.Emit(bus.CallTick, d)
		case <-done:
			return
		}
	}
}

// ToggleMute flips mute intent and, when a capture is held, disables the
// captured audio track. Capture stays held either way.
func (e *Engine) ToggleMute() {
	e.mu.Lock()
	s := e.sess
	if s == nil {
		e.mu.Unlock()
		return
	}
	s.isMuted = !s.isMuted
	if s.capture != nil {
		s.capture.SetAudioEnabled(!s.isMuted)
	}
	st := s.status
	e.mu.Unlock()

	e.bus.Emit(bus.CallState, string(st))
}

// ToggleCamera flips the camera flag and re-evaluates media: turning the
// camera off releases the capture, turning it back on re-acquires.
func (e *Engine) ToggleCamera() {
	e.mu.Lock()
	s := e.sess
	if s == nil {
		e.mu.Unlock()
		return
	}
	s.isCameraOff = !s.isCameraOff
	e.evaluateMediaLocked(s)
	st := s.status
	e.mu.Unlock()

	e.bus.Emit(bus.CallState, string(st))
}

// End destroys the session: timers cancelled, ticker stopped, capture
// released. Idempotent.
func (e *Engine) End() {
	e.mu.Lock()
	if e.sess == nil {
		e.mu.Unlock()
		return
	}
	e.endLocked()
	e.mu.Unlock()

	e.logger.Info("call ended")
	e.bus.Emit(bus.CallEnded, nil)
}

// Snapshot returns the render-ready state of the current session.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.sess
	if s == nil {
		return Snapshot{}
	}
	return Snapshot{
		Active:      true,
		Participant: s.participant,
		IsVideo:     s.isVideo,
		Status:      s.status,
		DurationSec: s.duration,
		IsMuted:     s.isMuted,
		IsCameraOff: s.isCameraOff,
		MediaError:  s.mediaError,
	}
}

// evaluateMediaLocked enforces the at-most-one-capture rule: whatever was
// held or in flight is released/cancelled first, then a fresh acquisition
// starts iff the session wants the camera. The generation advances on every
// re-evaluation, including ones that end with no acquisition, so a
// cancelled in-flight acquire always resolves stale instead of surfacing
// its ctx error as a media failure.
func (e *Engine) evaluateMediaLocked(s *session) {
	s.mediaGen++
	if s.acquireCancel != nil {
		s.acquireCancel()
		s.acquireCancel = nil
	}
	if s.capture != nil {
		s.capture.Release()
		s.capture = nil
	}
	if !s.isVideo || s.isCameraOff {
		return
	}

	if s.errTimer != nil {
		s.errTimer.Stop()
		s.errTimer = nil
	}

	gen := s.mediaGen
	ctx, cancel := context.WithCancel(context.Background())
	s.acquireCancel = cancel
	go e.acquire(ctx, s, gen)
}

// acquire runs the asynchronous capture acquisition for one generation of
// one session. Completions that land after teardown or after a newer
// re-evaluation are discarded, releasing any handle they produced.
func (e *Engine) acquire(ctx context.Context, s *session, gen int) {
	capture, err := e.device.Acquire(ctx, true, true)

	e.mu.Lock()
	stale := e.sess != s || s.mediaGen != gen
	if stale {
		e.mu.Unlock()
		if capture != nil {
			capture.Release()
		}
		return
	}

	if err != nil {
		s.isCameraOff = true
		s.mediaError = mediaErrorNotice
		if s.errTimer != nil {
			s.errTimer.Stop()
		}
		s.errTimer = time.AfterFunc(e.MediaErrorTTL, func() { e.clearMediaError(s) })
		e.mu.Unlock()

		e.logger.Warn("media acquisition failed", zap.Error(err))
		e.bus.Emit(bus.CallMedia, mediaErrorNotice)
		return
	}

	s.capture = capture
	s.mediaError = ""
	if s.isMuted {
		capture.SetAudioEnabled(false)
	}
	if e.Preview != nil {
		capture.AttachPreview(e.Preview)
	}
	e.mu.Unlock()

	e.bus.Emit(bus.CallMedia, "")
}

// clearMediaError auto-dismisses the notice. Display-only: the camera stays
// off regardless.
func (e *Engine) clearMediaError(s *session) {
	e.mu.Lock()
	if e.sess != s || s.mediaError == "" {
		e.mu.Unlock()
		return
	}
	s.mediaError = ""
	e.mu.Unlock()

	e.bus.Emit(bus.CallMedia, "")
}

// endLocked tears down the current session on every exit path.
func (e *Engine) endLocked() {
	s := e.sess
	if s.connectTimer != nil {
		s.connectTimer.Stop()
	}
	if s.errTimer != nil {
		s.errTimer.Stop()
	}
	if s.acquireCancel != nil {
		s.acquireCancel()
	}
	if s.tickerDone != nil {
		close(s.tickerDone)
	}
	if s.capture != nil {
		s.capture.Release()
		s.capture = nil
	}
	e.sess = nil
}
