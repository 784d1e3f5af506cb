package media

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrPermissionDenied is returned when the simulated device is configured
// to refuse capture.
var ErrPermissionDenied = errors.New("media: permission denied")

// SimDevice simulates local capture hardware. Latency delays every
// acquisition; Fail makes acquisitions return ErrPermissionDenied. The
// live-handle counter lets tests assert that nothing leaks.
type SimDevice struct {
	Latency time.Duration
	Fail    bool
	Label   string

	open atomic.Int32
}

// Acquire waits Latency (or ctx cancellation) and hands out a capture.
func (d *SimDevice) Acquire(ctx context.Context, video, audio bool) (Capture, error) {
	if d.Latency > 0 {
		select {
		case <-time.After(d.Latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if d.Fail {
		return nil, ErrPermissionDenied
	}
	label := d.Label
	if label == "" {
		label = "sim-cam0"
	}
	d.open.Add(1)
	return &simCapture{device: d, label: label, audio: audio, video: video}, nil
}

// OpenCaptures returns the number of live handles.
func (d *SimDevice) OpenCaptures() int {
	return int(d.open.Load())
}

type simCapture struct {
	device *SimDevice
	label  string
	video  bool
	audio  bool

	mu       sync.Mutex
	sink     PreviewSink
	released bool
}

func (c *simCapture) AttachPreview(sink PreviewSink) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return
	}
	if c.sink != nil {
		c.sink.ClearPreview()
	}
	c.sink = sink
	if c.sink != nil {
		c.sink.ShowPreview(c.label)
	}
}

func (c *simCapture) SetAudioEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return
	}
	c.audio = enabled
}

func (c *simCapture) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.released {
		return
	}
	c.released = true
	if c.sink != nil {
		c.sink.ClearPreview()
		c.sink = nil
	}
	c.device.open.Add(-1)
}
