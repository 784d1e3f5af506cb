package media

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordingSink struct {
	shown   []string
	cleared int
}

func (s *recordingSink) ShowPreview(label string) { s.shown = append(s.shown, label) }
func (s *recordingSink) ClearPreview()            { s.cleared++ }

func TestAcquireAndRelease(t *testing.T) {
	d := &SimDevice{}
	c, err := d.Acquire(context.Background(), true, true)
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if d.OpenCaptures() != 1 {
		t.Errorf("open captures = %d, want 1", d.OpenCaptures())
	}

	c.Release()
	if d.OpenCaptures() != 0 {
		t.Errorf("open captures after release = %d, want 0", d.OpenCaptures())
	}
}

func TestReleaseIdempotent(t *testing.T) {
	d := &SimDevice{}
	c, err := d.Acquire(context.Background(), true, true)
	if err != nil {
		t.Fatal(err)
	}
	c.Release()
	c.Release()
	if d.OpenCaptures() != 0 {
		t.Errorf("open captures = %d, want 0 after double release", d.OpenCaptures())
	}
}

func TestAcquireFailureHoldsNothing(t *testing.T) {
	d := &SimDevice{Fail: true}
	_, err := d.Acquire(context.Background(), true, true)
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("Acquire() error = %v, want ErrPermissionDenied", err)
	}
	if d.OpenCaptures() != 0 {
		t.Errorf("open captures = %d, want 0", d.OpenCaptures())
	}
}

func TestAcquireHonorsContext(t *testing.T) {
	d := &SimDevice{Latency: time.Second}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Acquire(ctx, true, true)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Acquire() error = %v, want context.Canceled", err)
	}
}

func TestPreviewLifecycle(t *testing.T) {
	d := &SimDevice{Label: "front-cam"}
	c, err := d.Acquire(context.Background(), true, true)
	if err != nil {
		t.Fatal(err)
	}

	sink := &recordingSink{}
	c.AttachPreview(sink)
	if len(sink.shown) != 1 || sink.shown[0] != "front-cam" {
		t.Errorf("shown = %v, want [front-cam]", sink.shown)
	}

	c.Release()
	if sink.cleared != 1 {
		t.Errorf("cleared = %d, want 1 (release unbinds preview)", sink.cleared)
	}

	// Attaching after release is a no-op.
	c.AttachPreview(&recordingSink{})
}
