package hanabi

import (
	"errors"
	"math"
	"testing"
)

// fakeSource is an AudioSource with a hand-cranked device clock.
type fakeSource struct {
	duration float64
	device   float64
	started  bool
	startErr error
	stopErr  error
	startsAt []float64
	stops    int
}

func (f *fakeSource) Duration() float64   { return f.duration }
func (f *fakeSource) DeviceTime() float64 { return f.device }

func (f *fakeSource) Start(offset float64) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.started = true
	f.startsAt = append(f.startsAt, offset)
	return nil
}

func (f *fakeSource) Stop() error {
	f.started = false
	f.stops++
	return f.stopErr
}

func (f *fakeSource) advance(dt float64) { f.device += dt }

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestClockPlayAdvancesWithDevice(t *testing.T) {
	src := &fakeSource{duration: 10, device: 100}
	c := NewPlaybackClock(src)

	if c.Now() != 0 || c.Playing() {
		t.Fatalf("fresh clock: Now=%.3f Playing=%v", c.Now(), c.Playing())
	}
	if err := c.Play(0); err != nil {
		t.Fatal(err)
	}
	src.advance(2.5)
	if !approx(c.Now(), 2.5) {
		t.Fatalf("Now() = %.3f, want 2.5", c.Now())
	}
}

func TestClockPauseResume(t *testing.T) {
	src := &fakeSource{duration: 10}
	c := NewPlaybackClock(src)
	if err := c.Play(0); err != nil {
		t.Fatal(err)
	}
	src.advance(3)
	c.Pause()
	if c.Playing() {
		t.Fatal("still playing after Pause")
	}
	// Device time keeps running; the paused position must not.
	src.advance(50)
	if !approx(c.Now(), 3) {
		t.Fatalf("paused Now() = %.3f, want 3", c.Now())
	}
	if err := c.Play(c.Now()); err != nil {
		t.Fatal(err)
	}
	src.advance(1)
	if !approx(c.Now(), 4) {
		t.Fatalf("resumed Now() = %.3f, want 4", c.Now())
	}
	if got := src.startsAt[len(src.startsAt)-1]; !approx(got, 3) {
		t.Fatalf("resume started audio at %.3f, want 3", got)
	}
}

func TestClockPlayWhilePlayingIsNoop(t *testing.T) {
	src := &fakeSource{duration: 10}
	c := NewPlaybackClock(src)
	if err := c.Play(0); err != nil {
		t.Fatal(err)
	}
	src.advance(2)
	if err := c.Play(5); err != nil {
		t.Fatal(err)
	}
	if !approx(c.Now(), 2) {
		t.Fatalf("Play while playing moved the clock to %.3f", c.Now())
	}
	if len(src.startsAt) != 1 {
		t.Fatalf("audio started %d times, want 1", len(src.startsAt))
	}
}

func TestClockPlayError(t *testing.T) {
	src := &fakeSource{duration: 10, startErr: errors.New("device busy")}
	c := NewPlaybackClock(src)
	if err := c.Play(0); err == nil {
		t.Fatal("expected start error")
	}
	if c.Playing() {
		t.Fatal("clock claims playing after failed start")
	}
}

func TestClockSeek(t *testing.T) {
	t.Run("paused", func(t *testing.T) {
		src := &fakeSource{duration: 10}
		c := NewPlaybackClock(src)
		if err := c.Seek(4); err != nil {
			t.Fatal(err)
		}
		if !approx(c.Now(), 4) {
			t.Fatalf("Now() = %.3f, want 4", c.Now())
		}
		if len(src.startsAt) != 0 {
			t.Fatal("paused seek must not start audio")
		}
	})

	t.Run("playing restarts audio at target", func(t *testing.T) {
		src := &fakeSource{duration: 10}
		c := NewPlaybackClock(src)
		if err := c.Play(0); err != nil {
			t.Fatal(err)
		}
		src.advance(2)
		if err := c.Seek(7); err != nil {
			t.Fatal(err)
		}
		if !c.Playing() {
			t.Fatal("seek while playing must keep playing")
		}
		if !approx(c.Now(), 7) {
			t.Fatalf("Now() = %.3f, want 7", c.Now())
		}
		if got := src.startsAt[len(src.startsAt)-1]; !approx(got, 7) {
			t.Fatalf("audio restarted at %.3f, want 7", got)
		}
	})

	t.Run("clamps to track bounds", func(t *testing.T) {
		src := &fakeSource{duration: 10}
		c := NewPlaybackClock(src)
		if err := c.Seek(-5); err != nil {
			t.Fatal(err)
		}
		if c.Now() != 0 {
			t.Fatalf("Now() = %.3f, want 0", c.Now())
		}
		if err := c.Seek(99); err != nil {
			t.Fatal(err)
		}
		if !approx(c.Now(), 10) {
			t.Fatalf("Now() = %.3f, want 10", c.Now())
		}
	})

	t.Run("tiny delta while playing is a no-op", func(t *testing.T) {
		src := &fakeSource{duration: 10}
		c := NewPlaybackClock(src)
		if err := c.Play(0); err != nil {
			t.Fatal(err)
		}
		src.advance(5)
		if err := c.Seek(c.Now() + SeekEpsilon/2); err != nil {
			t.Fatal(err)
		}
		if len(src.startsAt) != 1 {
			t.Fatal("near-zero seek restarted the audio stream")
		}
	})
}

func TestClockStop(t *testing.T) {
	src := &fakeSource{duration: 10}
	c := NewPlaybackClock(src)
	if err := c.Play(0); err != nil {
		t.Fatal(err)
	}
	src.advance(6)
	c.Stop()
	if c.Playing() || c.Now() != 0 {
		t.Fatalf("after Stop: Playing=%v Now=%.3f", c.Playing(), c.Now())
	}
}

func TestClockSwallowsStopErrors(t *testing.T) {
	src := &fakeSource{duration: 10, stopErr: errors.New("already stopped")}
	c := NewPlaybackClock(src)
	if err := c.Play(0); err != nil {
		t.Fatal(err)
	}
	c.Pause()
	if c.Playing() {
		t.Fatal("stop error must not leave the clock playing")
	}
}

func TestClockHandleEnded(t *testing.T) {
	src := &fakeSource{duration: 10}
	c := NewPlaybackClock(src)
	if err := c.Play(0); err != nil {
		t.Fatal(err)
	}
	src.advance(10)
	if !c.HandleEnded() {
		t.Fatal("HandleEnded while playing should apply")
	}
	if c.Playing() || !approx(c.Now(), 10) {
		t.Fatalf("after ended: Playing=%v Now=%.3f", c.Playing(), c.Now())
	}
	// A stale notification after a pause/stop is ignored.
	if c.HandleEnded() {
		t.Fatal("second HandleEnded should be ignored")
	}
}
