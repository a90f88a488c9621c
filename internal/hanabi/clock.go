package hanabi

// AudioSource is the playback collaborator: it owns decoding and device
// output. DeviceTime must be monotonic; Start begins audible output at
// the given offset and Stop halts it. Stopping an already-stopped
// source is expected to succeed.
type AudioSource interface {
	Duration() float64
	DeviceTime() float64
	Start(offsetSeconds float64) error
	Stop() error
}

// PlaybackClock derives a single authoritative audio position from the
// source's device time, consistent across play, pause, and seek.
// While playing, position = DeviceTime() - startTime; while paused or
// stopped, the stored offset is authoritative.
type PlaybackClock struct {
	src       AudioSource
	playing   bool
	offset    float64
	startTime float64 // device time corresponding to position 0
}

func NewPlaybackClock(src AudioSource) *PlaybackClock {
	return &PlaybackClock{src: src}
}

// Now returns the current audio position in seconds, clamped to the
// track bounds.
func (c *PlaybackClock) Now() float64 {
	if !c.playing {
		return c.offset
	}
	return clampF(c.src.DeviceTime()-c.startTime, 0, c.src.Duration())
}

func (c *PlaybackClock) Playing() bool {
	return c.playing
}

func (c *PlaybackClock) Duration() float64 {
	return c.src.Duration()
}

// Play starts output at the given offset. No-op while already playing.
func (c *PlaybackClock) Play(fromOffset float64) error {
	if c.playing {
		return nil
	}
	fromOffset = clampF(fromOffset, 0, c.src.Duration())
	if err := c.src.Start(fromOffset); err != nil {
		return err
	}
	c.startTime = c.src.DeviceTime() - fromOffset
	c.offset = fromOffset
	c.playing = true
	return nil
}

// Pause stops output and stores the current position as the resume
// point. No-op while not playing. A stop error from the source is
// swallowed: stopping is idempotent and the clock must not keep
// claiming it is playing.
func (c *PlaybackClock) Pause() {
	if !c.playing {
		return
	}
	c.offset = clampF(c.src.DeviceTime()-c.startTime, 0, c.src.Duration())
	_ = c.src.Stop()
	c.playing = false
}

// Seek moves the position to target. While playing, output is stopped
// and restarted at the new offset so the audible stream and the logical
// clock stay consistent; while paused only the stored offset changes.
// A near-zero delta while playing is a no-op so the audio output isn't
// glitched for an inaudible move.
func (c *PlaybackClock) Seek(target float64) error {
	target = clampF(target, 0, c.src.Duration())
	if !c.playing {
		c.offset = target
		return nil
	}
	if d := target - c.Now(); d < SeekEpsilon && d > -SeekEpsilon {
		return nil
	}
	_ = c.src.Stop()
	c.playing = false
	return c.Play(target)
}

// Stop halts output and rewinds to the start.
func (c *PlaybackClock) Stop() {
	_ = c.src.Stop()
	c.playing = false
	c.offset = 0
}

// HandleEnded treats the source's end-of-playback notification as an
// implicit pause at the track end. Returns false when the notification
// arrived after a user pause/stop already left the playing state; it
// is then ignored.
func (c *PlaybackClock) HandleEnded() bool {
	if !c.playing {
		return false
	}
	c.playing = false
	c.offset = c.src.Duration()
	return true
}
