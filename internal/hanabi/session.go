package hanabi

import "sync/atomic"

// Session ties the playback clock, cue scheduler and effect manager into
// one frame-driven unit. Everything except NotifyEnded runs on the
// render goroutine.
type Session struct {
	clock *PlaybackClock
	sched *CueScheduler
	mgr   *EffectManager
	ended atomic.Bool
}

func NewSession(src AudioSource, cues []Cue, seed uint64) *Session {
	return &Session{
		clock: NewPlaybackClock(src),
		sched: NewCueScheduler(cues),
		mgr:   NewEffectManager(seed),
	}
}

// TogglePlayback pauses when playing and resumes from the current
// position otherwise.
func (s *Session) TogglePlayback() error {
	if s.clock.Playing() {
		s.clock.Pause()
		return nil
	}
	return s.Play()
}

// Play resumes from the current position. Resuming from the very end
// restarts at the beginning.
func (s *Session) Play() error {
	at := s.clock.Now()
	if at >= s.clock.Duration() {
		at = 0
		s.sched.Reset()
	}
	return s.clock.Play(at)
}

func (s *Session) Pause() {
	s.clock.Pause()
}

// Seek moves the clock and realigns the cue cursor so cues before the
// new position count as consumed and cues at or after it are re-armed.
// Live effects keep playing out; only future cue firing changes.
func (s *Session) Seek(target float64) error {
	err := s.clock.Seek(target)
	s.sched.Seek(s.clock.Now())
	return err
}

// SeekBy seeks relative to the current position.
func (s *Session) SeekBy(delta float64) error {
	return s.Seek(s.clock.Now() + delta)
}

// Stop halts audio, rewinds to the start, re-arms every cue and clears
// the screen state.
func (s *Session) Stop() {
	s.clock.Stop()
	s.sched.Reset()
	s.mgr.Clear()
}

// NotifyEnded flags natural end of playback. Safe from any goroutine;
// the flag is consumed on the next Frame.
func (s *Session) NotifyEnded() {
	s.ended.Store(true)
}

// Frame advances one render frame: consume a pending end-of-playback
// notification, fire cues that became due, step the simulation and draw.
// Effects keep animating while paused playback leaves the clock frozen;
// no new cues fire then because the position does not move.
func (s *Session) Frame(dt float64, surface Surface) {
	if s.ended.CompareAndSwap(true, false) {
		s.clock.HandleEnded()
	}

	if s.clock.Playing() {
		w, h := surface.Size()
		for _, c := range s.sched.CollectDue(s.clock.Now()) {
			s.mgr.Trigger(c.Effect, w, h)
		}
	}

	s.mgr.Update(dt)
	s.mgr.Draw(surface)
}

func (s *Session) Now() float64      { return s.clock.Now() }
func (s *Session) Duration() float64 { return s.clock.Duration() }
func (s *Session) Playing() bool     { return s.clock.Playing() }
