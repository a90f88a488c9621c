package hanabi

import "sort"

// CueScheduler walks a sorted cue list with a cursor so that each cue
// fires exactly once as the playback clock crosses its timestamp.
// The cue slice itself is never mutated; all state lives in the cursor.
type CueScheduler struct {
	cues   []Cue
	cursor int
}

// NewCueScheduler takes a cue slice already sorted ascending by
// timestamp (LoadCues guarantees this).
func NewCueScheduler(cues []Cue) *CueScheduler {
	return &CueScheduler{cues: cues}
}

// CollectDue returns, in timestamp order, every cue that became due
// since the previous call, i.e. all cues from the cursor up to and
// including now. A single slow frame that covers several cues emits
// them all at once; cues sharing a timestamp come out together in
// their original file order.
func (s *CueScheduler) CollectDue(now float64) []Cue {
	start := s.cursor
	for s.cursor < len(s.cues) && s.cues[s.cursor].Timestamp <= now {
		s.cursor++
	}
	if s.cursor == start {
		return nil
	}
	return s.cues[start:s.cursor]
}

// Seek repositions the cursor for an arbitrary time jump. Cues strictly
// before target count as consumed; nothing fires for the jump itself,
// so seeking past an effect means you don't see it, and seeking
// backward re-arms everything at or after target. A seek landing
// exactly on a cue's timestamp leaves that cue armed.
func (s *CueScheduler) Seek(target float64) {
	s.cursor = sort.Search(len(s.cues), func(i int) bool {
		return s.cues[i].Timestamp >= target
	})
}

// Reset re-arms every cue (restart/stop).
func (s *CueScheduler) Reset() {
	s.cursor = 0
}

// Remaining reports how many cues have not fired yet.
func (s *CueScheduler) Remaining() int {
	return len(s.cues) - s.cursor
}
