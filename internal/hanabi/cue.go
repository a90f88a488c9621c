package hanabi

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Cue instructs the visualizer to spawn one effect when the playback
// clock reaches Timestamp. Field names match the JSON emitted by the
// cue-generation tool.
type Cue struct {
	Timestamp float64    `json:"timestamp"`
	Effect    EffectType `json:"firework"`
}

// LoadCues reads and parses a cue file. On any error the returned slice
// is nil; no partial cue list is ever adopted.
func LoadCues(path string) ([]Cue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cue file: %w", err)
	}
	defer f.Close()
	cues, err := ParseCues(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cues, nil
}

// ParseCues decodes a JSON cue array, validates timestamps, and returns
// the cues sorted ascending by timestamp (stable, so simultaneous cues
// keep their file order). Unknown effect types are kept (they render
// with a fallback spec) but are reported once per load on stderr.
func ParseCues(r io.Reader) ([]Cue, error) {
	var cues []Cue
	dec := json.NewDecoder(r)
	if err := dec.Decode(&cues); err != nil {
		return nil, err
	}

	unknown := map[EffectType]int{}
	for i, c := range cues {
		if c.Timestamp < 0 {
			return nil, fmt.Errorf("cue %d: negative timestamp %.3f", i, c.Timestamp)
		}
		if c.Effect == "" {
			return nil, fmt.Errorf("cue %d: missing effect type", i)
		}
		if !KnownType(c.Effect) {
			unknown[c.Effect]++
		}
	}
	for t, n := range unknown {
		fmt.Fprintf(os.Stderr, "hanabi: %d cue(s) with unknown effect type %q, using fallback\n", n, t)
	}

	sort.SliceStable(cues, func(i, j int) bool { return cues[i].Timestamp < cues[j].Timestamp })
	return cues, nil
}
