package hanabi

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseCuesSortsStably(t *testing.T) {
	in := `[
		{"timestamp": 3.0, "firework": "bass_pulse"},
		{"timestamp": 1.0, "firework": "high_sparkle"},
		{"timestamp": 1.0, "firework": "kick_boom"}
	]`
	cues, err := ParseCues(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []EffectType{EffectHighSparkle, EffectKickBoom, EffectBassPulse}
	if !sameTypes(cueTypes(cues), want) {
		t.Fatalf("parsed order %v, want %v", cueTypes(cues), want)
	}
}

func TestParseCuesErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"negative timestamp", `[{"timestamp": -0.5, "firework": "kick_boom"}]`},
		{"missing effect", `[{"timestamp": 1.0}]`},
		{"malformed json", `[{"timestamp": 1.0,`},
		{"wrong shape", `{"timestamp": 1.0, "firework": "kick_boom"}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if cues, err := ParseCues(strings.NewReader(c.in)); err == nil {
				t.Fatalf("expected error, got %d cues", len(cues))
			}
		})
	}
}

func TestParseCuesKeepsUnknownTypes(t *testing.T) {
	in := `[{"timestamp": 1.0, "firework": "laser_show"}]`
	cues, err := ParseCues(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(cues) != 1 || cues[0].Effect != "laser_show" {
		t.Fatalf("unknown type mangled: %v", cues)
	}
}

func TestParseCuesLegacyNames(t *testing.T) {
	in := `[
		{"timestamp": 1.0, "firework": "sparkle"},
		{"timestamp": 2.0, "firework": "boom"}
	]`
	cues, err := ParseCues(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cues {
		if !KnownType(c.Effect) {
			t.Fatalf("legacy name %q not recognized", c.Effect)
		}
	}
}

func TestParseCuesEmptyList(t *testing.T) {
	cues, err := ParseCues(strings.NewReader(`[]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(cues) != 0 {
		t.Fatalf("got %d cues from an empty list", len(cues))
	}
}

func TestLoadCues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cues.json")
	data := `[{"timestamp": 1.5, "firework": "mid_burst"}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cues, err := LoadCues(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cues) != 1 || cues[0].Timestamp != 1.5 {
		t.Fatalf("loaded %v", cues)
	}

	if _, err := LoadCues(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
