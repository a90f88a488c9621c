package hanabi

import (
	"os"
	"path/filepath"
	"testing"
)

func writeShow(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "show.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadShowDefaults(t *testing.T) {
	path := writeShow(t, "audio: track.mp3\ncues: cues.json\n")
	show, err := LoadShow(path)
	if err != nil {
		t.Fatal(err)
	}
	if show.Window.Width != DefaultWindowWidth || show.Window.Height != DefaultWindowHeight {
		t.Fatalf("window defaults not applied: %dx%d", show.Window.Width, show.Window.Height)
	}
	if show.Volume != DefaultVolume || show.SeekStep != DefaultSeekStep {
		t.Fatalf("playback defaults not applied: volume %.2f step %.2f", show.Volume, show.SeekStep)
	}
}

func TestLoadShowResolvesRelativePaths(t *testing.T) {
	path := writeShow(t, "audio: music/track.mp3\ncues: cues.json\n")
	show, err := LoadShow(path)
	if err != nil {
		t.Fatal(err)
	}
	dir := filepath.Dir(path)
	if show.Audio != filepath.Join(dir, "music", "track.mp3") {
		t.Fatalf("audio path not resolved: %s", show.Audio)
	}
	if show.Cues != filepath.Join(dir, "cues.json") {
		t.Fatalf("cue path not resolved: %s", show.Cues)
	}
}

func TestLoadShowOverrides(t *testing.T) {
	path := writeShow(t, `
audio: /abs/track.wav
cues: /abs/cues.json
window:
  width: 1280
  height: 720
  title: Festival
volume: 0.5
seek_step: 10
`)
	show, err := LoadShow(path)
	if err != nil {
		t.Fatal(err)
	}
	if show.Audio != "/abs/track.wav" {
		t.Fatalf("absolute audio path rewritten: %s", show.Audio)
	}
	if show.Window.Width != 1280 || show.Window.Height != 720 || show.Window.Title != "Festival" {
		t.Fatalf("window overrides lost: %+v", show.Window)
	}
	if show.Volume != 0.5 || show.SeekStep != 10 {
		t.Fatalf("playback overrides lost: volume %.2f step %.2f", show.Volume, show.SeekStep)
	}
}

func TestLoadShowValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"zero width", "window:\n  width: 0\n"},
		{"negative height", "window:\n  height: -1\n"},
		{"volume above one", "volume: 1.5\n"},
		{"negative seek step", "seek_step: -2\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := LoadShow(writeShow(t, c.yaml)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadShowMissingFile(t *testing.T) {
	if _, err := LoadShow(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
