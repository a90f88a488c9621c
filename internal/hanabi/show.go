package hanabi

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ShowConfig describes one show: the audio track, its cue file and the
// presentation settings. Loaded from a YAML file or assembled from
// command-line flags.
type ShowConfig struct {
	Audio string `yaml:"audio"`
	Cues  string `yaml:"cues"`

	Window struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Title  string `yaml:"title"`
	} `yaml:"window"`

	Volume   float64 `yaml:"volume"`
	SeekStep float64 `yaml:"seek_step"`
}

// DefaultShow returns a config with every presentation setting at its
// default; Audio and Cues are left empty for the caller to fill.
func DefaultShow() ShowConfig {
	var c ShowConfig
	c.Window.Width = DefaultWindowWidth
	c.Window.Height = DefaultWindowHeight
	c.Window.Title = DefaultWindowTitle
	c.Volume = DefaultVolume
	c.SeekStep = DefaultSeekStep
	return c
}

// LoadShow reads a YAML show file. Omitted presentation settings keep
// their defaults; relative audio/cue paths resolve against the show
// file's directory.
func LoadShow(path string) (ShowConfig, error) {
	c := DefaultShow()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read show file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if c.Audio != "" && !filepath.IsAbs(c.Audio) {
		c.Audio = filepath.Join(dir, c.Audio)
	}
	if c.Cues != "" && !filepath.IsAbs(c.Cues) {
		c.Cues = filepath.Join(dir, c.Cues)
	}
	return c, c.validate()
}

func (c ShowConfig) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %.2f out of range [0, 1]", c.Volume)
	}
	if c.SeekStep <= 0 {
		return fmt.Errorf("seek_step must be positive, got %.2f", c.SeekStep)
	}
	return nil
}
