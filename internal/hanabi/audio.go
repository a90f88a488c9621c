package hanabi

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// speakerSampleRate is the fixed device rate; decoded streams at other
// rates are resampled on the fly.
const speakerSampleRate = beep.SampleRate(48000)

// SpeakerSource plays one audio file through the speaker package and
// implements AudioSource. All methods run on the render goroutine; the
// onEnded callback fires from the speaker's mixer goroutine.
type SpeakerSource struct {
	stream  beep.StreamSeekCloser
	format  beep.Format
	volume  float64
	onEnded func()
	epoch   time.Time
}

// NewSpeakerSource opens and decodes the audio file (format chosen by
// extension: .mp3, .wav, .flac) and initializes the output device.
// onEnded is called when the stream drains naturally, never on an
// explicit Stop.
func NewSpeakerSource(path string, volume float64, onEnded func()) (*SpeakerSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audio: %w", err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := speaker.Init(speakerSampleRate, speakerSampleRate.N(100*time.Millisecond)); err != nil {
		stream.Close()
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	return &SpeakerSource{
		stream:  stream,
		format:  format,
		volume:  clampF(volume, 0, 1),
		onEnded: onEnded,
		epoch:   time.Now(),
	}, nil
}

// Duration returns the track length in seconds.
func (s *SpeakerSource) Duration() float64 {
	return float64(s.stream.Len()) / float64(s.format.SampleRate)
}

// DeviceTime is a monotonic wall-clock reading in seconds. The playback
// clock only uses differences, so the epoch is arbitrary.
func (s *SpeakerSource) DeviceTime() float64 {
	return time.Since(s.epoch).Seconds()
}

// Start seeks the decoded stream to offsetSeconds and begins output.
// Any stream already playing is cleared first, so Start after Start is
// a restart, not a mix.
func (s *SpeakerSource) Start(offsetSeconds float64) error {
	speaker.Clear()

	pos := int(offsetSeconds * float64(s.format.SampleRate))
	if pos < 0 {
		pos = 0
	}
	if pos > s.stream.Len() {
		pos = s.stream.Len()
	}
	if err := s.stream.Seek(pos); err != nil {
		return fmt.Errorf("seek audio: %w", err)
	}

	var chain beep.Streamer = s.stream
	if s.format.SampleRate != speakerSampleRate {
		chain = beep.Resample(4, s.format.SampleRate, speakerSampleRate, chain)
	}
	if s.volume < 1 {
		chain = &effects.Volume{
			Streamer: chain,
			Base:     2,
			Volume:   math.Log2(math.Max(s.volume, 1e-4)),
			Silent:   s.volume <= 0,
		}
	}

	ended := s.onEnded
	speaker.Play(beep.Seq(chain, beep.Callback(func() {
		if ended != nil {
			ended()
		}
	})))
	return nil
}

// Stop silences output. Clearing the speaker drops the queued streamer
// before its end callback, so an explicit stop never reports as a
// natural end. Idempotent.
func (s *SpeakerSource) Stop() error {
	speaker.Clear()
	return nil
}

// Close stops output and releases the decoder.
func (s *SpeakerSource) Close() error {
	speaker.Clear()
	return s.stream.Close()
}
