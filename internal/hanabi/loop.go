package hanabi

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// HUD progress bar geometry.
const (
	hudBarHeight = 6.0
	hudBarMargin = 14.0
)

func drawHUD(s Surface, sess *Session) {
	w, h := s.Size()
	barW := w - 2*hudBarMargin
	if barW <= 0 || sess.Duration() <= 0 {
		return
	}
	y := h - hudBarMargin - hudBarHeight
	s.FillRect(hudBarMargin, y, barW, hudBarHeight, Palette.HUDTrack, 0.35)

	frac := clampF(sess.Now()/sess.Duration(), 0, 1)
	fill := Palette.HUDFill
	if !sess.Playing() {
		fill = Palette.HUDPaused
	}
	s.FillRect(hudBarMargin, y, barW*frac, hudBarHeight, fill, 0.8)
}

// RunDesktop opens the window and runs the show until the window closes
// or Escape is pressed. Must be called from the main goroutine.
func RunDesktop(show ShowConfig) error {
	window, err := initWindow(show.Window.Width, show.Window.Height, show.Window.Title)
	if err != nil {
		return err
	}
	defer glfw.Terminate()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	cues, err := LoadCues(show.Cues)
	if err != nil {
		return err
	}

	// The source's end callback fires from the mixer goroutine; the
	// session defers handling to the next frame, so the late binding
	// through the pointer is safe.
	var session *Session
	src, err := NewSpeakerSource(show.Audio, show.Volume, func() {
		if session != nil {
			session.NotifyEnded()
		}
	})
	if err != nil {
		return err
	}
	defer src.Close()

	session = NewSession(src, cues, uint64(time.Now().UnixNano()))

	renderer, err := NewRenderer()
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	input := NewInput()
	if err := session.Play(); err != nil {
		return err
	}

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDelta {
			dt = MaxFrameDelta
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}
		if input.JustPressed(window, glfw.KeySpace) {
			if err := session.TogglePlayback(); err != nil {
				fmt.Fprintf(os.Stderr, "hanabi: toggle playback: %v\n", err)
			}
		}
		if input.JustPressed(window, glfw.KeyS) {
			session.Stop()
		}
		if input.JustPressed(window, glfw.KeyLeft) {
			if err := session.SeekBy(-show.SeekStep); err != nil {
				fmt.Fprintf(os.Stderr, "hanabi: seek: %v\n", err)
			}
		}
		if input.JustPressed(window, glfw.KeyRight) {
			if err := session.SeekBy(show.SeekStep); err != nil {
				fmt.Fprintf(os.Stderr, "hanabi: seek: %v\n", err)
			}
		}
		if input.JustPressed(window, glfw.KeyHome) {
			if err := session.Seek(0); err != nil {
				fmt.Fprintf(os.Stderr, "hanabi: seek: %v\n", err)
			}
		}

		fbW, fbH := window.GetFramebufferSize()
		renderer.BeginFrame(fbW, fbH)
		session.Frame(dt, renderer)
		drawHUD(renderer, session)
		renderer.EndFrame()
		window.SwapBuffers()
	}

	session.Stop()
	return nil
}
