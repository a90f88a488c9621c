package hanabi

// Window defaults.
const (
	DefaultWindowWidth  = 1000
	DefaultWindowHeight = 700
	DefaultWindowTitle  = "Hanabi"
)

// Spawn placement: effects keep this distance from the surface edges so
// bursts don't immediately fly off-screen.
const SpawnMargin = 50.0

// Particles whose centre is further than this outside the surface are
// skipped when drawing.
const DrawMargin = 10.0

// Trail entries below this alpha are no longer visible and get evicted.
const TrailAlphaFloor = 0.05

// Playback defaults.
const (
	DefaultVolume   = 0.8
	DefaultSeekStep = 5.0 // seconds per arrow-key press
)

// Frame delta clamp: window drags and debugger pauses produce huge dt
// that would teleport every particle.
const MaxFrameDelta = 0.1

// Seeks smaller than this while playing are treated as no-ops so the
// audio output isn't interrupted for an inaudible position change.
const SeekEpsilon = 0.001
