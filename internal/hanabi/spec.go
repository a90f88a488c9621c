package hanabi

// EffectType names a firework preset from the cue file.
type EffectType string

const (
	EffectHighSparkle EffectType = "high_sparkle"
	EffectMidBurst    EffectType = "mid_burst"
	EffectKickBoom    EffectType = "kick_boom"
	EffectCometStreak EffectType = "comet_streak"
	EffectBassPulse   EffectType = "bass_pulse"
)

// EffectSpec holds the constant parameters of one particle effect type.
type EffectSpec struct {
	Lifetime float64 // seconds from spawn to removal
	Colors   []RGB

	CountMin, CountMax int
	SpeedMin, SpeedMax float64 // px/s
	SizeMin, SizeMax   float64 // px radius

	Gravity float64 // px/s² applied to vy
	Damping float64 // fraction of velocity retained per 1/60 s

	TrailCap   int     // max stored trail points per particle
	TrailDecay float64 // per-update multiplier on stored trail alpha

	Directional bool    // one shared heading +/- Spread instead of a full circle
	Spread      float64 // radians either side of the heading

	CoreBrightness float64 // opacity multiplier for the particle disc
	Flicker        float64 // +/- per-particle brightness jitter (radial types)
}

// PulseSpec parametrizes the background pulse; it has no particle geometry.
type PulseSpec struct {
	MaxAlpha  float64
	FadeSpeed float64 // alpha per second
	Colors    []RGB
}

var effectSpecs = map[EffectType]EffectSpec{
	EffectHighSparkle: {
		Lifetime: 2.0,
		Colors:   []RGB{Palette.SparkleGold, Palette.SparkleYellow, Palette.SparkleAmber},
		CountMin: 15, CountMax: 25,
		SpeedMin: 20, SpeedMax: 60,
		SizeMin: 2, SizeMax: 4,
		Gravity: 100, Damping: 0.98,
		TrailCap: 10, TrailDecay: 0.82,
		CoreBrightness: 0.95, Flicker: 0.25,
	},
	EffectMidBurst: {
		Lifetime: 1.5,
		Colors:   []RGB{Palette.BurstRed, Palette.BurstOrange, Palette.BurstTomato},
		CountMin: 20, CountMax: 35,
		SpeedMin: 40, SpeedMax: 80,
		SizeMin: 3, SizeMax: 6,
		Gravity: 100, Damping: 0.98,
		TrailCap: 12, TrailDecay: 0.85,
		CoreBrightness: 0.9, Flicker: 0.15,
	},
	EffectKickBoom: {
		Lifetime: 1.0,
		Colors:   []RGB{Palette.BoomPurple, Palette.BoomViolet, Palette.BoomIndigo},
		CountMin: 30, CountMax: 50,
		SpeedMin: 60, SpeedMax: 120,
		SizeMin: 4, SizeMax: 8,
		Gravity: 100, Damping: 0.97,
		TrailCap: 14, TrailDecay: 0.88,
		CoreBrightness: 1.0, Flicker: 0.1,
	},
	EffectCometStreak: {
		Lifetime: 1.8,
		Colors:   []RGB{Palette.CometIce, Palette.CometCyan, Palette.CometWhite},
		CountMin: 10, CountMax: 18,
		SpeedMin: 90, SpeedMax: 150,
		SizeMin: 2, SizeMax: 5,
		Gravity: 60, Damping: 0.99,
		TrailCap: 22, TrailDecay: 0.93,
		Directional: true, Spread: 0.22,
		CoreBrightness: 1.0,
	},
}

// defaultSpec renders cues with unknown effect types: a modest neutral
// burst so playback never stalls on a cue file from a newer generator.
var defaultSpec = EffectSpec{
	Lifetime: 1.2,
	Colors:   []RGB{Palette.FallbackWarm, Palette.FallbackCool},
	CountMin: 15, CountMax: 25,
	SpeedMin: 30, SpeedMax: 70,
	SizeMin: 2, SizeMax: 5,
	Gravity: 100, Damping: 0.98,
	TrailCap: 10, TrailDecay: 0.85,
	CoreBrightness: 0.9, Flicker: 0.15,
}

var pulseSpec = PulseSpec{
	MaxAlpha:  0.55,
	FadeSpeed: 1.5,
	Colors:    []RGB{Palette.PulseDeepBlue, Palette.PulseDeepPurple, Palette.PulseWine},
}

// effectAliases maps the legacy names emitted by the original cue
// generator onto the current presets.
var effectAliases = map[EffectType]EffectType{
	"sparkle": EffectHighSparkle,
	"burst":   EffectMidBurst,
	"boom":    EffectKickBoom,
}

// canonicalType resolves legacy aliases; unknown types pass through.
func canonicalType(t EffectType) EffectType {
	if c, ok := effectAliases[t]; ok {
		return c
	}
	return t
}

// SpecFor returns the spec for t, falling back to a generic spec for
// unknown types (unknown cues are non-fatal).
func SpecFor(t EffectType) EffectSpec {
	if s, ok := effectSpecs[canonicalType(t)]; ok {
		return s
	}
	return defaultSpec
}

// KnownType reports whether t maps to a defined effect (pulse included).
func KnownType(t EffectType) bool {
	c := canonicalType(t)
	if c == EffectBassPulse {
		return true
	}
	_, ok := effectSpecs[c]
	return ok
}

// IsPulse reports whether t triggers the background pulse instead of a
// particle effect.
func IsPulse(t EffectType) bool {
	return canonicalType(t) == EffectBassPulse
}

// PulseFor returns the background-pulse parameters.
func PulseFor() PulseSpec {
	return pulseSpec
}
