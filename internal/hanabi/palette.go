package hanabi

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func lerpU8(a, b uint8, t float64) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t)}
}

var Palette = struct {
	Background RGB

	SparkleGold   RGB
	SparkleYellow RGB
	SparkleAmber  RGB

	BurstRed    RGB
	BurstOrange RGB
	BurstTomato RGB

	BoomPurple RGB
	BoomViolet RGB
	BoomIndigo RGB

	CometIce   RGB
	CometCyan  RGB
	CometWhite RGB

	PulseDeepBlue   RGB
	PulseDeepPurple RGB
	PulseWine       RGB

	FallbackWarm RGB
	FallbackCool RGB

	HUDTrack  RGB
	HUDFill   RGB
	HUDPaused RGB
}{
	Background: RGB{R: 6, G: 6, B: 12},

	SparkleGold:   RGB{R: 255, G: 215, B: 0},
	SparkleYellow: RGB{R: 255, G: 255, B: 0},
	SparkleAmber:  RGB{R: 255, G: 165, B: 0},

	BurstRed:    RGB{R: 255, G: 0, B: 0},
	BurstOrange: RGB{R: 255, G: 69, B: 0},
	BurstTomato: RGB{R: 255, G: 99, B: 71},

	BoomPurple: RGB{R: 138, G: 43, B: 226},
	BoomViolet: RGB{R: 148, G: 0, B: 211},
	BoomIndigo: RGB{R: 75, G: 0, B: 130},

	CometIce:   RGB{R: 160, G: 220, B: 255},
	CometCyan:  RGB{R: 80, G: 200, B: 255},
	CometWhite: RGB{R: 235, G: 245, B: 255},

	PulseDeepBlue:   RGB{R: 20, G: 40, B: 120},
	PulseDeepPurple: RGB{R: 60, G: 20, B: 110},
	PulseWine:       RGB{R: 90, G: 15, B: 60},

	FallbackWarm: RGB{R: 240, G: 240, B: 220},
	FallbackCool: RGB{R: 200, G: 210, B: 240},

	HUDTrack:  RGB{R: 40, G: 42, B: 52},
	HUDFill:   RGB{R: 220, G: 200, B: 120},
	HUDPaused: RGB{R: 200, G: 120, B: 90},
}
