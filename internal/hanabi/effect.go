package hanabi

import "math"

// TrailPoint is one stored particle position with its own fading alpha.
type TrailPoint struct {
	X, Y  float64
	Alpha float64
}

// Particle belongs exclusively to its ParticleEffect. Trail points are
// ordered oldest to newest; alphas decay once per update, so they are
// non-increasing from newest to oldest.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Col      RGB
	BaseSize float64
	Flicker  float64 // per-particle core brightness jitter
	Core     bool    // directional-burst core particle
	Trail    []TrailPoint
}

// ParticleEffect is one spawned instance of an effect type. It moves
// from spawned to alive to expired; once expired it is never updated
// or drawn again.
type ParticleEffect struct {
	OriginX, OriginY float64
	Type             EffectType
	Age              float64
	MaxAge           float64

	spec      EffectSpec
	Particles []Particle
}

// NewParticleEffect spawns an effect at (x, y). Standard types emit
// isotropically; directional-burst types pick one random heading shared
// by every particle plus a narrow spread, giving a comet-like streak.
func NewParticleEffect(x, y float64, t EffectType, r *Rand) *ParticleEffect {
	spec := SpecFor(t)
	e := &ParticleEffect{
		OriginX: x,
		OriginY: y,
		Type:    t,
		MaxAge:  spec.Lifetime,
		spec:    spec,
	}

	count := r.Range(spec.CountMin, spec.CountMax)
	heading := r.RangeF(0, 2*math.Pi)
	e.Particles = make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		ang := r.RangeF(0, 2*math.Pi)
		if spec.Directional {
			ang = heading + r.RangeF(-spec.Spread, spec.Spread)
		}
		spd := r.RangeF(spec.SpeedMin, spec.SpeedMax)
		e.Particles = append(e.Particles, Particle{
			X: x, Y: y,
			VX:       math.Cos(ang) * spd,
			VY:       math.Sin(ang) * spd,
			Col:      spec.Colors[r.Intn(len(spec.Colors))],
			BaseSize: r.RangeF(spec.SizeMin, spec.SizeMax),
			Flicker:  r.RangeF(-spec.Flicker, spec.Flicker),
			Core:     spec.Directional,
			Trail:    make([]TrailPoint, 0, spec.TrailCap),
		})
	}
	return e
}

// Alive reports whether the effect still has lifetime left.
func (e *ParticleEffect) Alive() bool {
	return e.Age < e.MaxAge
}

// Update advances the effect by dt and returns false once it expired.
// Trail decay is a fixed per-update multiplier, not dt-scaled, while
// damping is normalized to a 60 Hz frame so velocity falloff looks the
// same at any refresh rate.
func (e *ParticleEffect) Update(dt float64) bool {
	e.Age += dt
	if e.Age >= e.MaxAge {
		return false
	}

	damp := math.Pow(e.spec.Damping, dt*60)
	for i := range e.Particles {
		p := &e.Particles[i]

		// Fade existing trail entries and evict invisible ones, keeping order.
		keep := p.Trail[:0]
		for _, tp := range p.Trail {
			tp.Alpha *= e.spec.TrailDecay
			if tp.Alpha >= TrailAlphaFloor {
				keep = append(keep, tp)
			}
		}
		p.Trail = keep
		p.Trail = append(p.Trail, TrailPoint{X: p.X, Y: p.Y, Alpha: 1.0})
		if n := len(p.Trail) - e.spec.TrailCap; n > 0 {
			copy(p.Trail, p.Trail[n:])
			p.Trail = p.Trail[:e.spec.TrailCap]
		}

		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += e.spec.Gravity * dt
		p.VX *= damp
		p.VY *= damp
	}
	return true
}

// currentSize returns the rendered radius at the given age progress.
// Directional cores shrink less aggressively than radial particles.
func (p *Particle) currentSize(progress float64) float64 {
	shrink := 1.0 - progress
	if p.Core {
		shrink = 1.0 - 0.5*progress
	}
	s := p.BaseSize * shrink
	if s < 0.5 {
		s = 0.5
	}
	return s
}

// Draw renders trails oldest to newest, then the particle discs on top.
// Everything fades linearly with the effect's age.
func (e *ParticleEffect) Draw(s Surface) {
	fade := clampF(1.0-e.Age/e.MaxAge, 0, 1)
	if fade <= 0 {
		return
	}
	progress := clampF(e.Age/e.MaxAge, 0, 1)
	w, h := s.Size()

	for i := range e.Particles {
		p := &e.Particles[i]
		if p.X < -DrawMargin || p.X > w+DrawMargin || p.Y < -DrawMargin || p.Y > h+DrawMargin {
			continue
		}
		size := p.currentSize(progress)
		// Cool the color toward the background as the effect ages, like embers.
		col := lerpRGB(p.Col, Palette.Background, progress*0.5)

		for j := 1; j < len(p.Trail); j++ {
			a := p.Trail[j-1]
			b := p.Trail[j]
			width := size * b.Alpha
			if width < 0.5 {
				width = 0.5
			}
			s.Segment(a.X, a.Y, b.X, b.Y, width, col, b.Alpha*fade*0.7)
		}

		bright := e.spec.CoreBrightness
		if !p.Core {
			bright *= 1.0 + p.Flicker
		}
		s.FillDisc(p.X, p.Y, size, col, clampF(fade*bright, 0, 1))
	}
}
