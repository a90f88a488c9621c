package hanabi

// BackgroundPulse is the full-surface flash spawned by pulse cues. Only
// one exists; a new pulse cue snaps it back to full strength.
type BackgroundPulse struct {
	Alpha     float64
	MaxAlpha  float64
	Col       RGB
	FadeSpeed float64
}

// EffectManager owns every live effect and the background pulse. Effects
// are kept in spawn order so newer effects draw on top of older ones.
type EffectManager struct {
	effects []*ParticleEffect
	pulse   BackgroundPulse
	rng     *Rand
}

func NewEffectManager(seed uint64) *EffectManager {
	return &EffectManager{
		pulse: BackgroundPulse{FadeSpeed: pulseSpec.FadeSpeed},
		rng:   NewRand(seed),
	}
}

// Trigger spawns the effect for one cue. Pulse cues reset the background
// pulse instead of spawning particles. Spawn positions keep a margin
// from the surface edges so bursts stay mostly visible; a surface too
// small for the margin spawns at its center.
func (m *EffectManager) Trigger(t EffectType, w, h float64) {
	if IsPulse(t) {
		ps := PulseFor()
		m.pulse.Alpha = ps.MaxAlpha
		m.pulse.MaxAlpha = ps.MaxAlpha
		m.pulse.FadeSpeed = ps.FadeSpeed
		m.pulse.Col = ps.Colors[m.rng.Intn(len(ps.Colors))]
		return
	}

	x := w / 2
	y := h / 2
	if w > 2*SpawnMargin {
		x = SpawnMargin + m.rng.RangeF(0, w-2*SpawnMargin)
	}
	if h > 2*SpawnMargin {
		y = SpawnMargin + m.rng.RangeF(0, h-2*SpawnMargin)
	}
	m.effects = append(m.effects, NewParticleEffect(x, y, t, m.rng))
}

// Update steps every live effect and the pulse fade, removing expired
// effects while preserving spawn order.
func (m *EffectManager) Update(dt float64) {
	if m.pulse.Alpha > 0 {
		m.pulse.Alpha -= m.pulse.FadeSpeed * dt
		if m.pulse.Alpha < 0 {
			m.pulse.Alpha = 0
		}
	}

	keep := m.effects[:0]
	for _, e := range m.effects {
		if e.Update(dt) {
			keep = append(keep, e)
		}
	}
	for i := len(keep); i < len(m.effects); i++ {
		m.effects[i] = nil
	}
	m.effects = keep
}

// Draw paints the frame: background clear, pulse overlay, then effects
// in spawn order.
func (m *EffectManager) Draw(s Surface) {
	s.Clear(Palette.Background)
	w, h := s.Size()
	if m.pulse.Alpha > 0 {
		s.FillRect(0, 0, w, h, m.pulse.Col, m.pulse.Alpha)
	}
	for _, e := range m.effects {
		e.Draw(s)
	}
}

// Clear discards every live effect and the pulse (stop/restart).
func (m *EffectManager) Clear() {
	for i := range m.effects {
		m.effects[i] = nil
	}
	m.effects = m.effects[:0]
	m.pulse.Alpha = 0
}

// ActiveCount reports live effects, pulse excluded.
func (m *EffectManager) ActiveCount() int {
	return len(m.effects)
}

// Pulse exposes the current pulse state.
func (m *EffectManager) Pulse() BackgroundPulse {
	return m.pulse
}
