package components

import (
	"math/rand"

	cfg "github.com/ModricFX/JumpScape-sub000/config"
	"github.com/ModricFX/JumpScape-sub000/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlatformPhase is the lifecycle stage of a disappearing platform.
type PlatformPhase int

const (
	PlatformStable PlatformPhase = iota
	PlatformCountingDown
	PlatformBroken
	PlatformReappearing
)

func (p PlatformPhase) String() string {
	switch p {
	case PlatformStable:
		return "stable"
	case PlatformCountingDown:
		return "counting_down"
	case PlatformBroken:
		return "broken"
	case PlatformReappearing:
		return "reappearing"
	}
	return "unknown"
}

// PlatformEvent is emitted by a lifecycle transition.
type PlatformEvent int

const (
	PlatformEventNone PlatformEvent = iota
	PlatformEventBroke
	PlatformEventReappeared
)

// PlatformState pairs a phase with the time left in it. Remaining is only
// meaningful for CountingDown and Reappearing; Stable keeps the next countdown.
type PlatformState struct {
	Phase     PlatformPhase
	Remaining float64
}

// StablePlatformState returns a fresh state armed with the given countdown.
func StablePlatformState(countdown float64) PlatformState {
	return PlatformState{Phase: PlatformStable, Remaining: countdown}
}

// Visible reports whether the platform is drawn and collidable.
func (s PlatformState) Visible() bool {
	return s.Phase == PlatformStable || s.Phase == PlatformCountingDown
}

// Trigger starts the countdown from Stable; other phases are unchanged.
func (s PlatformState) Trigger(countdown float64) PlatformState {
	if s.Phase != PlatformStable {
		return s
	}
	return PlatformState{Phase: PlatformCountingDown, Remaining: countdown}
}

// Advance moves the lifecycle forward by dt. Breaking passes straight through
// Broken into Reappearing in the same step.
func (s PlatformState) Advance(dt, countdown, reappear float64) (PlatformState, PlatformEvent) {
	switch s.Phase {
	case PlatformCountingDown:
		s.Remaining -= dt
		if s.Remaining > 0 {
			return s, PlatformEventNone
		}
		return PlatformState{Phase: PlatformReappearing, Remaining: reappear}, PlatformEventBroke
	case PlatformBroken:
		return PlatformState{Phase: PlatformReappearing, Remaining: reappear}, PlatformEventNone
	case PlatformReappearing:
		s.Remaining -= dt
		if s.Remaining > 0 {
			return s, PlatformEventNone
		}
		return StablePlatformState(countdown), PlatformEventReappeared
	}
	return s, PlatformEventNone
}

// PlatformData is a static or disappearing ledge. Index is the position in the
// level file and fixes collision order.
type PlatformData struct {
	Index        int
	X, Y         float64
	Length       float64
	Height       float64
	Disappearing bool
	HasMonster   bool

	State     PlatformState
	Particles []Particle

	// MasterVolume scales the crack and break sounds (0..1).
	MasterVolume float64
}

var Platform = donburi.NewComponentType[PlatformData]()

func NewPlatformData(index int, x, y, length float64, disappearing, hasMonster bool, masterVolume float64) PlatformData {
	if length <= 0 {
		length = cfg.Platform.DefaultLength
	}
	return PlatformData{
		Index:        index,
		X:            x,
		Y:            y,
		Length:       length,
		Height:       cfg.Platform.Height,
		Disappearing: disappearing,
		HasMonster:   hasMonster,
		State:        StablePlatformState(cfg.Platform.CountdownDuration),
		MasterVolume: masterVolume,
	}
}

func (p *PlatformData) Bounds() gamemath.Rect {
	return gamemath.NewRect(p.X, p.Y, p.Length, p.Height)
}

func (p *PlatformData) Visible() bool    { return p.State.Visible() }
func (p *PlatformData) Collidable() bool { return p.State.Visible() }

// Cracking reports whether the crack loop should be audible.
func (p *PlatformData) Cracking() bool {
	return p.State.Phase == PlatformCountingDown
}

// StartCountdown is called when the player lands on the platform.
func (p *PlatformData) StartCountdown() {
	if !p.Disappearing {
		return
	}
	p.State = p.State.Trigger(cfg.Platform.CountdownDuration)
}

// Advance runs the lifecycle and spawns debris when the platform breaks.
func (p *PlatformData) Advance(dt float64, rng *rand.Rand) PlatformEvent {
	if !p.Disappearing {
		return PlatformEventNone
	}
	var ev PlatformEvent
	p.State, ev = p.State.Advance(dt, cfg.Platform.CountdownDuration, cfg.Platform.ReappearDuration)
	if ev == PlatformEventBroke {
		p.spawnDebris(rng)
	}
	return ev
}

func (p *PlatformData) spawnDebris(rng *rand.Rand) {
	b := p.Bounds()
	for i := 0; i < cfg.Platform.ParticleCount; i++ {
		x := b.X + rng.Float64()*b.W
		y := b.Y + rng.Float64()*b.H
		p.Particles = append(p.Particles, NewDebris(x, y, rng))
	}
}

// UpdateParticles integrates debris and drops expired pieces in place.
func (p *PlatformData) UpdateParticles(dt float64) {
	alive := p.Particles[:0]
	for i := range p.Particles {
		p.Particles[i].Update(dt)
		if p.Particles[i].Alive() {
			alive = append(alive, p.Particles[i])
		}
	}
	p.Particles = alive
}

// SoundLevel returns volume and pan of the platform's sounds heard by a
// listener at (lx, ly).
func (p *PlatformData) SoundLevel(lx, ly float64) (volume, pan float64) {
	b := p.Bounds()
	dist := gamemath.Distance(b.CenterX(), b.CenterY(), lx, ly)
	volume = gamemath.Attenuate(dist, cfg.Platform.SoundMinDistance, cfg.Platform.SoundMaxDistance, p.MasterVolume)
	pan = gamemath.Pan(b.CenterX(), lx, cfg.Platform.SoundMaxDistance)
	return volume, pan
}
