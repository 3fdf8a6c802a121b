// Package animation couples a state machine to a running frame counter,
// per-state animation metadata and per-frame hitbox tables.
package animation

import (
	"errors"
	"fmt"

	"github.com/automoto/zsengine/shared/fsm"
)

// DefaultState is used when a state has no animation of its own.
const DefaultState = "idle"

var (
	ErrMissingAnimation = errors.New("missing animation")
	ErrBadAnimation     = errors.New("bad animation")
	ErrUnknownHitbox    = errors.New("unknown hitbox")
)

// Machine is an fsm.Machine whose auto-complete predicate is "the current
// animation has played through once".
type Machine struct {
	*fsm.Machine

	DefaultState string
	LastState    string

	animations map[string]*Animation
	catalog    Catalog
	frame      int
	facing     Facing
}

// NewMachine wraps m. The default state must have an animation and every
// animation must be well formed, otherwise construction fails.
func NewMachine(m *fsm.Machine, animations map[string]*Animation, catalog Catalog, defaultState string) (*Machine, error) {
	if defaultState == "" {
		defaultState = DefaultState
	}
	if _, ok := animations[defaultState]; !ok {
		return nil, fmt.Errorf("machine %q: %w for default state %q", m.Name, ErrMissingAnimation, defaultState)
	}
	if catalog == nil {
		catalog = Catalog{}
	}

	for name, a := range animations {
		if a.Name == "" {
			a.Name = name
		}
		if err := a.validate(catalog); err != nil {
			return nil, fmt.Errorf("machine %q: %w", m.Name, err)
		}
	}

	am := &Machine{
		Machine:      m,
		DefaultState: defaultState,
		LastState:    m.State(),
		animations:   animations,
		catalog:      catalog,
		frame:        -1,
	}
	m.SetAuto(am.Complete)
	m.OnChange(func(from, _ string) {
		am.LastState = from
		am.Reset()
	})
	return am, nil
}

// Update evaluates transitions, then advances the frame counter.
func (m *Machine) Update() {
	m.Machine.Update()
	m.frame++
}

// Reset restarts the current animation. The next Update yields frame 0.
func (m *Machine) Reset() {
	m.frame = -1
}

// Animation returns the animation for state, falling back to the default.
func (m *Machine) Animation(state string) *Animation {
	if a, ok := m.animations[state]; ok {
		return a
	}
	return m.animations[m.DefaultState]
}

// Current returns the animation for the current state and facing.
func (m *Machine) Current() *Animation {
	return m.Animation(m.AnimationState())
}

// StateFrame returns ticks elapsed since the state was entered, -1 before
// the first update.
func (m *Machine) StateFrame() int {
	return m.frame
}

// Frame returns the animation frame index for the current tick. Before the
// first update it reports frame 0.
func (m *Machine) Frame() int {
	if m.frame < 0 {
		return 0
	}
	a := m.Current()
	return (m.frame / a.FrameLength) % a.FrameCount
}

// Complete reports whether the current animation has played through once.
func (m *Machine) Complete() bool {
	return m.frame >= m.Current().Length()-1
}

// Cue reports whether this tick is the first tick of the current
// animation's sound frame.
func (m *Machine) Cue() bool {
	if m.frame < 0 {
		return false
	}
	a := m.Current()
	return m.frame%a.FrameLength == 0 && m.Frame() == a.SoundFrame
}
