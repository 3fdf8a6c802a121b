package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/automoto/zsengine/shared/animation"
	"github.com/automoto/zsengine/shared/fsm"
	"github.com/automoto/zsengine/shared/gamemath"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// HitboxDoc describes one named hit shape. Rect positions are the top-left
// corner, circle positions are the centre.
type HitboxDoc struct {
	Shape string  `yaml:"shape"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	R     float64 `yaml:"r"`
	Key   string  `yaml:"key"`
}

// AnimationDoc is one state's animation entry.
type AnimationDoc struct {
	FrameLength int              `yaml:"frame_length"`
	FrameCount  int              `yaml:"frame_count"`
	Size        []float64        `yaml:"size"` // w h
	Body        []float64        `yaml:"body"` // x y w h
	Hitboxes    []string         `yaml:"hitboxes"`
	Frames      map[int][]string `yaml:"frames"`
	SoundFrame  *int             `yaml:"sound_frame"`
}

type TransitionDoc struct {
	Check  string `yaml:"check"`
	To     string `yaml:"to"`
	Buffer bool   `yaml:"buffer"`
}

type StateTransitions struct {
	State       string
	Transitions []TransitionDoc
}

// TransitionTable keeps states in document order. The first state listed is
// the machine's initial state.
type TransitionTable []StateTransitions

func (t *TransitionTable) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: transitions must be a mapping of state to list", value.Line)
	}

	table := make(TransitionTable, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, body := value.Content[i], value.Content[i+1]

		entry := StateTransitions{State: key.Value}
		if err := body.Decode(&entry.Transitions); err != nil {
			return fmt.Errorf("line %d: state %q: %w", body.Line, key.Value, err)
		}
		table = append(table, entry)
	}
	*t = table
	return nil
}

// MovementDoc gates directional movement on state. States maps a state to
// its speed multiplier, Facing lists the states that turn with input.
type MovementDoc struct {
	Speed  float64            `yaml:"speed"`
	States map[string]float64 `yaml:"states"`
	Facing []string           `yaml:"facing"`
}

// FacingStates returns Facing as a set.
func (d *MovementDoc) FacingStates() map[string]bool {
	set := make(map[string]bool, len(d.Facing))
	for _, state := range d.Facing {
		set[state] = true
	}
	return set
}

// AnimationSet is a sprite's animation document: per-state animations, the
// hitbox catalog, the transition table and optional movement rules.
// Animations named "<state>_<facing>" are directional variants of state.
type AnimationSet struct {
	Name        string                  `yaml:"name"`
	Default     string                  `yaml:"default"`
	Scale       float64                 `yaml:"scale"`
	Hitboxes    map[string]HitboxDoc    `yaml:"hitboxes"`
	Animations  map[string]AnimationDoc `yaml:"animations"`
	Transitions TransitionTable         `yaml:"transitions"`
	Movement    *MovementDoc            `yaml:"movement"`
}

// DefaultState returns the set's fallback state.
func (s *AnimationSet) DefaultState() string {
	if s.Default != "" {
		return s.Default
	}
	return Animation.DefaultState
}

// RenderScale returns the set's scale, or the global default.
func (s *AnimationSet) RenderScale() float64 {
	if s.Scale > 0 {
		return s.Scale
	}
	return Animation.Scale
}

// Table converts the transition document. A set without transitions gets a
// single-state-per-animation table, default state first.
func (s *AnimationSet) Table() fsm.Table {
	if len(s.Transitions) > 0 {
		table := make(fsm.Table, 0, len(s.Transitions))
		for _, st := range s.Transitions {
			spec := fsm.StateSpec{State: st.State}
			for _, t := range st.Transitions {
				spec.Transitions = append(spec.Transitions, fsm.TransitionSpec{
					Check:    t.Check,
					To:       t.To,
					Buffered: t.Buffer,
				})
			}
			table = append(table, spec)
		}
		return table
	}

	def := s.DefaultState()
	names := make([]string, 0, len(s.Animations))
	for name := range s.Animations {
		if name != def {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	table := fsm.Table{{State: def}}
	for _, name := range names {
		table = append(table, fsm.StateSpec{State: name})
	}
	return table
}

func (s *AnimationSet) validateMovement() error {
	if s.Movement == nil {
		return nil
	}
	if s.Movement.Speed < 0 {
		return fmt.Errorf("%w: animation set %q: movement speed must not be negative", ErrInvalidConfig, s.Name)
	}

	states := make(map[string]bool)
	for _, name := range s.Table().States() {
		states[name] = true
	}
	for name := range s.Movement.States {
		if !states[name] {
			return fmt.Errorf("%w: animation set %q: movement names unknown state %q", ErrInvalidConfig, s.Name, name)
		}
	}
	for _, name := range s.Movement.Facing {
		if !states[name] {
			return fmt.Errorf("%w: animation set %q: facing names unknown state %q", ErrInvalidConfig, s.Name, name)
		}
	}
	return nil
}

// Catalog converts the hitbox documents.
func (s *AnimationSet) Catalog() (animation.Catalog, error) {
	catalog := make(animation.Catalog, len(s.Hitboxes))
	for name, h := range s.Hitboxes {
		def := animation.HitboxDef{
			Name:     name,
			Position: gamemath.Point{X: h.X, Y: h.Y},
			W:        h.W,
			H:        h.H,
			Radius:   h.R,
			Key:      h.Key,
		}

		switch h.Shape {
		case "", "rect":
			def.Shape = animation.ShapeRect
			if h.W <= 0 || h.H <= 0 {
				return nil, fmt.Errorf("%w: hitbox %q: rect needs positive w and h", ErrInvalidConfig, name)
			}
		case "circle":
			def.Shape = animation.ShapeCircle
			if h.R <= 0 {
				return nil, fmt.Errorf("%w: hitbox %q: circle needs positive r", ErrInvalidConfig, name)
			}
		default:
			return nil, fmt.Errorf("%w: hitbox %q: unknown shape %q", ErrInvalidConfig, name, h.Shape)
		}
		catalog[name] = def
	}
	return catalog, nil
}

// AnimationMap converts the animation documents.
func (s *AnimationSet) AnimationMap() (map[string]*animation.Animation, error) {
	out := make(map[string]*animation.Animation, len(s.Animations))
	for name, a := range s.Animations {
		anim := &animation.Animation{
			Name:          name,
			FrameLength:   a.FrameLength,
			FrameCount:    a.FrameCount,
			Hitboxes:      a.Hitboxes,
			FrameHitboxes: a.Frames,
			SoundFrame:    animation.NoSound,
		}
		if a.SoundFrame != nil {
			anim.SoundFrame = *a.SoundFrame
		}

		switch len(a.Size) {
		case 0:
		case 2:
			anim.W, anim.H = a.Size[0], a.Size[1]
		default:
			return nil, fmt.Errorf("%w: animation %q: size wants [w, h]", ErrInvalidConfig, name)
		}

		switch len(a.Body) {
		case 0:
		case 4:
			anim.Body = gamemath.NewRect(a.Body[0], a.Body[1], a.Body[2], a.Body[3])
		default:
			return nil, fmt.Errorf("%w: animation %q: body wants [x, y, w, h]", ErrInvalidConfig, name)
		}

		out[name] = anim
	}
	return out, nil
}

// NewMachine builds an animation machine for one entity. Every call returns
// an independent machine bound to preds.
func (s *AnimationSet) NewMachine(preds fsm.Predicates) (*animation.Machine, error) {
	catalog, err := s.Catalog()
	if err != nil {
		return nil, fmt.Errorf("animation set %q: %w", s.Name, err)
	}
	anims, err := s.AnimationMap()
	if err != nil {
		return nil, fmt.Errorf("animation set %q: %w", s.Name, err)
	}

	m, err := fsm.Build(s.Name, s.Table(), preds)
	if err != nil {
		return nil, err
	}
	return animation.NewMachine(m, anims, catalog, s.DefaultState())
}
