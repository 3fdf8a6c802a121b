package config

import (
	"fmt"

	"github.com/automoto/zsengine/shared/animation"
	"github.com/automoto/zsengine/shared/gamemath"
)

// Collision system kinds accepted in scene documents.
const (
	KindSpriteVsRegion = "sprite_vs_region"
	KindSpriteVsSprite = "sprite_vs_sprite"
	KindSpriteVsHitbox = "sprite_vs_hitbox"
)

// Wall responses accepted for sprite_vs_region systems.
const (
	ResponseSmooth = "smooth"
	ResponseBounce = "bounce"
)

// Scene wires animation sets, groups, regions, sprites and collision systems
// into one simulation.
type Scene struct {
	Name       string            `yaml:"name"`
	Animations map[string]string `yaml:"animations"` // set name -> document path
	Groups     []string          `yaml:"groups"`
	Regions    []RegionDoc       `yaml:"regions"`
	Sprites    []SpriteDoc       `yaml:"sprites"`
	Collisions []CollisionDoc    `yaml:"collisions"`
}

type WallDoc struct {
	Name   string    `yaml:"name"`
	Origin []float64 `yaml:"origin"`
	End    []float64 `yaml:"end"`
}

// Wall converts the document into a segment.
func (w WallDoc) Wall() (*gamemath.Wall, error) {
	if len(w.Origin) != 2 || len(w.End) != 2 {
		return nil, fmt.Errorf("%w: wall %q wants origin [x, y] and end [x, y]", ErrInvalidConfig, w.Name)
	}
	return gamemath.NewWall(w.Name,
		gamemath.Point{X: w.Origin[0], Y: w.Origin[1]},
		gamemath.Point{X: w.End[0], Y: w.End[1]},
	), nil
}

// RegionDoc is static wall geometry, declared inline or loaded from a Tiled
// map.
type RegionDoc struct {
	Name   string    `yaml:"name"`
	Groups []string  `yaml:"groups"`
	Walls  []WallDoc `yaml:"walls"`
	Map    string    `yaml:"map"`
}

// SpriteDoc places one animated, physics-driven entity. Unset physics
// values fall back to the global Physics defaults.
type SpriteDoc struct {
	Name      string    `yaml:"name"`
	Animation string    `yaml:"animation"`
	Position  []float64 `yaml:"position"`
	Spawn     string    `yaml:"spawn"` // spawn point name from a region map
	Groups    []string  `yaml:"groups"`
	Controls  []string  `yaml:"controls"` // controller flags exposed as predicates
	Facing    string    `yaml:"facing"`   // initial facing, right when empty

	Mass       *float64 `yaml:"mass"`
	Friction   *float64 `yaml:"friction"`
	Gravity    *float64 `yaml:"gravity"`
	Elasticity *float64 `yaml:"elasticity"`
}

// InitialFacing parses Facing. An empty value faces right.
func (s SpriteDoc) InitialFacing() (animation.Facing, bool) {
	if s.Facing == "" {
		return animation.FaceRight, true
	}
	return animation.ParseFacing(s.Facing)
}

// Body returns the sprite's physics values with defaults applied.
func (s SpriteDoc) Body() PhysicsConfig {
	p := Physics
	if s.Mass != nil {
		p.Mass = *s.Mass
	}
	if s.Friction != nil {
		p.Friction = *s.Friction
	}
	if s.Gravity != nil {
		p.Gravity = *s.Gravity
	}
	if s.Elasticity != nil {
		p.Elasticity = *s.Elasticity
	}
	return p
}

// CollisionDoc configures one collision system. Response is a wall
// response for sprite_vs_region and the reaction state for
// sprite_vs_hitbox. Restart makes a hitbox system renew the reaction when
// a sprite already in it is struck again.
type CollisionDoc struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	GroupA   string `yaml:"group_a"`
	GroupB   string `yaml:"group_b"`
	Response string `yaml:"response"`
	Restart  bool   `yaml:"restart"`
}

// Validate reports every reference that cannot be resolved: unknown groups,
// unknown animation sets, unknown kinds and malformed geometry.
func (s *Scene) Validate() error {
	groups := make(map[string]bool, len(s.Groups))
	for _, g := range s.Groups {
		if groups[g] {
			return fmt.Errorf("%w: scene %q: duplicate group %q", ErrInvalidConfig, s.Name, g)
		}
		groups[g] = true
	}

	checkGroups := func(owner string, names []string) error {
		for _, g := range names {
			if !groups[g] {
				return fmt.Errorf("%w: scene %q: %s references unknown group %q", ErrInvalidConfig, s.Name, owner, g)
			}
		}
		return nil
	}

	for _, r := range s.Regions {
		if err := checkGroups("region "+r.Name, r.Groups); err != nil {
			return err
		}
		for _, w := range r.Walls {
			if _, err := w.Wall(); err != nil {
				return err
			}
		}
	}

	for _, sp := range s.Sprites {
		if err := checkGroups("sprite "+sp.Name, sp.Groups); err != nil {
			return err
		}
		if _, ok := s.Animations[sp.Animation]; !ok {
			return fmt.Errorf("%w: scene %q: sprite %q uses unknown animation set %q", ErrInvalidConfig, s.Name, sp.Name, sp.Animation)
		}
		if sp.Position != nil && len(sp.Position) != 2 {
			return fmt.Errorf("%w: scene %q: sprite %q position wants [x, y]", ErrInvalidConfig, s.Name, sp.Name)
		}
		if sp.Mass != nil && *sp.Mass <= 0 {
			return fmt.Errorf("%w: scene %q: sprite %q mass must be positive", ErrInvalidConfig, s.Name, sp.Name)
		}
		if _, ok := sp.InitialFacing(); !ok {
			return fmt.Errorf("%w: scene %q: sprite %q has unknown facing %q", ErrInvalidConfig, s.Name, sp.Name, sp.Facing)
		}
	}

	for _, c := range s.Collisions {
		owner := "collision " + c.Name
		if err := checkGroups(owner, []string{c.GroupA}); err != nil {
			return err
		}

		switch c.Kind {
		case KindSpriteVsRegion:
			if err := checkGroups(owner, []string{c.GroupB}); err != nil {
				return err
			}
			switch c.Response {
			case "", ResponseSmooth, ResponseBounce:
			default:
				return fmt.Errorf("%w: scene %q: %s: unknown wall response %q", ErrInvalidConfig, s.Name, owner, c.Response)
			}
		case KindSpriteVsSprite, KindSpriteVsHitbox:
			if c.GroupB != "" {
				return fmt.Errorf("%w: scene %q: %s: %s takes a single group", ErrInvalidConfig, s.Name, owner, c.Kind)
			}
		default:
			return fmt.Errorf("%w: scene %q: %s: unknown kind %q", ErrInvalidConfig, s.Name, owner, c.Kind)
		}
	}

	return nil
}
