package components

import (
	"fmt"

	"github.com/automoto/zsengine/shared/animation"
	"github.com/yohamta/donburi"
)

type CollisionKind int

const (
	SpriteVsRegion CollisionKind = iota
	SpriteVsSprite
	SpriteVsHitbox
)

func (k CollisionKind) String() string {
	switch k {
	case SpriteVsRegion:
		return "sprite_vs_region"
	case SpriteVsSprite:
		return "sprite_vs_sprite"
	case SpriteVsHitbox:
		return "sprite_vs_hitbox"
	default:
		return fmt.Sprintf("CollisionKind(%d)", int(k))
	}
}

// ParseCollisionKind maps a config kind name to its CollisionKind.
func ParseCollisionKind(s string) (CollisionKind, error) {
	for _, k := range []CollisionKind{SpriteVsRegion, SpriteVsSprite, SpriteVsHitbox} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown collision kind %q", s)
}

// WallResponse selects how a sprite reacts to a wall contact.
type WallResponse int

const (
	// Smooth removes the velocity component along the wall normal.
	Smooth WallResponse = iota
	// Bounce reflects it.
	Bounce
)

// HitResponse reacts to struck being hit by the listed hitboxes.
type HitResponse func(w donburi.World, struck *donburi.Entry, hits []animation.Hitbox)

// CollisionSystem pairs one or two named groups with a detection and
// response routine. GroupB is only used by SpriteVsRegion.
type CollisionSystem struct {
	Name   string
	Kind   CollisionKind
	GroupA string
	GroupB string

	WallResponse WallResponse
	HitResponse  HitResponse
}

// CollisionLayerData lists collision systems in the order they run.
type CollisionLayerData struct {
	Systems []CollisionSystem
}

func (l *CollisionLayerData) Add(systems ...CollisionSystem) {
	l.Systems = append(l.Systems, systems...)
}

var CollisionLayer = donburi.NewComponentType[CollisionLayerData]()
