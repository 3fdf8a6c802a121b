package systems

import (
	"math"

	"github.com/automoto/zsengine/components"
	cfg "github.com/automoto/zsengine/config"
	"github.com/automoto/zsengine/events"
	"github.com/automoto/zsengine/shared/animation"
	"github.com/automoto/zsengine/shared/gamemath"
	"github.com/automoto/zsengine/tags"
	"github.com/yohamta/donburi"
)

// SpriteView is what a renderer needs to draw an entity for one tick.
type SpriteView struct {
	Rect     gamemath.Rect
	State    string
	Facing   animation.Facing
	Frame    int
	Hitboxes []animation.Hitbox
}

// View returns e's current world-space body rectangle, animation frame and
// resolved hitboxes.
func View(e *donburi.Entry) SpriteView {
	v := SpriteView{Rect: BodyRect(e)}
	if e.HasComponent(components.State) {
		state := components.State.Get(e)
		v.State = state.State()
		v.Facing = state.Facing()
		v.Frame = state.Frame()
		v.Hitboxes = ResolveHitboxes(e, "")
	}
	return v
}

func spriteScale(e *donburi.Entry) float64 {
	if e.HasComponent(components.Sprite) {
		if s := components.Sprite.Get(e).Scale; s > 0 {
			return s
		}
	}
	return 1
}

// BodyRect returns e's body rectangle in world space: the current
// animation's local body scaled by the sprite scale and offset from the
// object's top-left corner. Entities without a state use the object rect.
func BodyRect(e *donburi.Entry) gamemath.Rect {
	obj := components.Object.Get(e)
	if !e.HasComponent(components.State) {
		return obj.Rect()
	}

	local := components.State.Get(e).Current().BodyRect()
	if local.W <= 0 || local.H <= 0 {
		return obj.Rect()
	}

	scale := spriteScale(e)
	return gamemath.NewRect(
		obj.X+local.Position.X*scale,
		obj.Y+local.Position.Y*scale,
		local.W*scale,
		local.H*scale,
	)
}

// Velocity returns e's displacement over the last physics step.
func Velocity(e *donburi.Entry) *gamemath.Vector {
	obj := components.Object.Get(e)
	if !e.HasComponent(components.Physics) {
		return gamemath.NewVector("instantaneous velocity", 0, 0)
	}
	return components.Physics.Get(e).InstantaneousVelocity(obj.Position())
}

// CollisionRect is the body rectangle moved back to where it was before the
// last physics step, so the velocity vector sweeps from it.
func CollisionRect(e *donburi.Entry) gamemath.Rect {
	rect := BodyRect(e)
	back := Velocity(e).Rotate(.5)
	rect.SetCenter(back.ApplyToPoint(rect.Center()))
	return rect
}

// CollisionPoints returns the five swept test points of e's collision rect:
// mid-top, mid-right, mid-left, mid-bottom and centre.
func CollisionPoints(e *donburi.Entry) []gamemath.Point {
	r := CollisionRect(e)
	return []gamemath.Point{r.MidTop(), r.MidRight(), r.MidLeft(), r.MidBottom(), r.Center()}
}

// CollisionSkeleton returns the horizontal (left to right) and vertical (top
// to bottom) segments through the collision rect's centre.
func CollisionSkeleton(e *donburi.Entry) (*gamemath.Wall, *gamemath.Wall) {
	r := CollisionRect(e)
	name := spriteName(e)
	h := gamemath.NewWall(name+" h skeleton", r.MidLeft(), r.MidRight())
	v := gamemath.NewWall(name+" v skeleton", r.MidTop(), r.MidBottom())
	return h, v
}

func spriteName(e *donburi.Entry) string {
	if e.HasComponent(components.Sprite) {
		return components.Sprite.Get(e).Name
	}
	return "entity"
}

// SpriteCollision pushes a and b apart when their body rects overlap,
// including when one lies wholly inside the other. Rects that only share an
// edge are left alone. Each side moves half the penetration depth along the line between the
// two centres, scaled by one minus its own elasticity, and loses the part
// of its velocity heading at the other.
func SpriteCollision(system string, a, b *donburi.Entry) bool {
	ra, rb := BodyRect(a), BodyRect(b)
	clip, ok := ra.Clip(rb)
	if !ok {
		return false
	}
	depth := math.Min(clip.W, clip.H)

	ca, cb := ra.Center(), rb.Center()
	d := gamemath.NewVector("relative displacement", cb.X-ca.X, cb.Y-ca.Y)
	if d.IsZero() {
		d.SetValue(cfg.Collision.MinSeparation, 0)
	}
	unit := d.Copy(0, 1/d.Magnitude())

	push(a, unit.Copy(.5, depth/2))
	push(b, unit.Copy(0, depth/2))

	events.SpriteContact.Publish(a.World, events.SpriteContactData{
		System: system,
		A:      a.Entity(),
		B:      b.Entity(),
	})
	return true
}

// push moves e along away and zeroes e's velocity component opposite to it.
func push(e *donburi.Entry, away *gamemath.Vector) {
	if !e.HasComponent(components.Physics) {
		return
	}
	body := components.Physics.Get(e)

	amount := 1 - body.Elasticity
	components.Object.Get(e).Move(away.I*amount, away.J*amount)

	toward := away.Copy(.5, 1)
	if !body.Velocity.IsZero() && toward.CheckOrientation(&body.Velocity) {
		body.Velocity.ScaleInDirection(toward.Angle(), 0)
	}
}

func spriteVsSprite(w donburi.World, s components.CollisionSystem) {
	members := tags.Members(w, s.GroupA)
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			a, b := members[i], members[j]
			if !a.Valid() || !b.Valid() {
				continue
			}
			guard(s, func() {
				SpriteCollision(s.Name, a, b)
			})
		}
	}
}
