package systems

import (
	"github.com/automoto/zsengine/components"
	"github.com/automoto/zsengine/events"
	"github.com/automoto/zsengine/shared/gamemath"
	"github.com/automoto/zsengine/tags"
	"github.com/yohamta/donburi"
)

// TestWallCollision returns the point of e's swept collision rect that its
// velocity carries across wall, if any. Only sprites heading into the
// wall's front face are tested. Of the five test points, the one that
// reaches the wall soonest wins; when none cross, the skeleton segment
// facing the direction of travel is tried instead.
func TestWallCollision(wall *gamemath.Wall, e *donburi.Entry) (gamemath.Point, bool) {
	v := Velocity(e)
	if v.IsZero() {
		return gamemath.Point{}, false
	}

	n := wall.Normal().Rotate(.5)
	if !n.CheckOrientation(v) {
		return gamemath.Point{}, false
	}

	var (
		best     gamemath.Point
		bestDist float64
		found    bool
	)
	for _, p := range CollisionPoints(e) {
		hit, ok := wall.VectorCollision(v, p)
		if !ok {
			continue
		}
		d := gamemath.NewVector("", hit.X-p.X, hit.Y-p.Y).Magnitude()
		if !found || d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	if found {
		return best, true
	}

	return skeletonCollision(wall, e, n.Angle())
}

func skeletonCollision(wall *gamemath.Wall, e *donburi.Entry, heading float64) (gamemath.Point, bool) {
	right := heading < .125 || heading >= .875
	up := heading >= .125 && heading < .375
	left := heading >= .375 && heading < .625
	down := heading >= .625 && heading < .875

	h, v := CollisionSkeleton(e)

	if left || right {
		if _, ok := wall.VectorCollision(&h.Vector, h.Origin); ok {
			if left {
				return h.Origin, true
			}
			return h.EndPoint(), true
		}
	}

	if up || down {
		if _, ok := wall.VectorCollision(&v.Vector, v.Origin); ok {
			if up {
				return v.Origin, true
			}
			return v.EndPoint(), true
		}
	}

	return gamemath.Point{}, false
}

// SmoothWallCollision puts point back on the wall line and removes e's
// velocity along the wall normal, so e slides along the wall.
func SmoothWallCollision(wall *gamemath.Wall, e *donburi.Entry, point gamemath.Point) {
	wallResponse(wall, e, point, 0)
}

// BounceWallCollision puts point back on the wall line and reflects e's
// velocity along the wall normal.
func BounceWallCollision(wall *gamemath.Wall, e *donburi.Entry, point gamemath.Point) {
	wallResponse(wall, e, point, -1)
}

func wallResponse(wall *gamemath.Wall, e *donburi.Entry, point gamemath.Point, scale float64) {
	v := Velocity(e)
	if adj, ok := wall.NormalAdjustment(v.ApplyToPoint(point)); ok {
		components.Object.Get(e).Move(adj.X, adj.Y)
	}

	if e.HasComponent(components.Physics) {
		body := components.Physics.Get(e)
		body.Velocity.ScaleInDirection(wall.Normal().Angle(), scale)
	}
}

type wallHit struct {
	wall  *gamemath.Wall
	point gamemath.Point
}

// regionCollisions tests e against every wall of region before any
// response is applied.
func regionCollisions(region *components.RegionData, e *donburi.Entry) []wallHit {
	var hits []wallHit
	for _, w := range region.Walls {
		if p, ok := TestWallCollision(w, e); ok {
			hits = append(hits, wallHit{wall: w, point: p})
		}
	}
	return hits
}

func spriteVsRegion(w donburi.World, s components.CollisionSystem) {
	respond := SmoothWallCollision
	if s.WallResponse == components.Bounce {
		respond = BounceWallCollision
	}

	sprites := tags.Members(w, s.GroupA)
	regions := tags.Members(w, s.GroupB)

	for _, e := range sprites {
		if !e.Valid() || !e.HasComponent(components.Object) {
			continue
		}
		for _, r := range regions {
			if !r.Valid() || !r.HasComponent(components.Region) {
				continue
			}
			guard(s, func() {
				for _, hit := range regionCollisions(components.Region.Get(r), e) {
					respond(hit.wall, e, hit.point)
					events.WallContact.Publish(w, events.WallContactData{
						System: s.Name,
						Entity: e.Entity(),
						Wall:   hit.wall.Name,
						Point:  hit.point,
					})
				}
			})
		}
	}
}
