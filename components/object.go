package components

import (
	"github.com/automoto/zsengine/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's frame rectangle. X, Y is the top-left corner
// that sprite-local geometry (bodies, hitboxes) is offset from.
type ObjectData struct {
	*resolv.Object
}

func (o *ObjectData) Position() gamemath.Point {
	return gamemath.Point{X: o.X, Y: o.Y}
}

// Move displaces the object and refreshes its cells when it sits in a
// resolv space.
func (o *ObjectData) Move(dx, dy float64) {
	o.X += dx
	o.Y += dy
	if o.Space != nil {
		o.Update()
	}
}

func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.NewRect(o.X, o.Y, o.W, o.H)
}

var Object = donburi.NewComponentType[ObjectData]()
